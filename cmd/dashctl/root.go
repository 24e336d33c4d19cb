package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"bizdash/internal/config"
	"bizdash/internal/logger"
	"bizdash/internal/service"
	"bizdash/internal/storage/driver"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	configPath string
	dataPath   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "dashctl",
		Short: "Inspect and export the business dashboard from the terminal",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		Version:      version,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default $CONFIG_PATH or ./config/local.yaml)")
	pf.StringVar(&flags.dataPath, "data", "", "YAML fixture replacing the built-in dataset")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(newSectionsCmd())
	root.AddCommand(newResolveCmd())
	root.AddCommand(newViewCmd(&flags))
	root.AddCommand(newExportCmd(&flags))

	return root
}

// app - то, что нужно командам для сборки страниц.
type app struct {
	cfg   *config.Config
	log   *slog.Logger
	pages *service.DashboardService
	close func() error
}

func openApp(ctx context.Context, flags *rootFlags, stderr io.Writer) (*app, error) {
	path := flags.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "./config/local.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flags.dataPath != "" {
		cfg.DataPath = flags.dataPath
	}

	data, err := driver.Dataset(*cfg)
	if err != nil {
		return nil, err
	}

	repo, closeFn, err := driver.Open(ctx, *cfg, data)
	if err != nil {
		return nil, err
	}

	log := logger.Discard()
	if flags.verbose {
		log = logger.New(cfg.Env, stderr, nil)
	}

	return &app{
		cfg:   cfg,
		log:   log,
		pages: service.NewDashboardService(data, service.NewSettingsService(repo)),
		close: closeFn,
	}, nil
}
