package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"bizdash/internal/dashboard"
	"bizdash/internal/section"
	generate_excel "bizdash/internal/service/generate-excel"
)

func newExportCmd(flags *rootFlags) *cobra.Command {
	var exportFlags struct {
		parallel int
		search   string
		status   string
	}

	cmd := &cobra.Command{
		Use:   "export <dir>",
		Short: "Write one xlsx report per view into dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}

			a, err := openApp(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.close()

			gen := generate_excel.NewGenerateService(a.pages)
			q := dashboard.Query{Search: exportFlags.search, Status: exportFlags.status}

			var written atomic.Int64
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(exportFlags.parallel, 1))

			for _, sec := range section.All() {
				for _, tab := range sec.Tabs {
					g.Go(func() error {
						report, err := gen.GenerateExcel(ctx, tab.Path, q)
						if err != nil {
							return fmt.Errorf("export %s: %w", tab.Path, err)
						}

						path := filepath.Join(dir, report.FileName)
						if err := os.WriteFile(path, report.Data, 0o644); err != nil {
							return fmt.Errorf("write %s: %w", path, err)
						}

						written.Add(1)
						a.log.Info("report written", slog.String("file", path), slog.Int("rows", report.Rows))
						return nil
					})
				}
			}

			if err := g.Wait(); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d reports written to %s\n", written.Load(), dir)
			return err
		},
	}

	f := cmd.Flags()
	f.IntVarP(&exportFlags.parallel, "parallel", "p", 4, "reports generated at once")
	f.StringVar(&exportFlags.search, "search", "", "search applied to every table")
	f.StringVar(&exportFlags.status, "status", "", "status filter applied to every table")

	return cmd
}
