package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bizdash/internal/dashboard"
	"bizdash/internal/format"
)

func newViewCmd(flags *rootFlags) *cobra.Command {
	var viewFlags struct {
		search   string
		status   string
		markdown bool
	}

	cmd := &cobra.Command{
		Use:   "view <path>",
		Short: "Render the view mounted at path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.close()

			page, err := a.pages.Page(cmd.Context(), args[0], dashboard.Query{
				Search: viewFlags.search,
				Status: viewFlags.status,
			})
			if err != nil {
				return fmt.Errorf("view %s: %w", args[0], err)
			}

			return format.View(cmd.OutOrStdout(), page.View, mode(viewFlags.markdown))
		},
	}

	f := cmd.Flags()
	f.StringVar(&viewFlags.search, "search", "", "case-insensitive text search")
	f.StringVar(&viewFlags.status, "status", "", `status filter ("All" or a status value)`)
	f.BoolVar(&viewFlags.markdown, "markdown", false, "render Markdown instead of terminal tables")

	return cmd
}
