package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bizdash/internal/section"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Print the tab id a path resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			sec, ok := section.Lookup(path)
			if !ok {
				return fmt.Errorf("no section for path %q", path)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", sec.ID, sec.Resolve(path))
			return err
		},
	}
}
