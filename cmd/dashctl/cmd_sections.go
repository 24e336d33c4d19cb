package main

import (
	"github.com/spf13/cobra"

	"bizdash/internal/format"
	"bizdash/internal/section"
)

func newSectionsCmd() *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List sections and their tabs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return format.Sections(cmd.OutOrStdout(), section.All(), mode(markdown))
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "render Markdown instead of a terminal table")

	return cmd
}

func mode(markdown bool) format.Mode {
	if markdown {
		return format.Markdown
	}
	return format.ASCII
}
