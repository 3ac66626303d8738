package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/puzzle"
)

func listCmd(reg *puzzle.Registry, g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the days that have a solver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(g.format)
			if err != nil {
				return err
			}
			entries := reg.Entries()
			days := make([]day, 0, len(entries))
			for _, e := range entries {
				days = append(days, day{Day: e.Day, Title: e.Title})
			}
			return writeDays(cmd.OutOrStdout(), f, days)
		},
	}
}
