package main

import (
	"fmt"
	"strconv"

	"github.com/metalagman/boxplan/internal/history"
	"github.com/spf13/cobra"
)

func runsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:          "runs",
		Short:        "List recorded solve runs",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			storeDB, _, closeFn, err := openDB()
			if err != nil {
				return err
			}
			defer closeFn()

			runs, err := history.NewStore(storeDB).List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
				return nil
			}
			for _, run := range runs {
				cost := "-"
				if run.Cost != nil {
					cost = strconv.Itoa(*run.Cost)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-24s %-7s steps=%-3d cost=%-4s %s\n",
					run.CreatedAt, run.Problem, run.Status, run.Steps, cost, run.Duration)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to list")
	return cmd
}
