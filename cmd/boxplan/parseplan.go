package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/metalagman/boxplan/internal/plan"
	"github.com/spf13/cobra"
)

func parsePlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "parse-plan <plan-file>",
		Short:        "Parse planner output into structured plan JSON",
		Long:         "Parse a planner's plan file into JSON steps plus optional cost. Pass - to read from stdin.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open plan file: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			result, err := plan.Parse(in)
			if err != nil {
				return err
			}
			encoded, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("encode plan: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}
	return cmd
}
