package main

import (
	"fmt"
	"os"

	"github.com/metalagman/boxplan/internal/pddl"
	"github.com/metalagman/boxplan/internal/spec"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func generateCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:          "generate <instance>",
		Short:        "Compile a Box-World instance into a PDDL problem",
		Long:         "Compile a Box-World instance (JSON, or YAML by extension) into a PDDL problem for the BOX-WORLD domain.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := spec.Load(args[0])
			if err != nil {
				return err
			}
			problem := pddl.Problem(s)
			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), problem)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(problem+"\n"), 0o644); err != nil {
				return fmt.Errorf("write problem: %w", err)
			}
			log.Info().Str("path", outPath).Str("problem", s.ProblemName).Msg("problem written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output .pddl path (default: stdout)")
	return cmd
}
