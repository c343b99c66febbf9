package main

import (
	"fmt"
	"os"

	"github.com/metalagman/boxplan/internal/pddl"
	"github.com/spf13/cobra"
)

func domainCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:          "domain",
		Short:        "Print the bundled BOX-WORLD domain definition",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), pddl.DefaultDomain)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(pddl.DefaultDomain), 0o644); err != nil {
				return fmt.Errorf("write domain: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default: stdout)")
	return cmd
}
