package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/metalagman/boxplan/internal/config"
	"github.com/metalagman/boxplan/internal/history"
	"github.com/metalagman/boxplan/internal/pddl"
	"github.com/metalagman/boxplan/internal/solver"
	"github.com/metalagman/boxplan/internal/spec"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func solveCmd() *cobra.Command {
	var keepWorkDir bool

	cmd := &cobra.Command{
		Use:          "solve <instance>",
		Short:        "Compile an instance, run the configured planner and print the plan",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(repoRoot)
			if err != nil {
				return err
			}
			if len(cfg.Planner.Cmd) == 0 {
				return fmt.Errorf("planner.cmd is not configured; set it in %s", filepath.Join(".boxplan", "config.json"))
			}

			s, err := spec.Load(args[0])
			if err != nil {
				return err
			}

			slv, err := solver.New(solver.Config{
				Cmd:         cfg.Planner.Cmd,
				DomainPath:  cfg.Planner.Domain,
				WorkDir:     cfg.Planner.WorkDir,
				KeepWorkDir: keepWorkDir || cfg.Planner.KeepWorkDir,
			})
			if err != nil {
				return err
			}

			outcome, solveErr := slv.Solve(cmd.Context(), pddl.Problem(s))

			if cfg.History.Enabled {
				if err := recordRun(cmd.Context(), cfg, s.ProblemName, outcome, solveErr); err != nil {
					log.Warn().Err(err).Msg("record run")
				}
			}
			if solveErr != nil {
				return solveErr
			}

			encoded, err := json.MarshalIndent(outcome.Plan, "", "  ")
			if err != nil {
				return fmt.Errorf("encode plan: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepWorkDir, "keep-workdir", false, "keep the planner work directory for inspection")
	return cmd
}

func recordRun(ctx context.Context, cfg config.Config, problem string, outcome *solver.Outcome, solveErr error) error {
	storeDB, _, closeFn, err := openDB()
	if err != nil {
		return err
	}
	defer closeFn()

	store := history.NewStore(storeDB)
	run := history.Run{Problem: problem, Status: "solved"}
	if solveErr != nil {
		run.Status = "failed"
	} else {
		run.Steps = len(outcome.Plan.Steps)
		run.Cost = outcome.Plan.Cost
		run.Duration = outcome.Duration
	}
	if err := store.Record(ctx, run); err != nil {
		return err
	}
	return store.Prune(ctx, cfg.History.KeepLast)
}
