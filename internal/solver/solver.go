// Package solver runs an external planner over an emitted problem.
package solver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/metalagman/boxplan/internal/pddl"
	"github.com/metalagman/boxplan/internal/plan"
)

// Config tells the solver how to invoke the planner. Cmd is the argv
// template; {domain}, {problem} and {plan} placeholders are replaced with
// the matching file paths before execution. Without a {plan} placeholder
// the planner's stdout is read as the plan text.
type Config struct {
	Cmd         []string
	DomainPath  string // empty means write the bundled BOX-WORLD domain
	WorkDir     string // empty means a fresh temp dir, removed afterwards
	KeepWorkDir bool
}

// Solver invokes a planner executable once per problem. Each solve is a
// single blocking subprocess run; the solver never retries.
type Solver struct {
	cfg Config
}

// New validates the invocation config.
func New(cfg Config) (*Solver, error) {
	if len(cfg.Cmd) == 0 {
		return nil, fmt.Errorf("planner cmd is empty")
	}
	return &Solver{cfg: cfg}, nil
}

// Outcome carries the parsed plan plus run metadata.
type Outcome struct {
	Plan     *plan.Result
	WorkDir  string
	Duration time.Duration
}

// Solve writes the problem and domain into the work dir, runs the planner,
// and parses its plan output.
func (s *Solver) Solve(ctx context.Context, problem string) (*Outcome, error) {
	workDir := s.cfg.WorkDir
	if workDir == "" {
		dir, err := os.MkdirTemp("", "boxplan-*")
		if err != nil {
			return nil, fmt.Errorf("create work dir: %w", err)
		}
		workDir = dir
		if s.cfg.KeepWorkDir {
			log.Info().Str("dir", workDir).Msg("keeping planner work dir")
		} else {
			defer func() { _ = os.RemoveAll(dir) }()
		}
	}

	problemPath := filepath.Join(workDir, "problem.pddl")
	if err := os.WriteFile(problemPath, []byte(problem+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("write problem: %w", err)
	}

	domainPath := s.cfg.DomainPath
	if domainPath == "" {
		domainPath = filepath.Join(workDir, "domain.pddl")
		if err := os.WriteFile(domainPath, []byte(pddl.DefaultDomain), 0o644); err != nil {
			return nil, fmt.Errorf("write domain: %w", err)
		}
	}

	planPath := filepath.Join(workDir, "plan.out")
	argv, usesPlanFile := expandArgv(s.cfg.Cmd, domainPath, problemPath, planPath)

	log.Debug().Str("dir", workDir).Strs("argv", argv).Msg("running planner")
	start := time.Now()
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = workDir
	out, err := cmd.Output()
	duration := time.Since(start)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("planner failed: %w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("planner failed: %w", err)
	}

	planText := string(out)
	if usesPlanFile {
		data, err := os.ReadFile(planPath)
		if err != nil {
			return nil, fmt.Errorf("read plan file: %w", err)
		}
		planText = string(data)
	}

	parsed, err := plan.ParseString(planText)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("steps", len(parsed.Steps)).Dur("took", duration).Msg("planner finished")
	return &Outcome{Plan: parsed, WorkDir: workDir, Duration: duration}, nil
}

func expandArgv(tmpl []string, domain, problem, planFile string) ([]string, bool) {
	argv := make([]string, len(tmpl))
	usesPlanFile := false
	for i, arg := range tmpl {
		if strings.Contains(arg, "{plan}") {
			usesPlanFile = true
		}
		arg = strings.ReplaceAll(arg, "{domain}", domain)
		arg = strings.ReplaceAll(arg, "{problem}", problem)
		arg = strings.ReplaceAll(arg, "{plan}", planFile)
		argv[i] = arg
	}
	return argv, usesPlanFile
}
