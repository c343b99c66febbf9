package solver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planner.sh")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755))
	return path
}

func TestNew_RequiresCmd(t *testing.T) {
	t.Parallel()

	_, err := New(Config{})
	require.Error(t, err)
}

func TestSolve_PlanFilePlaceholder(t *testing.T) {
	t.Parallel()

	script := writeScript(t, `#!/bin/sh
test -f "$1" || exit 2
test -f "$2" || exit 2
printf '(pick-up b1 l1)\n; cost = 1\n' > "$3"
`)
	slv, err := New(Config{Cmd: []string{script, "{domain}", "{problem}", "{plan}"}})
	require.NoError(t, err)

	outcome, err := slv.Solve(context.Background(), "(define (problem p))")
	require.NoError(t, err)
	require.Len(t, outcome.Plan.Steps, 1)
	assert.Equal(t, "pick-up", outcome.Plan.Steps[0].Action)
	require.NotNil(t, outcome.Plan.Cost)
	assert.Equal(t, 1, *outcome.Plan.Cost)
}

func TestSolve_StdoutWithoutPlanPlaceholder(t *testing.T) {
	t.Parallel()

	script := writeScript(t, `#!/bin/sh
echo "planner booting"
echo "(move b1 l1 l2)"
echo "; cost = 4"
`)
	slv, err := New(Config{Cmd: []string{script, "{domain}", "{problem}"}})
	require.NoError(t, err)

	outcome, err := slv.Solve(context.Background(), "(define (problem p))")
	require.NoError(t, err)
	require.Len(t, outcome.Plan.Steps, 1)
	assert.Equal(t, []string{"b1", "l1", "l2"}, outcome.Plan.Steps[0].Args)
	require.NotNil(t, outcome.Plan.Cost)
	assert.Equal(t, 4, *outcome.Plan.Cost)
}

func TestSolve_UsesConfiguredDomainFile(t *testing.T) {
	t.Parallel()

	domainPath := filepath.Join(t.TempDir(), "custom.pddl")
	require.NoError(t, os.WriteFile(domainPath, []byte("(define (domain BOX-WORLD))"), 0o644))

	script := writeScript(t, `#!/bin/sh
grep -q "domain BOX-WORLD" "$1" || exit 2
echo "(wait)"
`)
	slv, err := New(Config{Cmd: []string{script, "{domain}", "{problem}"}, DomainPath: domainPath})
	require.NoError(t, err)

	outcome, err := slv.Solve(context.Background(), "(define (problem p))")
	require.NoError(t, err)
	require.Len(t, outcome.Plan.Steps, 1)
}

func TestSolve_PlannerFailureSurfacesStderr(t *testing.T) {
	t.Parallel()

	script := writeScript(t, `#!/bin/sh
echo "no applicable actions" 1>&2
exit 3
`)
	slv, err := New(Config{Cmd: []string{script, "{problem}"}})
	require.NoError(t, err)

	_, err = slv.Solve(context.Background(), "(define (problem p))")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no applicable actions")
}

func TestSolve_KeepWorkDirLeavesArtifacts(t *testing.T) {
	t.Parallel()

	script := writeScript(t, `#!/bin/sh
echo "(wait)"
`)
	slv, err := New(Config{Cmd: []string{script, "{problem}"}, KeepWorkDir: true})
	require.NoError(t, err)

	outcome, err := slv.Solve(context.Background(), "(define (problem p))")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(outcome.WorkDir) }()

	_, statErr := os.Stat(filepath.Join(outcome.WorkDir, "problem.pddl"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(outcome.WorkDir, "domain.pddl"))
	assert.NoError(t, statErr)
}
