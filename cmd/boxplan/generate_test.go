package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInstance = `{
  "problem_name": "swap",
  "locations": ["l1", "l2"],
  "boxes": ["b1", "b2"],
  "initial_state": {
    "robot_at": "l1",
    "stacks": {"l1": ["b1", "b2"]}
  },
  "goal": {"on": [["b1", "l2"]]}
}`

func TestGenerate_WritesProblemFile(t *testing.T) {
	dir := t.TempDir()
	instancePath := filepath.Join(dir, "instance.json")
	require.NoError(t, os.WriteFile(instancePath, []byte(testInstance), 0o644))
	outPath := filepath.Join(dir, "problem.pddl")

	cmd := generateCmd()
	cmd.SetArgs([]string{instancePath, "-o", outPath})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "(define (problem swap)")
	assert.Contains(t, string(data), "(:domain BOX-WORLD)")
	assert.Contains(t, string(data), "(:goal (on b1 l2))")
}

func TestGenerate_PrintsToStdoutByDefault(t *testing.T) {
	instancePath := filepath.Join(t.TempDir(), "instance.json")
	require.NoError(t, os.WriteFile(instancePath, []byte(testInstance), 0o644))

	var out bytes.Buffer
	cmd := generateCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{instancePath})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "(robot-at l1)")
}

func TestGenerate_RejectsInvalidInstance(t *testing.T) {
	instancePath := filepath.Join(t.TempDir(), "instance.json")
	broken := `{"problem_name": "x", "locations": ["l1"], "boxes": ["b1"],
		"initial_state": {"robot_at": "l1", "stacks": {}}, "goal": {}}`
	require.NoError(t, os.WriteFile(instancePath, []byte(broken), 0o644))

	cmd := generateCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{instancePath})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b1")
}
