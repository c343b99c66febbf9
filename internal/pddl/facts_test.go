package pddl

import (
	"testing"

	"github.com/metalagman/boxplan/internal/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rendered(facts []Atom) []string {
	out := make([]string, 0, len(facts))
	for _, fact := range facts {
		out = append(out, fact.String())
	}
	return out
}

func TestInitFacts_ThreeBoxStackDecomposition(t *testing.T) {
	t.Parallel()

	s := &spec.Spec{
		ProblemName: "tower",
		Locations:   []string{"l1", "l2"},
		Boxes:       []string{"b1", "b2", "b3"},
		RobotAt:     "l1",
		Stacks:      map[string][]string{"l1": {"b1", "b2", "b3"}},
	}

	facts := rendered(InitFacts(s))
	assert.ElementsMatch(t, []string{
		"(robot-at l1)",
		"(hands-empty)",
		"(box-at b1 l1)",
		"(box-at b2 l1)",
		"(box-at b3 l1)",
		"(on b1 b2)",
		"(on b2 b3)",
		"(on b3 l1)",
		"(clear b1)",
		"(clear l2)",
	}, facts)
}

func TestInitFacts_SingleBoxStack(t *testing.T) {
	t.Parallel()

	s := &spec.Spec{
		Locations: []string{"l1"},
		Boxes:     []string{"b1"},
		RobotAt:   "l1",
		Stacks:    map[string][]string{"l1": {"b1"}},
	}

	facts := rendered(InitFacts(s))
	assert.ElementsMatch(t, []string{
		"(robot-at l1)",
		"(hands-empty)",
		"(box-at b1 l1)",
		"(on b1 l1)",
		"(clear b1)",
	}, facts)
	assert.NotContains(t, facts, "(clear l1)")
}

func TestInitFacts_EmptyAndAbsentStacksAreClear(t *testing.T) {
	t.Parallel()

	s := &spec.Spec{
		Locations: []string{"l1", "l2", "l3"},
		Boxes:     []string{"b1"},
		RobotAt:   "l1",
		Stacks: map[string][]string{
			"l1": {"b1"},
			"l2": {},
		},
	}

	facts := rendered(InitFacts(s))
	assert.Contains(t, facts, "(clear l2)")
	assert.Contains(t, facts, "(clear l3)")
	assert.NotContains(t, facts, "(clear l1)")
}

func TestInitFacts_HeldBoxHasNoPlacementFacts(t *testing.T) {
	t.Parallel()

	s := &spec.Spec{
		Locations: []string{"l1"},
		Boxes:     []string{"b1"},
		RobotAt:   "l1",
		Holding:   "b1",
		Stacks:    map[string][]string{},
	}

	facts := rendered(InitFacts(s))
	assert.Contains(t, facts, "(holding b1)")
	assert.NotContains(t, facts, "(hands-empty)")
	for _, fact := range facts {
		assert.NotContains(t, fact, "box-at")
	}
}

func TestInitFacts_ColorsAndForbiddenPairs(t *testing.T) {
	t.Parallel()

	s := &spec.Spec{
		Locations:     []string{"l1"},
		Boxes:         []string{"b1", "b2"},
		LocationProps: map[string]spec.Props{"l1": {Color: spec.ColorWhite}},
		BoxProps:      map[string]spec.Props{"b1": {Color: spec.ColorBlack}},
		RobotAt:       "l1",
		Stacks:        map[string][]string{"l1": {"b1", "b2"}},
		Forbidden:     []spec.ForbiddenPair{{Top: "b2", Bottom: "b1"}},
	}

	facts := rendered(InitFacts(s))
	assert.Contains(t, facts, "(white l1)")
	assert.Contains(t, facts, "(black b1)")
	assert.Contains(t, facts, "(forbidden-stack b2 b1)")
}

func TestInitFacts_EveryBoxPlacedExactlyOnce(t *testing.T) {
	t.Parallel()

	s := &spec.Spec{
		Locations: []string{"l1", "l2", "l3"},
		Boxes:     []string{"b1", "b2", "b3", "b4"},
		RobotAt:   "l2",
		Holding:   "b4",
		Stacks: map[string][]string{
			"l1": {"b1", "b2"},
			"l3": {"b3"},
		},
	}

	placements := make(map[string]int)
	for _, fact := range InitFacts(s) {
		if fact.Pred == "box-at" {
			placements[fact.Args[0]]++
		}
	}
	require.Equal(t, map[string]int{"b1": 1, "b2": 1, "b3": 1}, placements)
}
