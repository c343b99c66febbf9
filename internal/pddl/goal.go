package pddl

import (
	"strings"

	"github.com/metalagman/boxplan/internal/spec"
)

// GoalFormula composes the conjunctive goal: on atoms, then box-at, then
// clear, then raw PDDL fragments verbatim. A single conjunct is returned
// unwrapped; an empty goal renders as the explicit empty conjunction.
func GoalFormula(s *spec.Spec) string {
	var conjuncts []string
	for _, pair := range s.Goal.On {
		conjuncts = append(conjuncts, atom("on", pair.Top, pair.Support).String())
	}
	for _, pair := range s.Goal.BoxAt {
		conjuncts = append(conjuncts, atom("box-at", pair.Box, pair.Location).String())
	}
	for _, name := range s.Goal.Clear {
		conjuncts = append(conjuncts, atom("clear", name).String())
	}
	conjuncts = append(conjuncts, s.Goal.PDDL...)

	switch len(conjuncts) {
	case 0:
		return "(and)"
	case 1:
		return conjuncts[0]
	default:
		return "(and " + strings.Join(conjuncts, " ") + ")"
	}
}
