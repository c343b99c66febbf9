package pddl

import (
	"sort"
	"strings"

	"github.com/metalagman/boxplan/internal/spec"
)

// DomainName is the domain every emitted problem references.
const DomainName = "BOX-WORLD"

// Problem renders the complete PDDL problem text for a validated instance.
// Objects follow the canonical declaration order; init facts are sorted
// over their full rendered form, so equivalent instances declared in a
// different order emit a byte-identical init block. Callers rely on that
// reproducibility, it is part of the output contract.
func Problem(s *spec.Spec) string {
	rendered := make([]string, 0, 16)
	for _, fact := range InitFacts(s) {
		rendered = append(rendered, fact.String())
	}
	sort.Strings(rendered)

	var b strings.Builder
	b.WriteString("(define (problem " + s.ProblemName + ")\n")
	b.WriteString("  (:domain " + DomainName + ")\n")
	b.WriteString("  (:objects " + strings.Join(s.Boxes, " ") + " - box\n")
	b.WriteString("          " + strings.Join(s.Locations, " ") + " - location)\n")
	b.WriteString("  (:init\n")
	for _, fact := range rendered {
		b.WriteString("    " + fact + "\n")
	}
	b.WriteString("  )\n")
	b.WriteString("  (:goal " + GoalFormula(s) + ")\n")
	b.WriteString(")")
	return b.String()
}
