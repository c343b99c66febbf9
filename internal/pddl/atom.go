// Package pddl derives initial-state facts and renders Box-World problem
// text from a validated instance.
package pddl

import "strings"

// Atom is one ground fact: a predicate with an ordered argument list.
type Atom struct {
	Pred string
	Args []string
}

// String renders the atom in PDDL form: (pred a b), or (pred) for a
// zero-argument predicate.
func (a Atom) String() string {
	if len(a.Args) == 0 {
		return "(" + a.Pred + ")"
	}
	return "(" + a.Pred + " " + strings.Join(a.Args, " ") + ")"
}

func atom(pred string, args ...string) Atom {
	return Atom{Pred: pred, Args: args}
}
