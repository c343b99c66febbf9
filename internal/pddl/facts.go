package pddl

import "github.com/metalagman/boxplan/internal/spec"

// InitFacts derives the full initial-state fact set of an instance: robot
// position, hand state, colors, forbidden pairs, and the on/box-at/clear
// decomposition of every stack. The result is unordered; Problem sorts the
// rendered forms for emission.
func InitFacts(s *spec.Spec) []Atom {
	var facts []Atom

	facts = append(facts, atom("robot-at", s.RobotAt))

	if s.Holding == "" {
		facts = append(facts, atom("hands-empty"))
	} else {
		facts = append(facts, atom("holding", s.Holding))
	}

	facts = append(facts, colorFacts(s.Locations, s.LocationProps)...)
	facts = append(facts, colorFacts(s.Boxes, s.BoxProps)...)

	for _, pair := range s.Forbidden {
		facts = append(facts, atom("forbidden-stack", pair.Top, pair.Bottom))
	}

	occupied := make(map[string]bool, len(s.Stacks))
	for loc, stack := range s.Stacks {
		if len(stack) == 0 {
			continue
		}
		occupied[loc] = true
		for _, box := range stack {
			facts = append(facts, atom("box-at", box, loc))
		}
		// Stacks are listed top to bottom: each box is on the next one,
		// the last box is on the location, the first box is clear.
		for i := 0; i < len(stack)-1; i++ {
			facts = append(facts, atom("on", stack[i], stack[i+1]))
		}
		facts = append(facts, atom("on", stack[len(stack)-1], loc))
		facts = append(facts, atom("clear", stack[0]))
	}

	for _, loc := range s.Locations {
		if !occupied[loc] {
			facts = append(facts, atom("clear", loc))
		}
	}

	return facts
}

func colorFacts(names []string, props map[string]spec.Props) []Atom {
	var facts []Atom
	for _, name := range names {
		switch props[name].Color {
		case spec.ColorBlack:
			facts = append(facts, atom("black", name))
		case spec.ColorWhite:
			facts = append(facts, atom("white", name))
		}
	}
	return facts
}
