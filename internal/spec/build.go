package spec

import (
	"fmt"
	"sort"
	"strings"
)

var requiredFields = []string{"problem_name", "locations", "boxes", "initial_state", "goal"}

// Build constructs a validated Spec from a decoded instance document.
// Checks run in a fixed order and stop at the first violation; no partial
// Spec is ever returned.
func Build(doc map[string]any) (*Spec, error) {
	for _, field := range requiredFields {
		if _, ok := doc[field]; !ok {
			return nil, validationErrorf(field, "", "required field is missing")
		}
	}

	name, ok := doc["problem_name"].(string)
	if !ok || name == "" {
		return nil, validationErrorf("problem_name", "", "must be a non-empty string")
	}

	locations, locProps, err := parseNamedObjects(doc["locations"], "locations")
	if err != nil {
		return nil, err
	}
	boxes, boxProps, err := parseNamedObjects(doc["boxes"], "boxes")
	if err != nil {
		return nil, err
	}

	locSet := stringSet(locations)
	boxSet := stringSet(boxes)

	s := &Spec{
		ProblemName:   name,
		Locations:     locations,
		Boxes:         boxes,
		LocationProps: locProps,
		BoxProps:      boxProps,
		Stacks:        map[string][]string{},
	}

	init, ok := doc["initial_state"].(map[string]any)
	if !ok {
		return nil, validationErrorf("initial_state", "", "must be an object")
	}
	if err := buildInitialState(s, init, locSet, boxSet); err != nil {
		return nil, err
	}

	if err := buildForbidden(s, doc["forbidden_stack"], boxSet); err != nil {
		return nil, err
	}

	goal, ok := doc["goal"].(map[string]any)
	if !ok {
		return nil, validationErrorf("goal", "", "must be an object")
	}
	if err := buildGoal(s, goal, locSet, boxSet); err != nil {
		return nil, err
	}

	if err := checkPlacement(s); err != nil {
		return nil, err
	}
	return s, nil
}

func buildInitialState(s *Spec, init map[string]any, locSet, boxSet map[string]bool) error {
	robotRaw, present := init["robot_at"]
	if !present {
		return validationErrorf("initial_state.robot_at", "", "required field is missing")
	}
	robotAt, ok := robotRaw.(string)
	if !ok || robotAt == "" {
		return validationErrorf("initial_state.robot_at", "", "must be a location name string")
	}
	if !locSet[robotAt] {
		return validationErrorf("initial_state.robot_at", robotAt, "is not a declared location")
	}
	s.RobotAt = robotAt

	if holding, present := init["holding"]; present && holding != nil {
		box, ok := holding.(string)
		if !ok || box == "" {
			return validationErrorf("initial_state.holding", "", "must be a box name string or null")
		}
		if !boxSet[box] {
			return validationErrorf("initial_state.holding", box, "is not a declared box")
		}
		s.Holding = box
	}

	stacksRaw, present := init["stacks"]
	if !present {
		return validationErrorf("initial_state.stacks", "", "required field is missing")
	}
	stacks, ok := stacksRaw.(map[string]any)
	if !ok {
		return validationErrorf("initial_state.stacks", "", "must map locations to top-to-bottom box lists")
	}
	for _, loc := range sortedKeys(stacks) {
		if !locSet[loc] {
			return validationErrorf("initial_state.stacks", loc, "is not a declared location")
		}
		raw := stacks[loc]
		if raw == nil {
			continue
		}
		list, ok := raw.([]any)
		if !ok {
			return validationErrorf("initial_state.stacks."+loc, "", "must be a list of box names, top first")
		}
		if len(list) == 0 {
			continue
		}
		stack := make([]string, 0, len(list))
		seen := make(map[string]bool, len(list))
		for _, entry := range list {
			box, ok := entry.(string)
			if !ok || box == "" {
				return validationErrorf("initial_state.stacks."+loc, "", "entries must be box name strings")
			}
			if !boxSet[box] {
				return validationErrorf("initial_state.stacks."+loc, box, "is not a declared box")
			}
			if seen[box] {
				return validationErrorf("initial_state.stacks."+loc, box, "appears twice in the same stack")
			}
			seen[box] = true
			stack = append(stack, box)
		}
		s.Stacks[loc] = stack
	}
	return nil
}

func buildForbidden(s *Spec, raw any, boxSet map[string]bool) error {
	pairs, err := pairList(raw, "forbidden_stack")
	if err != nil {
		return err
	}
	for i, pair := range pairs {
		field := fmt.Sprintf("forbidden_stack[%d]", i)
		if !boxSet[pair[0]] {
			return validationErrorf(field, pair[0], "is not a declared box")
		}
		if !boxSet[pair[1]] {
			return validationErrorf(field, pair[1], "is not a declared box")
		}
		s.Forbidden = append(s.Forbidden, ForbiddenPair{Top: pair[0], Bottom: pair[1]})
	}
	return nil
}

func buildGoal(s *Spec, goal map[string]any, locSet, boxSet map[string]bool) error {
	onPairs, err := pairList(goal["on"], "goal.on")
	if err != nil {
		return err
	}
	for i, pair := range onPairs {
		field := fmt.Sprintf("goal.on[%d]", i)
		if !boxSet[pair[0]] {
			return validationErrorf(field, pair[0], "top must be a declared box")
		}
		if !boxSet[pair[1]] && !locSet[pair[1]] {
			return validationErrorf(field, pair[1], "support must be a declared box or location")
		}
		s.Goal.On = append(s.Goal.On, OnPair{Top: pair[0], Support: pair[1]})
	}

	atPairs, err := pairList(goal["box-at"], "goal.box-at")
	if err != nil {
		return err
	}
	for i, pair := range atPairs {
		field := fmt.Sprintf("goal.box-at[%d]", i)
		if !boxSet[pair[0]] {
			return validationErrorf(field, pair[0], "is not a declared box")
		}
		if !locSet[pair[1]] {
			return validationErrorf(field, pair[1], "is not a declared location")
		}
		s.Goal.BoxAt = append(s.Goal.BoxAt, AtPair{Box: pair[0], Location: pair[1]})
	}

	if raw := goal["clear"]; raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return validationErrorf("goal.clear", "", "must be a list of box and location names")
		}
		for _, entry := range list {
			name, ok := entry.(string)
			if !ok {
				return validationErrorf("goal.clear", "", "entries must be box or location names")
			}
			if !boxSet[name] && !locSet[name] {
				return validationErrorf("goal.clear", name, "is not a declared box or location")
			}
			s.Goal.Clear = append(s.Goal.Clear, name)
		}
	}

	if raw := goal["pddl"]; raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return validationErrorf("goal.pddl", "", "must be a list of raw formula strings")
		}
		for _, entry := range list {
			fragment, ok := entry.(string)
			if !ok {
				return validationErrorf("goal.pddl", "", "entries must be strings")
			}
			s.Goal.PDDL = append(s.Goal.PDDL, fragment)
		}
	}
	return nil
}

// checkPlacement enforces the completeness/uniqueness invariant: every
// declared box is either held by the robot or sits in exactly one stack.
func checkPlacement(s *Spec) error {
	counts := make(map[string]int, len(s.Boxes))
	if s.Holding != "" {
		counts[s.Holding]++
	}
	for _, stack := range s.Stacks {
		for _, box := range stack {
			counts[box]++
		}
	}

	var duplicated, missing []string
	for _, box := range s.Boxes {
		switch counts[box] {
		case 1:
		case 0:
			missing = append(missing, box)
		default:
			duplicated = append(duplicated, box)
		}
	}
	if len(duplicated) > 0 {
		sort.Strings(duplicated)
		return validationErrorf("boxes", strings.Join(duplicated, ","), "placed more than once across holding and stacks")
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return validationErrorf("boxes", strings.Join(missing, ","), "not placed in holding or any stack")
	}
	return nil
}

func pairList(raw any, field string) ([][2]string, error) {
	if raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, validationErrorf(field, "", "must be a list of two-element name pairs")
	}
	pairs := make([][2]string, 0, len(list))
	for i, entry := range list {
		pair, ok := entry.([]any)
		if !ok || len(pair) != 2 {
			return nil, validationErrorf(fmt.Sprintf("%s[%d]", field, i), "", "must be a two-element name pair")
		}
		first, ok1 := pair[0].(string)
		second, ok2 := pair[1].(string)
		if !ok1 || !ok2 {
			return nil, validationErrorf(fmt.Sprintf("%s[%d]", field, i), "", "pair elements must be name strings")
		}
		pairs = append(pairs, [2]string{first, second})
	}
	return pairs, nil
}

func stringSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
