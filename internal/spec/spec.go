// Package spec normalizes and validates Box-World problem instances.
package spec

// Color is the single recognized unary property for boxes and locations.
// Adding another unary property means adding a field to Props and a
// matching fact in the pddl package.
type Color string

// Recognized colors. Any other value carries no color at all.
const (
	ColorNone  Color = ""
	ColorBlack Color = "black"
	ColorWhite Color = "white"
)

// Props holds the narrowed per-entity properties. The open property bag of
// the input document does not survive past normalization.
type Props struct {
	Color Color
}

// OnPair is a goal on-relation: Top rests directly on Support, which may be
// a box or a location.
type OnPair struct {
	Top     string
	Support string
}

// AtPair is a goal box-at relation.
type AtPair struct {
	Box      string
	Location string
}

// ForbiddenPair forbids stacking Top directly on Bottom.
type ForbiddenPair struct {
	Top    string
	Bottom string
}

// Goal is the conjunctive goal of an instance. PDDL fragments are appended
// to the conjunction verbatim, in order, after the structured atoms.
type Goal struct {
	On    []OnPair
	BoxAt []AtPair
	Clear []string
	PDDL  []string
}

// Spec is a validated Box-World problem instance. Build constructs it once
// from a decoded document; nothing mutates it afterwards, and everything
// downstream (facts, goal formula, problem text) is derived from it.
type Spec struct {
	ProblemName   string
	Locations     []string
	Boxes         []string
	LocationProps map[string]Props
	BoxProps      map[string]Props
	RobotAt       string
	Holding       string              // empty means hands are free
	Stacks        map[string][]string // location -> boxes, top first
	Forbidden     []ForbiddenPair
	Goal          Goal
}
