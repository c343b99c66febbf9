package pddl

import _ "embed"

// DefaultDomain is the bundled BOX-WORLD domain definition. The tool never
// interprets it; it only ships the text for planners that expect a domain
// file next to the emitted problem.
//
//go:embed domain.pddl
var DefaultDomain string
