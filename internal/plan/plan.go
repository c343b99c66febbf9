// Package plan parses planner output into structured plan steps.
package plan

import (
	"encoding/json"
	"fmt"
)

// Step is one planner-selected action: a name and its ordered arguments.
type Step struct {
	Action string
	Args   []string
}

// MarshalJSON renders the step as a single-key object: {"move":["b1","l1"]}.
func (s Step) MarshalJSON() ([]byte, error) {
	args := s.Args
	if args == nil {
		args = []string{}
	}
	return json.Marshal(map[string][]string{s.Action: args})
}

// UnmarshalJSON accepts the single-key object form.
func (s *Step) UnmarshalJSON(data []byte) error {
	var obj map[string][]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if len(obj) != 1 {
		return fmt.Errorf("plan step must be a single-key object, got %d keys", len(obj))
	}
	for action, args := range obj {
		s.Action = action
		s.Args = args
	}
	return nil
}

// Result is a parsed plan: ordered steps plus the cost reported by the
// planner, nil when no comment line carried one.
type Result struct {
	Steps []Step `json:"plan"`
	Cost  *int   `json:"cost"`
}

// FormatError reports a malformed plan-text line.
type FormatError struct {
	Line   int
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("plan line %d: %s: %q", e.Line, e.Reason, e.Text)
}
