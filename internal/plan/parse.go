package plan

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// lineKind classifies one line of planner output.
type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineAtom
	lineUnrecognized
	lineMalformed
)

var costPattern = regexp.MustCompile(`cost\s*=\s*(\d+)`)

// classify tags a single trimmed line. Atom lines must be wrapped in
// balanced outer parentheses; a line that opens or closes a parenthesis
// without its partner is malformed rather than unrecognized.
func classify(trimmed string) lineKind {
	switch {
	case trimmed == "":
		return lineBlank
	case strings.HasPrefix(trimmed, ";"):
		return lineComment
	case strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")"):
		return lineAtom
	case strings.HasPrefix(trimmed, "(") || strings.HasSuffix(trimmed, ")"):
		return lineMalformed
	default:
		return lineUnrecognized
	}
}

// Parse reads planner output line by line. Comment lines may carry a
// "cost = N" marker; when several do, the last one wins. Non-blank,
// non-comment lines that are not parenthesized atoms are dropped, which
// tolerates planner banners and progress noise.
func Parse(r io.Reader) (*Result, error) {
	result := &Result{Steps: []Step{}}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		trimmed := strings.TrimSpace(scanner.Text())
		switch classify(trimmed) {
		case lineBlank, lineUnrecognized:
			continue
		case lineComment:
			if m := costPattern.FindStringSubmatch(trimmed); m != nil {
				cost, err := strconv.Atoi(m[1])
				if err != nil {
					return nil, &FormatError{Line: lineNo, Text: trimmed, Reason: "cost is not an integer"}
				}
				result.Cost = &cost
			}
		case lineAtom:
			fields := strings.Fields(trimmed[1 : len(trimmed)-1])
			if len(fields) == 0 {
				return nil, &FormatError{Line: lineNo, Text: trimmed, Reason: "atom has no action name"}
			}
			result.Steps = append(result.Steps, Step{Action: fields[0], Args: fields[1:]})
		case lineMalformed:
			return nil, &FormatError{Line: lineNo, Text: trimmed, Reason: "unbalanced parentheses"}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return result, nil
}

// ParseString parses plan text held in memory.
func ParseString(text string) (*Result, error) {
	return Parse(strings.NewReader(text))
}
