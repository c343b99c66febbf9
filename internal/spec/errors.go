package spec

import "fmt"

// SchemaError reports a document whose shape does not match the expected
// instance layout. It is produced at the normalization boundary, before any
// referential checks run.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return "schema: " + e.Reason
	}
	return fmt.Sprintf("schema: %s: %s", e.Field, e.Reason)
}

func schemaErrorf(field, format string, args ...any) error {
	return &SchemaError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ValidationError reports a well-shaped document that violates a
// referential or structural invariant of the Box-World instance. Field
// names the offending place in the document; Value carries the offending
// name when one exists.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid instance: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid instance: %s=%q: %s", e.Field, e.Value, e.Reason)
}

func validationErrorf(field, value, format string, args ...any) error {
	return &ValidationError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}
