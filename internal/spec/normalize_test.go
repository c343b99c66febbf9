package spec

import (
	"errors"
	"testing"
)

func TestParseNamedObjects_ListPreservesOrder(t *testing.T) {
	t.Parallel()

	names, props, err := parseNamedObjects([]any{"l3", "l1", "l2"}, "locations")
	if err != nil {
		t.Fatalf("parseNamedObjects returned error: %v", err)
	}
	want := []string{"l3", "l1", "l2"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
	for _, name := range want {
		if props[name] != (Props{}) {
			t.Fatalf("props[%q] = %+v, want empty", name, props[name])
		}
	}
}

func TestParseNamedObjects_MapSortsKeysLexicographically(t *testing.T) {
	t.Parallel()

	field := map[string]any{
		"b2": nil,
		"b1": map[string]any{"color": "black"},
		"b3": map[string]any{"color": "white"},
	}
	names, props, err := parseNamedObjects(field, "boxes")
	if err != nil {
		t.Fatalf("parseNamedObjects returned error: %v", err)
	}
	want := []string{"b1", "b2", "b3"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
	if props["b1"].Color != ColorBlack {
		t.Fatalf("b1 color = %q, want black", props["b1"].Color)
	}
	if props["b2"].Color != ColorNone {
		t.Fatalf("b2 color = %q, want none", props["b2"].Color)
	}
	if props["b3"].Color != ColorWhite {
		t.Fatalf("b3 color = %q, want white", props["b3"].Color)
	}
}

func TestParseNamedObjects_DropsUnrecognizedProperties(t *testing.T) {
	t.Parallel()

	field := map[string]any{
		"l1": map[string]any{"color": "green", "weight": 3},
	}
	_, props, err := parseNamedObjects(field, "locations")
	if err != nil {
		t.Fatalf("parseNamedObjects returned error: %v", err)
	}
	if props["l1"].Color != ColorNone {
		t.Fatalf("unrecognized color survived: %q", props["l1"].Color)
	}
}

func TestParseNamedObjects_RejectsBadShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		field any
	}{
		{"non-string list entry", []any{"l1", 2}},
		{"empty name in list", []any{""}},
		{"scalar property value", map[string]any{"l1": "black"}},
		{"scalar field", "l1"},
		{"nil field", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := parseNamedObjects(tc.field, "locations")
			if err == nil {
				t.Fatal("parseNamedObjects returned nil error, want SchemaError")
			}
			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("error = %v, want *SchemaError", err)
			}
			if schemaErr.Field != "locations" {
				t.Fatalf("error field = %q, want locations", schemaErr.Field)
			}
		})
	}
}
