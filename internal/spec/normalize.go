package spec

import "sort"

// parseNamedObjects normalizes the dual-shape locations/boxes field: either
// an ordered list of names, or a mapping from name to a property object (or
// null). List input keeps its given order; mapping input is ordered by
// lexicographic key sort, which is the sole source of determinism for
// map-shaped declarations.
func parseNamedObjects(field any, kind string) ([]string, map[string]Props, error) {
	switch v := field.(type) {
	case []any:
		names := make([]string, 0, len(v))
		props := make(map[string]Props, len(v))
		for _, entry := range v {
			name, ok := entry.(string)
			if !ok || name == "" {
				return nil, nil, schemaErrorf(kind, "list entries must be non-empty name strings, got %v", entry)
			}
			names = append(names, name)
			props[name] = Props{}
		}
		return names, props, nil
	case map[string]any:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		props := make(map[string]Props, len(v))
		for _, name := range names {
			value := v[name]
			if value == nil {
				props[name] = Props{}
				continue
			}
			bag, ok := value.(map[string]any)
			if !ok {
				return nil, nil, schemaErrorf(kind, "property value for %q must be an object or null, got %T", name, value)
			}
			props[name] = narrowProps(bag)
		}
		return names, props, nil
	default:
		return nil, nil, schemaErrorf(kind, "must be a list of names or a mapping from name to properties, got %T", field)
	}
}

// narrowProps reduces the open property bag to the recognized fields.
// Unrecognized keys and color values are dropped, not rejected.
func narrowProps(bag map[string]any) Props {
	var p Props
	switch bag["color"] {
	case string(ColorBlack):
		p.Color = ColorBlack
	case string(ColorWhite):
		p.Color = ColorWhite
	}
	return p
}
