package dataset

import (
	"strings"
	"unicode"
)

// ResolveField maps a requested, possibly mis-cased or mis-spaced field
// name onto the actual dataset column. Matching is exact after
// normalization; there is no fuzzy fallback, a miss returns a
// FieldNotFoundError listing every available column.
func ResolveField(requested string, columns []string) (string, error) {
	want := normalizeFieldName(requested)
	if want != "" {
		for _, column := range columns {
			if normalizeFieldName(column) == want {
				return column, nil
			}
		}
	}
	return "", &FieldNotFoundError{Requested: requested, Available: columns}
}

// normalizeFieldName lowercases and drops whitespace and underscores,
// so "Miles_Per_Gallon", "miles per gallon" and " MilesPerGallon " all
// compare equal.
func normalizeFieldName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '_' {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}
