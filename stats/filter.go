package stats

import (
	"strings"

	"datachat/dataset"
)

// ApplyFilters returns the rows satisfying every filter. A filter whose
// field does not resolve, or whose operator is unknown, is skipped
// rather than blanking out the whole row set; one bad filter should not
// void an entire analysis.
func ApplyFilters(rows []dataset.Row, columns []string, filters []Filter) []dataset.Row {
	if len(filters) == 0 {
		return rows
	}

	usable := make([]Filter, 0, len(filters))
	for _, f := range filters {
		column, err := dataset.ResolveField(f.Field, columns)
		if err != nil {
			continue
		}
		if !knownOperator(f.Operator) {
			continue
		}
		f.Field = column
		usable = append(usable, f)
	}
	if len(usable) == 0 {
		return rows
	}

	kept := make([]dataset.Row, 0, len(rows))
	for _, row := range rows {
		match := true
		for _, f := range usable {
			if !matchFilter(row[f.Field], f.Operator, f.Value) {
				match = false
				break
			}
		}
		if match {
			kept = append(kept, row)
		}
	}
	return kept
}

func knownOperator(op string) bool {
	switch op {
	case "==", "=", "!=", ">", "<", ">=", "<=":
		return true
	}
	return false
}

// matchFilter evaluates one predicate against a cell. Ordering
// operators coerce both sides to numbers; a non-numeric operand makes
// the predicate false for that row.
func matchFilter(cell interface{}, operator string, want interface{}) bool {
	switch operator {
	case "==", "=":
		return equalValues(cell, want)
	case "!=":
		return !equalValues(cell, want)
	}

	a, okA := dataset.AsNumber(cell)
	b, okB := dataset.AsNumber(want)
	if !okA || !okB {
		return false
	}
	switch operator {
	case ">":
		return a > b
	case "<":
		return a < b
	case ">=":
		return a >= b
	case "<=":
		return a <= b
	}
	return false
}

// equalValues compares case-insensitively when both sides are strings
// and numerically when both sides coerce to numbers, so a filter value
// of "25" still matches the cell 25.
func equalValues(a, b interface{}) bool {
	sa, aStr := a.(string)
	sb, bStr := b.(string)
	if aStr && bStr {
		return strings.EqualFold(sa, sb)
	}
	na, aNum := dataset.AsNumber(a)
	nb, bNum := dataset.AsNumber(b)
	if aNum && bNum {
		return na == nb
	}
	if !comparableScalar(a) || !comparableScalar(b) {
		return false
	}
	return a == b
}

func comparableScalar(v interface{}) bool {
	switch v.(type) {
	case nil, bool, string, float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}
