package dataset

import "fmt"

// Inferencer classifies a column of raw values into one of the four
// semantic types. Classification checks quantitative first, then
// temporal, then low cardinality (ordinal), and falls back to nominal.
type Inferencer struct {
	// OrdinalThreshold is the distinct-to-sample ratio below which a
	// non-numeric, non-temporal column counts as ordinal.
	OrdinalThreshold float64
	// SliceCap bounds how many values are taken from each of the three
	// sample regions (start, one third in, end).
	SliceCap int
}

func NewInferencer() *Inferencer {
	return &Inferencer{
		OrdinalThreshold: 0.3,
		SliceCap:         30,
	}
}

// Infer returns the semantic type of a column. An empty column, or one
// holding only nulls, is nominal.
func (inf *Inferencer) Infer(values []interface{}) string {
	sample := inf.sample(values)
	if len(sample) == 0 {
		return Nominal
	}

	numeric := true
	for _, v := range sample {
		if _, ok := AsNumber(v); !ok {
			numeric = false
			break
		}
	}
	if numeric {
		return Quantitative
	}

	temporal := true
	for _, v := range sample {
		if _, ok := AsTime(v); !ok {
			temporal = false
			break
		}
	}
	if temporal {
		return Temporal
	}

	distinct := make(map[string]struct{}, len(sample))
	for _, v := range sample {
		distinct[fmt.Sprint(v)] = struct{}{}
	}
	if float64(len(distinct))/float64(len(sample)) < inf.OrdinalThreshold {
		return Ordinal
	}
	return Nominal
}

// sample draws values from the start, from roughly the one-third
// point and from the end of the column, so a sorted or padded prefix
// cannot dominate the classification. Nulls are dropped.
func (inf *Inferencer) sample(values []interface{}) []interface{} {
	limit := inf.SliceCap
	if limit <= 0 {
		limit = 30
	}

	raw := values
	if len(values) > 3*limit {
		raw = make([]interface{}, 0, 3*limit)
		raw = append(raw, values[:limit]...)
		mid := len(values) / 3
		raw = append(raw, values[mid:mid+limit]...)
		raw = append(raw, values[len(values)-limit:]...)
	}

	sample := make([]interface{}, 0, len(raw))
	for _, v := range raw {
		if v == nil {
			continue
		}
		sample = append(sample, v)
	}
	return sample
}
