package dataset

import "sort"

// ColumnProfile describes one column: its name, inferred semantic type
// and a few leading values kept verbatim for explainability.
type ColumnProfile struct {
	Name         string        `json:"name"`
	Type         string        `json:"type"`
	SampleValues []interface{} `json:"sample_values"`
}

const profileSampleSize = 3

// Profiler builds column profiles for a dataset. In strict mode every
// row must carry exactly the dataset's columns; otherwise missing keys
// are read as nulls and extra keys are ignored.
type Profiler struct {
	inferencer *Inferencer
	strict     bool
}

func NewProfiler(inferencer *Inferencer, strict bool) *Profiler {
	if inferencer == nil {
		inferencer = NewInferencer()
	}
	return &Profiler{inferencer: inferencer, strict: strict}
}

// Build profiles every column of the dataset. It fails on an empty
// dataset, and in strict mode on the first row whose key set does not
// match the columns.
func (p *Profiler) Build(ds *Dataset) ([]ColumnProfile, error) {
	if ds == nil || len(ds.Rows) == 0 {
		return nil, ErrEmptyDataset
	}

	columns := ds.ColumnNames()
	if p.strict {
		if err := checkSchema(ds.Rows, columns); err != nil {
			return nil, err
		}
	}

	profiles := make([]ColumnProfile, 0, len(columns))
	for _, name := range columns {
		values := ds.Values(name)
		samples := values
		if len(samples) > profileSampleSize {
			samples = samples[:profileSampleSize]
		}
		profiles = append(profiles, ColumnProfile{
			Name:         name,
			Type:         p.inferencer.Infer(values),
			SampleValues: samples,
		})
	}
	return profiles, nil
}

// checkSchema verifies that every row holds exactly the given columns.
func checkSchema(rows []Row, columns []string) error {
	want := make(map[string]struct{}, len(columns))
	for _, name := range columns {
		want[name] = struct{}{}
	}

	for i, row := range rows {
		if len(row) == len(columns) {
			same := true
			for _, name := range columns {
				if _, ok := row[name]; !ok {
					same = false
					break
				}
			}
			if same {
				continue
			}
		}

		var missing, extra []string
		for _, name := range columns {
			if _, ok := row[name]; !ok {
				missing = append(missing, name)
			}
		}
		for key := range row {
			if _, ok := want[key]; !ok {
				extra = append(extra, key)
			}
		}
		sort.Strings(extra)
		return &SchemaMismatchError{RowNumber: i + 1, Missing: missing, Extra: extra}
	}
	return nil
}
