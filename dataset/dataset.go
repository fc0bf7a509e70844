package dataset

import "sort"

// Semantic column types used for analysis and visualization.
const (
	Quantitative = "quantitative"
	Temporal     = "temporal"
	Ordinal      = "ordinal"
	Nominal      = "nominal"
)

// Row is a single record keyed by column name. Values are whatever the
// upload parser produced: float64, string, bool or nil.
type Row map[string]interface{}

// Dataset is an uploaded table together with the column order the
// parser saw. Rows are never mutated once stored; every new upload
// replaces the session's dataset wholesale.
type Dataset struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// ColumnNames returns the column set in a stable order. When the parser
// did not record an explicit order, the names are taken from the first
// row and sorted so repeated calls agree.
func (d *Dataset) ColumnNames() []string {
	if d == nil {
		return nil
	}
	if len(d.Columns) > 0 {
		return d.Columns
	}
	if len(d.Rows) == 0 {
		return nil
	}
	names := make([]string, 0, len(d.Rows[0]))
	for name := range d.Rows[0] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Values collects every row's value for one column. Rows missing the
// key contribute nil.
func (d *Dataset) Values(column string) []interface{} {
	values := make([]interface{}, 0, len(d.Rows))
	for _, row := range d.Rows {
		values = append(values, row[column])
	}
	return values
}
