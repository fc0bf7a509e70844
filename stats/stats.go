package stats

// Operation names understood by the engine.
const (
	OpCount       = "count"
	OpMean        = "mean"
	OpMedian      = "median"
	OpSum         = "sum"
	OpMin         = "min"
	OpMax         = "max"
	OpCorrelation = "correlation"
)

// AllOperations lists every operation the engine can compute.
var AllOperations = []string{OpCount, OpMean, OpMedian, OpSum, OpMin, OpMax, OpCorrelation}

// Failure codes carried on unsuccessful results.
const (
	CodeEmptyDataset     = "empty_dataset"
	CodeInvalidOperation = "invalid_operation"
	CodeFieldNotFound    = "field_not_found"
	CodeNoValidData      = "no_valid_data"
)

// Filter is one predicate over a row. A filter list is conjunctive.
type Filter struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

// Request describes one statistic to compute. Field2 is only used by
// correlation, GroupBy is optional for the aggregating operations.
type Request struct {
	Operation string   `json:"operation"`
	Field     string   `json:"field"`
	Field2    string   `json:"field2,omitempty"`
	GroupBy   string   `json:"group_by,omitempty"`
	Filters   []Filter `json:"filters,omitempty"`
}

// Result is the outcome of one computation. On success Output holds a
// number, a group-to-number map or a CorrelationOutput, and the field
// names are the resolved column names actually used. On failure Output
// holds a human-readable message and Code names the failure class.
type Result struct {
	Success        bool        `json:"success"`
	Operation      string      `json:"operation"`
	Field          string      `json:"field,omitempty"`
	Field2         string      `json:"field2,omitempty"`
	GroupBy        string      `json:"group_by,omitempty"`
	Output         interface{} `json:"output"`
	ProcessedCount int         `json:"processed_count,omitempty"`
	TotalCount     int         `json:"total_count,omitempty"`
	Code           string      `json:"code,omitempty"`
}

// CorrelationOutput bundles the Pearson coefficient with supporting
// context for both fields.
type CorrelationOutput struct {
	Correlation float64    `json:"correlation"`
	Field1Stats FieldStats `json:"field1_stats"`
	Field2Stats FieldStats `json:"field2_stats"`
}

type FieldStats struct {
	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}
