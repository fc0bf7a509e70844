package stats

import (
	"fmt"
	"math"
	"strings"

	"datachat/dataset"
)

// Engine computes statistics over a dataset. It holds no dataset state
// of its own; every call is a pure function of the request and the
// dataset passed in, so one engine serves concurrent requests.
type Engine struct {
	enabled map[string]bool
}

// NewEngine builds an engine restricted to the given operations. With
// no arguments every operation is enabled.
func NewEngine(operations ...string) *Engine {
	if len(operations) == 0 {
		operations = AllOperations
	}
	enabled := make(map[string]bool, len(operations))
	for _, op := range operations {
		enabled[strings.ToLower(strings.TrimSpace(op))] = true
	}
	return &Engine{enabled: enabled}
}

func (e *Engine) Enabled(operation string) bool {
	return e.enabled[operation]
}

// Compute resolves the request's fields, applies its filters and runs
// the requested aggregation. Failures come back as structured results
// with success false, never as panics.
func (e *Engine) Compute(req Request, ds *dataset.Dataset) Result {
	op := strings.ToLower(strings.TrimSpace(req.Operation))

	if ds == nil || len(ds.Rows) == 0 {
		return Result{
			Success:   false,
			Operation: op,
			Output:    dataset.ErrEmptyDataset.Error(),
			Code:      CodeEmptyDataset,
		}
	}
	if !e.Enabled(op) {
		return Result{
			Success:   false,
			Operation: op,
			Output:    fmt.Sprintf("unsupported operation %q", req.Operation),
			Code:      CodeInvalidOperation,
		}
	}

	columns := ds.ColumnNames()
	field, err := dataset.ResolveField(req.Field, columns)
	if err != nil {
		return Result{Success: false, Operation: op, Output: err.Error(), Code: CodeFieldNotFound}
	}

	var field2 string
	if op == OpCorrelation {
		field2, err = dataset.ResolveField(req.Field2, columns)
		if err != nil {
			return Result{Success: false, Operation: op, Field: field, Output: err.Error(), Code: CodeFieldNotFound}
		}
	}

	var groupBy string
	if req.GroupBy != "" {
		groupBy, err = dataset.ResolveField(req.GroupBy, columns)
		if err != nil {
			return Result{Success: false, Operation: op, Field: field, Output: err.Error(), Code: CodeFieldNotFound}
		}
	}

	rows := ApplyFilters(ds.Rows, columns, req.Filters)

	switch {
	case op == OpCorrelation:
		return correlate(rows, field, field2)
	case groupBy != "":
		return aggregateGrouped(op, rows, field, groupBy)
	default:
		return aggregate(op, rows, field)
	}
}

// aggregate computes one statistic over the whole (filtered) row set.
func aggregate(op string, rows []dataset.Row, field string) Result {
	total := len(rows)

	if op == OpCount {
		n := 0
		for _, row := range rows {
			if row[field] != nil {
				n++
			}
		}
		if n == 0 {
			return Result{
				Success:   false,
				Operation: op,
				Field:     field,
				Output:    fmt.Sprintf("no values found for field %q", field),
				Code:      CodeNoValidData,
			}
		}
		return Result{
			Success:        true,
			Operation:      op,
			Field:          field,
			Output:         n,
			ProcessedCount: n,
			TotalCount:     total,
		}
	}

	nums := numericColumn(rows, field)
	if len(nums) == 0 {
		return Result{
			Success:   false,
			Operation: op,
			Field:     field,
			Output:    fmt.Sprintf("no valid numerical data for field %q", field),
			Code:      CodeNoValidData,
		}
	}

	return Result{
		Success:        true,
		Operation:      op,
		Field:          field,
		Output:         Round2(applyOp(op, nums)),
		ProcessedCount: len(nums),
		TotalCount:     total,
	}
}

// aggregateGrouped computes the statistic once per group. Groups left
// without a single usable value are dropped from the result, not
// reported as zero. Count is the exception: it counts whole rows per
// group, so every encountered group appears.
func aggregateGrouped(op string, rows []dataset.Row, field, groupBy string) Result {
	total := len(rows)
	groups := make(map[string][]dataset.Row)
	for _, row := range rows {
		key := groupKey(row[groupBy])
		groups[key] = append(groups[key], row)
	}

	if op == OpCount {
		output := make(map[string]int, len(groups))
		processed := 0
		for key, groupRows := range groups {
			output[key] = len(groupRows)
			processed += len(groupRows)
		}
		if len(output) == 0 {
			return Result{
				Success:   false,
				Operation: op,
				Field:     field,
				GroupBy:   groupBy,
				Output:    fmt.Sprintf("no values found for field %q", field),
				Code:      CodeNoValidData,
			}
		}
		return Result{
			Success:        true,
			Operation:      op,
			Field:          field,
			GroupBy:        groupBy,
			Output:         output,
			ProcessedCount: processed,
			TotalCount:     total,
		}
	}

	output := make(map[string]float64, len(groups))
	processed := 0
	for key, groupRows := range groups {
		nums := numericColumn(groupRows, field)
		if len(nums) == 0 {
			continue
		}
		output[key] = Round2(applyOp(op, nums))
		processed += len(nums)
	}
	if len(output) == 0 {
		return Result{
			Success:   false,
			Operation: op,
			Field:     field,
			GroupBy:   groupBy,
			Output:    fmt.Sprintf("no valid numerical data for field %q", field),
			Code:      CodeNoValidData,
		}
	}
	return Result{
		Success:        true,
		Operation:      op,
		Field:          field,
		GroupBy:        groupBy,
		Output:         output,
		ProcessedCount: processed,
		TotalCount:     total,
	}
}

// correlate computes the Pearson coefficient over pairwise-complete
// rows, keeping only rows where both fields parse as numbers. Zero
// variance in either field is an explicit failure; the coefficient is
// undefined there and must not surface as NaN.
func correlate(rows []dataset.Row, field, field2 string) Result {
	total := len(rows)
	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))
	for _, row := range rows {
		x, okX := dataset.AsNumber(row[field])
		y, okY := dataset.AsNumber(row[field2])
		if !okX || !okY {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	if len(xs) == 0 {
		return Result{
			Success:   false,
			Operation: OpCorrelation,
			Field:     field,
			Field2:    field2,
			Output:    fmt.Sprintf("no valid numerical data for fields %q and %q", field, field2),
			Code:      CodeNoValidData,
		}
	}

	meanX, meanY := mean(xs), mean(ys)
	varX, varY := variance(xs, meanX), variance(ys, meanY)
	if varX == 0 || varY == 0 {
		zeroField := field
		if varX != 0 {
			zeroField = field2
		}
		return Result{
			Success:   false,
			Operation: OpCorrelation,
			Field:     field,
			Field2:    field2,
			Output:    fmt.Sprintf("field %q has zero variance, correlation is undefined", zeroField),
			Code:      CodeNoValidData,
		}
	}

	r := covariance(xs, ys, meanX, meanY) / math.Sqrt(varX*varY)
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}

	return Result{
		Success:   true,
		Operation: OpCorrelation,
		Field:     field,
		Field2:    field2,
		Output: CorrelationOutput{
			Correlation: Round3(r),
			Field1Stats: FieldStats{Mean: Round2(meanX), Min: Round2(minOf(xs)), Max: Round2(maxOf(xs))},
			Field2Stats: FieldStats{Mean: Round2(meanY), Min: Round2(minOf(ys)), Max: Round2(maxOf(ys))},
		},
		ProcessedCount: len(xs),
		TotalCount:     total,
	}
}

// applyOp runs one of the plain aggregations over a non-empty slice.
func applyOp(op string, nums []float64) float64 {
	switch op {
	case OpMean:
		return mean(nums)
	case OpMedian:
		return median(nums)
	case OpSum:
		return sum(nums)
	case OpMin:
		return minOf(nums)
	case OpMax:
		return maxOf(nums)
	}
	return 0
}

// groupKey stringifies a raw group value. Nulls group under "null" to
// match the wire format the data arrived in.
func groupKey(v interface{}) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v)
}
