package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datachat/dataset"
)

func carsDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Columns: []string{"Name", "Miles_Per_Gallon", "Horsepower", "Origin"},
		Rows: []dataset.Row{
			{"Name": "chevrolet chevelle", "Miles_Per_Gallon": 18.0, "Horsepower": 130.0, "Origin": "USA"},
			{"Name": "buick skylark", "Miles_Per_Gallon": 15.0, "Horsepower": 165.0, "Origin": "USA"},
			{"Name": "toyota corona", "Miles_Per_Gallon": 36.0, "Horsepower": 52.0, "Origin": "Japan"},
			{"Name": "datsun pl510", "Miles_Per_Gallon": 27.0, "Horsepower": 88.0, "Origin": "Japan"},
		},
	}
}

func TestCompute_Mean(t *testing.T) {
	engine := NewEngine()
	ds := &dataset.Dataset{
		Columns: []string{"v"},
		Rows:    []dataset.Row{{"v": 1.0}, {"v": 2.0}, {"v": 3.0}, {"v": 4.0}},
	}

	res := engine.Compute(Request{Operation: "mean", Field: "v"}, ds)
	require.True(t, res.Success)
	assert.Equal(t, 2.5, res.Output)
	assert.Equal(t, 4, res.ProcessedCount)
	assert.Equal(t, 4, res.TotalCount)
}

func TestCompute_Median(t *testing.T) {
	engine := NewEngine()

	odd := &dataset.Dataset{Columns: []string{"v"}, Rows: []dataset.Row{{"v": 7.0}, {"v": 3.0}, {"v": 5.0}}}
	res := engine.Compute(Request{Operation: "median", Field: "v"}, odd)
	require.True(t, res.Success)
	assert.Equal(t, 5.0, res.Output)

	even := &dataset.Dataset{Columns: []string{"v"}, Rows: []dataset.Row{{"v": 1.0}, {"v": 2.0}, {"v": 3.0}, {"v": 4.0}}}
	res = engine.Compute(Request{Operation: "median", Field: "v"}, even)
	require.True(t, res.Success)
	assert.Equal(t, 2.5, res.Output)
}

func TestCompute_SumRoundsToTwoDecimals(t *testing.T) {
	engine := NewEngine()
	ds := &dataset.Dataset{
		Columns: []string{"v"},
		Rows:    []dataset.Row{{"v": 1.005}, {"v": 1.005}},
	}

	res := engine.Compute(Request{Operation: "sum", Field: "v"}, ds)
	require.True(t, res.Success)
	assert.InDelta(t, 2.01, res.Output.(float64), 1e-9)
}

func TestCompute_MinMax(t *testing.T) {
	engine := NewEngine()
	ds := carsDataset()

	res := engine.Compute(Request{Operation: "min", Field: "Horsepower"}, ds)
	require.True(t, res.Success)
	assert.Equal(t, 52.0, res.Output)

	res = engine.Compute(Request{Operation: "max", Field: "Horsepower"}, ds)
	require.True(t, res.Success)
	assert.Equal(t, 165.0, res.Output)
}

func TestCompute_CountIncludesNonNumericValues(t *testing.T) {
	engine := NewEngine()
	ds := &dataset.Dataset{
		Columns: []string{"v"},
		Rows:    []dataset.Row{{"v": 1.0}, {"v": "text"}, {"v": nil}, {"v": 2.0}},
	}

	// Count is about presence, not numeric validity. Only nulls are
	// excluded.
	res := engine.Compute(Request{Operation: "count", Field: "v"}, ds)
	require.True(t, res.Success)
	assert.Equal(t, 3, res.Output)
	assert.Equal(t, 3, res.ProcessedCount)
	assert.Equal(t, 4, res.TotalCount)
}

func TestCompute_CurrencyStringsAreCoerced(t *testing.T) {
	engine := NewEngine()
	ds := &dataset.Dataset{
		Columns: []string{"Price"},
		Rows:    []dataset.Row{{"Price": "$1,200.50"}, {"Price": "$800.00"}},
	}

	res := engine.Compute(Request{Operation: "mean", Field: "Price"}, ds)
	require.True(t, res.Success)
	assert.InDelta(t, 1000.25, res.Output.(float64), 1e-9)
	assert.Equal(t, 2, res.ProcessedCount)
}

func TestCompute_SkipsInvalidValues(t *testing.T) {
	engine := NewEngine()
	ds := &dataset.Dataset{
		Columns: []string{"v"},
		Rows:    []dataset.Row{{"v": 10.0}, {"v": "N/A"}, {"v": 20.0}, {"v": nil}},
	}

	res := engine.Compute(Request{Operation: "mean", Field: "v"}, ds)
	require.True(t, res.Success)
	assert.Equal(t, 15.0, res.Output)
	// The counts expose that some values were dropped.
	assert.Equal(t, 2, res.ProcessedCount)
	assert.Equal(t, 4, res.TotalCount)
}

func TestCompute_NoValidNumericalData(t *testing.T) {
	engine := NewEngine()
	ds := &dataset.Dataset{
		Columns: []string{"Name"},
		Rows:    []dataset.Row{{"Name": "alice"}, {"Name": "bob"}},
	}

	res := engine.Compute(Request{Operation: "mean", Field: "Name"}, ds)
	require.False(t, res.Success)
	assert.Equal(t, CodeNoValidData, res.Code)
	assert.Contains(t, res.Output.(string), "no valid numerical data")
	assert.Contains(t, res.Output.(string), "Name")
}

func TestCompute_FieldNotFound(t *testing.T) {
	engine := NewEngine()
	ds := carsDataset()

	res := engine.Compute(Request{Operation: "mean", Field: "weight"}, ds)
	require.False(t, res.Success)
	assert.Equal(t, CodeFieldNotFound, res.Code)
	// The message lists the real columns so the planner can correct
	// itself.
	assert.Contains(t, res.Output.(string), "Miles_Per_Gallon")
	assert.Contains(t, res.Output.(string), "Origin")
}

func TestCompute_FieldNameIsNormalized(t *testing.T) {
	engine := NewEngine()
	ds := carsDataset()

	res := engine.Compute(Request{Operation: "mean", Field: "miles per gallon"}, ds)
	require.True(t, res.Success)
	assert.Equal(t, "Miles_Per_Gallon", res.Field)
	assert.Equal(t, 24.0, res.Output)
}

func TestCompute_EmptyDataset(t *testing.T) {
	engine := NewEngine()

	res := engine.Compute(Request{Operation: "mean", Field: "v"}, nil)
	require.False(t, res.Success)
	assert.Equal(t, CodeEmptyDataset, res.Code)

	res = engine.Compute(Request{Operation: "mean", Field: "v"}, &dataset.Dataset{Columns: []string{"v"}})
	require.False(t, res.Success)
	assert.Equal(t, CodeEmptyDataset, res.Code)
}

func TestCompute_InvalidOperation(t *testing.T) {
	engine := NewEngine()
	ds := carsDataset()

	res := engine.Compute(Request{Operation: "variance", Field: "Horsepower"}, ds)
	require.False(t, res.Success)
	assert.Equal(t, CodeInvalidOperation, res.Code)
	assert.Contains(t, res.Output.(string), "variance")
}

func TestCompute_OperationCaseInsensitive(t *testing.T) {
	engine := NewEngine()
	ds := carsDataset()

	res := engine.Compute(Request{Operation: "  MEAN  ", Field: "Miles_Per_Gallon"}, ds)
	require.True(t, res.Success)
	assert.Equal(t, "mean", res.Operation)
}

func TestCompute_RestrictedEngine(t *testing.T) {
	engine := NewEngine("mean", "count")
	ds := carsDataset()

	res := engine.Compute(Request{Operation: "mean", Field: "Horsepower"}, ds)
	assert.True(t, res.Success)

	res = engine.Compute(Request{Operation: "sum", Field: "Horsepower"}, ds)
	require.False(t, res.Success)
	assert.Equal(t, CodeInvalidOperation, res.Code)
}

func TestCompute_GroupedMean(t *testing.T) {
	engine := NewEngine()
	ds := &dataset.Dataset{
		Columns: []string{"Origin", "MPG"},
		Rows: []dataset.Row{
			{"Origin": "USA", "MPG": 20.0},
			{"Origin": "USA", "MPG": 30.0},
			{"Origin": "Japan", "MPG": 40.0},
		},
	}

	res := engine.Compute(Request{Operation: "mean", Field: "MPG", GroupBy: "Origin"}, ds)
	require.True(t, res.Success)
	assert.Equal(t, map[string]float64{"USA": 25.0, "Japan": 40.0}, res.Output)
	assert.Equal(t, "Origin", res.GroupBy)
	assert.Equal(t, 3, res.ProcessedCount)
	assert.Equal(t, 3, res.TotalCount)
}

func TestCompute_GroupedDropsGroupsWithoutValidData(t *testing.T) {
	engine := NewEngine()
	ds := &dataset.Dataset{
		Columns: []string{"g", "v"},
		Rows: []dataset.Row{
			{"g": "A", "v": 1.0},
			{"g": "B", "v": "notanumber"},
		},
	}

	res := engine.Compute(Request{Operation: "mean", Field: "v", GroupBy: "g"}, ds)
	require.True(t, res.Success)
	// B contributes nothing and is dropped, not reported as zero.
	assert.Equal(t, map[string]float64{"A": 1.0}, res.Output)
	assert.Equal(t, 1, res.ProcessedCount)
	assert.Equal(t, 2, res.TotalCount)
}

func TestCompute_GroupedCountCountsRows(t *testing.T) {
	engine := NewEngine()
	ds := &dataset.Dataset{
		Columns: []string{"g", "v"},
		Rows: []dataset.Row{
			{"g": "A", "v": 1.0},
			{"g": "A", "v": "text"},
			{"g": "B", "v": nil},
		},
	}

	// Grouped count counts whole rows per group, so even the row whose
	// value is null is counted.
	res := engine.Compute(Request{Operation: "count", Field: "v", GroupBy: "g"}, ds)
	require.True(t, res.Success)
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, res.Output)
}

func TestCompute_GroupedAllGroupsInvalid(t *testing.T) {
	engine := NewEngine()
	ds := &dataset.Dataset{
		Columns: []string{"g", "v"},
		Rows: []dataset.Row{
			{"g": "A", "v": "x"},
			{"g": "B", "v": "y"},
		},
	}

	res := engine.Compute(Request{Operation: "sum", Field: "v", GroupBy: "g"}, ds)
	require.False(t, res.Success)
	assert.Equal(t, CodeNoValidData, res.Code)
}

func TestCompute_GroupedNullKey(t *testing.T) {
	engine := NewEngine()
	ds := &dataset.Dataset{
		Columns: []string{"g", "v"},
		Rows: []dataset.Row{
			{"g": nil, "v": 3.0},
			{"g": "A", "v": 5.0},
		},
	}

	res := engine.Compute(Request{Operation: "sum", Field: "v", GroupBy: "g"}, ds)
	require.True(t, res.Success)
	assert.Equal(t, map[string]float64{"null": 3.0, "A": 5.0}, res.Output)
}

func TestCompute_WithFilters(t *testing.T) {
	engine := NewEngine()
	ds := carsDataset()

	res := engine.Compute(Request{
		Operation: "mean",
		Field:     "Miles_Per_Gallon",
		Filters:   []Filter{{Field: "Origin", Operator: "==", Value: "Japan"}},
	}, ds)
	require.True(t, res.Success)
	assert.Equal(t, 31.5, res.Output)
	// Counts are relative to the filtered rows.
	assert.Equal(t, 2, res.ProcessedCount)
	assert.Equal(t, 2, res.TotalCount)
}

func TestCompute_FiltersExcludeEverything(t *testing.T) {
	engine := NewEngine()
	ds := carsDataset()

	res := engine.Compute(Request{
		Operation: "mean",
		Field:     "Miles_Per_Gallon",
		Filters:   []Filter{{Field: "Origin", Operator: "==", Value: "Germany"}},
	}, ds)
	require.False(t, res.Success)
	assert.Equal(t, CodeNoValidData, res.Code)
}

func TestCompute_CorrelationPerfect(t *testing.T) {
	engine := NewEngine()
	ds := &dataset.Dataset{
		Columns: []string{"x", "y"},
		Rows: []dataset.Row{
			{"x": 1.0, "y": 2.0},
			{"x": 2.0, "y": 4.0},
			{"x": 3.0, "y": 6.0},
		},
	}

	res := engine.Compute(Request{Operation: "correlation", Field: "x", Field2: "y"}, ds)
	require.True(t, res.Success)

	out, ok := res.Output.(CorrelationOutput)
	require.True(t, ok)
	assert.Equal(t, 1.0, out.Correlation)
	assert.Equal(t, FieldStats{Mean: 2.0, Min: 1.0, Max: 3.0}, out.Field1Stats)
	assert.Equal(t, FieldStats{Mean: 4.0, Min: 2.0, Max: 6.0}, out.Field2Stats)
}

func TestCompute_CorrelationNegative(t *testing.T) {
	engine := NewEngine()
	ds := carsDataset()

	res := engine.Compute(Request{Operation: "correlation", Field: "Miles_Per_Gallon", Field2: "Horsepower"}, ds)
	require.True(t, res.Success)

	out := res.Output.(CorrelationOutput)
	assert.InDelta(t, -0.983, out.Correlation, 0.001)
	assert.Equal(t, FieldStats{Mean: 24.0, Min: 15.0, Max: 36.0}, out.Field1Stats)
	assert.Equal(t, FieldStats{Mean: 108.75, Min: 52.0, Max: 165.0}, out.Field2Stats)
}

func TestCompute_CorrelationIsSymmetric(t *testing.T) {
	engine := NewEngine()
	ds := &dataset.Dataset{
		Columns: []string{"x", "y"},
		Rows: []dataset.Row{
			{"x": 1.0, "y": 1.0},
			{"x": 2.0, "y": 3.0},
			{"x": 3.0, "y": 2.0},
			{"x": 4.0, "y": 5.0},
		},
	}

	ab := engine.Compute(Request{Operation: "correlation", Field: "x", Field2: "y"}, ds)
	ba := engine.Compute(Request{Operation: "correlation", Field: "y", Field2: "x"}, ds)
	require.True(t, ab.Success)
	require.True(t, ba.Success)

	assert.Equal(t, ab.Output.(CorrelationOutput).Correlation, ba.Output.(CorrelationOutput).Correlation)
}

func TestCompute_CorrelationPairwiseComplete(t *testing.T) {
	engine := NewEngine()
	ds := &dataset.Dataset{
		Columns: []string{"x", "y"},
		Rows: []dataset.Row{
			{"x": 1.0, "y": 2.0},
			{"x": 2.0, "y": 4.0},
			{"x": "N/A", "y": 9.0},
			{"x": 4.0, "y": 8.0},
		},
	}

	res := engine.Compute(Request{Operation: "correlation", Field: "x", Field2: "y"}, ds)
	require.True(t, res.Success)

	out := res.Output.(CorrelationOutput)
	assert.Equal(t, 1.0, out.Correlation)
	assert.Equal(t, 3, res.ProcessedCount)
	assert.Equal(t, 4, res.TotalCount)
}

func TestCompute_CorrelationZeroVariance(t *testing.T) {
	engine := NewEngine()
	ds := &dataset.Dataset{
		Columns: []string{"x", "y"},
		Rows: []dataset.Row{
			{"x": 5.0, "y": 1.0},
			{"x": 5.0, "y": 2.0},
			{"x": 5.0, "y": 3.0},
		},
	}

	res := engine.Compute(Request{Operation: "correlation", Field: "x", Field2: "y"}, ds)
	require.False(t, res.Success)
	assert.Equal(t, CodeNoValidData, res.Code)
	assert.Contains(t, res.Output.(string), "zero variance")
	assert.Contains(t, res.Output.(string), `"x"`)

	// The constant field is named even when it is the second one.
	res = engine.Compute(Request{Operation: "correlation", Field: "y", Field2: "x"}, ds)
	require.False(t, res.Success)
	assert.Contains(t, res.Output.(string), `"x"`)
}

func TestCompute_CorrelationNoOverlap(t *testing.T) {
	engine := NewEngine()
	ds := &dataset.Dataset{
		Columns: []string{"x", "y"},
		Rows: []dataset.Row{
			{"x": 1.0, "y": "a"},
			{"x": "b", "y": 2.0},
		},
	}

	res := engine.Compute(Request{Operation: "correlation", Field: "x", Field2: "y"}, ds)
	require.False(t, res.Success)
	assert.Equal(t, CodeNoValidData, res.Code)
	assert.Contains(t, res.Output.(string), "no valid numerical data")
}

func TestCompute_CorrelationMissingField2(t *testing.T) {
	engine := NewEngine()
	ds := carsDataset()

	res := engine.Compute(Request{Operation: "correlation", Field: "Horsepower", Field2: "weight"}, ds)
	require.False(t, res.Success)
	assert.Equal(t, CodeFieldNotFound, res.Code)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.01, Round2(2.0051))
	assert.Equal(t, 2.0, Round2(2.004))
	assert.Equal(t, -2.01, Round2(-2.0051))
	assert.Equal(t, 0.0, Round2(0))
}

func TestRound3(t *testing.T) {
	assert.Equal(t, 0.832, Round3(0.83151))
	assert.Equal(t, -0.983, Round3(-0.98307))
}
