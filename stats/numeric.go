package stats

import (
	"math"
	"sort"

	"datachat/dataset"
)

// Round2 rounds to 2 decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds to 3 decimal places, halves away from zero.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// numericColumn coerces one column of the given rows to numbers,
// dropping values that do not parse.
func numericColumn(rows []dataset.Row, field string) []float64 {
	nums := make([]float64, 0, len(rows))
	for _, row := range rows {
		if n, ok := dataset.AsNumber(row[field]); ok {
			nums = append(nums, n)
		}
	}
	return nums
}

func sum(nums []float64) float64 {
	total := 0.0
	for _, n := range nums {
		total += n
	}
	return total
}

func mean(nums []float64) float64 {
	return sum(nums) / float64(len(nums))
}

// median sorts a copy; the caller's slice is left untouched.
func median(nums []float64) float64 {
	sorted := make([]float64, len(nums))
	copy(sorted, nums)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func minOf(nums []float64) float64 {
	m := nums[0]
	for _, n := range nums[1:] {
		if n < m {
			m = n
		}
	}
	return m
}

func maxOf(nums []float64) float64 {
	m := nums[0]
	for _, n := range nums[1:] {
		if n > m {
			m = n
		}
	}
	return m
}

// variance is the population variance around a precomputed mean.
func variance(nums []float64, mean float64) float64 {
	total := 0.0
	for _, n := range nums {
		d := n - mean
		total += d * d
	}
	return total / float64(len(nums))
}

// covariance is the population covariance of two equal-length series.
func covariance(xs, ys []float64, meanX, meanY float64) float64 {
	total := 0.0
	for i := range xs {
		total += (xs[i] - meanX) * (ys[i] - meanY)
	}
	return total / float64(len(xs))
}
