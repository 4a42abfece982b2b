// Package stats computes descriptive statistics over per-model
// metric vectors.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics of a single vector.
type Summary struct {
	Count  int     `json:"count" msgpack:"count"`
	Mean   float64 `json:"mean" msgpack:"mean"`
	Median float64 `json:"median" msgpack:"median"`
	// Stdev is the sample standard deviation. Defined as 0 for
	// vectors of length 0 or 1.
	Stdev float64 `json:"stdev" msgpack:"stdev"`
	Min   float64 `json:"min" msgpack:"min"`
	Max   float64 `json:"max" msgpack:"max"`
	Sum   float64 `json:"sum" msgpack:"sum"`
}

// Describe computes the summary of a vector. An empty vector yields
// the zero Summary: every degenerate statistic resolves to 0, never
// to NaN.
func Describe(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	s := Summary{
		Count: n,
		Mean:  stat.Mean(values, nil),
		Min:   floats.Min(values),
		Max:   floats.Max(values),
		Sum:   floats.Sum(values),
	}
	s.Median = median(values)
	if n > 1 {
		if sd := stat.StdDev(values, nil); !math.IsNaN(sd) {
			s.Stdev = sd
		}
	}
	return s
}

// DescribeInts converts an integer vector and computes its summary.
func DescribeInts(values []int) Summary {
	fs := make([]float64, len(values))
	for i, v := range values {
		fs[i] = float64(v)
	}
	return Describe(fs)
}

// median returns the midpoint-interpolated median without modifying
// the input.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Names lists the summary's statistic names in export column order.
func Names() []string {
	return []string{"count", "mean", "median", "stdev", "min", "max", "sum"}
}

// Values lists the summary's values aligned with Names.
func (s Summary) Values() []float64 {
	return []float64{float64(s.Count), s.Mean, s.Median, s.Stdev, s.Min, s.Max, s.Sum}
}
