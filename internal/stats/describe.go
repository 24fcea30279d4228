// Package stats computes the descriptive statistics and Pearson correlations
// backing the report and charts.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/winestat/winestat/internal/dataset"
)

// Summary holds the describe() row for one column: count, mean, sample
// standard deviation, and the five-number summary.
type Summary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe summarizes every numeric column, quality included. An empty
// dataset yields zero counts and zero statistics, not an error.
func Describe(ds dataset.Dataset) []Summary {
	cols := dataset.NumericColumns()
	out := make([]Summary, 0, len(cols))
	for _, name := range cols {
		vals, err := ds.Column(name)
		if err != nil {
			continue // NumericColumns only yields known names
		}
		out = append(out, describeColumn(name, vals))
	}
	return out
}

func describeColumn(name string, vals []float64) Summary {
	s := Summary{Column: name, Count: len(vals)}
	if len(vals) == 0 {
		return s
	}
	s.Mean = stat.Mean(vals, nil)
	if len(vals) > 1 {
		s.Std = stat.StdDev(vals, nil)
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Q1 = quantile(sorted, 0.25)
	s.Median = quantile(sorted, 0.5)
	s.Q3 = quantile(sorted, 0.75)
	return s
}

// quantile interpolates linearly between order statistics, the same
// convention pandas describe() uses for this file's quartiles.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
