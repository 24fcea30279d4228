package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/winestat/winestat/internal/dataset"
)

// CorrMatrix is a symmetric Pearson correlation matrix, Values[i][j] pairing
// Columns[i] with Columns[j].
type CorrMatrix struct {
	Columns []string
	Values  [][]float64
}

// PairCorr names one column's correlation against a target column.
type PairCorr struct {
	Column string
	R      float64
}

// Correlations computes the pairwise Pearson matrix across all numeric
// columns. Degenerate pairs (no data, zero variance) report 0 rather than
// NaN so the matrix stays renderable.
func Correlations(ds dataset.Dataset) CorrMatrix {
	cols := dataset.NumericColumns()
	series := make([][]float64, len(cols))
	for i, name := range cols {
		series[i], _ = ds.Column(name)
	}
	n := len(cols)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
		mat[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := pearson(series[i], series[j])
			mat[i][j] = r
			mat[j][i] = r
		}
	}
	return CorrMatrix{Columns: cols, Values: mat}
}

func pearson(x, y []float64) float64 {
	if len(x) == 0 || len(x) != len(y) {
		return 0
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}

// TopAgainst returns up to k correlations against the target column, self
// excluded, strongest |r| first. Ties break on column name so the order is
// reproducible.
func (m CorrMatrix) TopAgainst(target string, k int) ([]PairCorr, error) {
	ti := -1
	for i, c := range m.Columns {
		if c == target {
			ti = i
			break
		}
	}
	if ti < 0 {
		return nil, fmt.Errorf("unknown column %q", target)
	}
	pairs := make([]PairCorr, 0, len(m.Columns)-1)
	for i, c := range m.Columns {
		if i == ti {
			continue
		}
		pairs = append(pairs, PairCorr{Column: c, R: m.Values[ti][i]})
	}
	sort.Slice(pairs, func(i, j int) bool {
		ai, aj := math.Abs(pairs[i].R), math.Abs(pairs[j].R)
		if ai == aj {
			return pairs[i].Column < pairs[j].Column
		}
		return ai > aj
	})
	if k > 0 && len(pairs) > k {
		pairs = pairs[:k]
	}
	return pairs, nil
}
