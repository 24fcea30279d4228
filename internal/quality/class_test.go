package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/winestat/winestat/internal/dataset"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		q    int
		want Class
	}{
		{0, Bad},
		{3, Bad},
		{4, Unclassified},
		{5, Good},
		{6, Good},
		{7, Good},
		{8, VeryGood},
		{10, VeryGood},
		// The rule is total: out-of-domain scores still bucket.
		{-3, Bad},
		{42, VeryGood},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.q), "quality %d", c.q)
	}
}

func TestClassifyTotalAndGapped(t *testing.T) {
	for q := -20; q <= 30; q++ {
		got := Classify(q)
		switch {
		case q == 4:
			assert.Equal(t, Unclassified, got)
		case q < 4:
			assert.Equal(t, Bad, got, "quality %d", q)
		case q <= 7:
			assert.Equal(t, Good, got, "quality %d", q)
		default:
			assert.Equal(t, VeryGood, got, "quality %d", q)
		}
	}
}

func TestClassesScenario(t *testing.T) {
	ds := fixture([]int{3, 4, 5, 8})
	assert.Equal(t, []Class{Bad, Unclassified, Good, VeryGood}, Classes(ds))
}

func TestClassesIdempotent(t *testing.T) {
	ds := fixture([]int{3, 4, 5, 5, 6, 7, 8, 4})
	first := Classes(ds)
	second := Classes(ds)
	assert.Equal(t, first, second)
}

func TestDistribution(t *testing.T) {
	ds := fixture([]int{3, 4, 4, 5, 6, 8})
	dist := Distribution(ds)
	assert.Equal(t, 1, dist[Bad])
	assert.Equal(t, 2, dist[Unclassified])
	assert.Equal(t, 2, dist[Good])
	assert.Equal(t, 1, dist[VeryGood])
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "Bad", Bad.String())
	assert.Equal(t, "Good", Good.String())
	assert.Equal(t, "Very Good", VeryGood.String())
	assert.Equal(t, "Unclassified", Unclassified.String())
}

// fixture builds a dataset whose alcohol column counts up from 10 so bucket
// order can be asserted, and whose other attributes are zero.
func fixture(qualities []int) dataset.Dataset {
	ds := dataset.Dataset{}
	alcoholIdx, _ := dataset.ColumnIndex("alcohol")
	phIdx, _ := dataset.ColumnIndex("pH")
	for i, q := range qualities {
		attrs := make([]float64, len(dataset.Columns))
		attrs[alcoholIdx] = 10 + float64(i)
		attrs[phIdx] = 3 + float64(i)/10
		ds.Records = append(ds.Records, dataset.Record{Attrs: attrs, Quality: q})
	}
	return ds
}
