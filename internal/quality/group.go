package quality

import "github.com/winestat/winestat/internal/dataset"

// GroupValues buckets one numeric column by class. Unclassified records are
// excluded from every bucket, record order is preserved within a bucket, and
// a class with no matching records maps to an empty slice. An unknown column
// name is an error.
func GroupValues(ds dataset.Dataset, column string, classes ...Class) (map[Class][]float64, error) {
	col, err := ds.Column(column)
	if err != nil {
		return nil, err
	}
	out := make(map[Class][]float64, len(classes))
	for _, c := range classes {
		out[c] = []float64{}
	}
	for i, r := range ds.Records {
		c := Classify(r.Quality)
		if c == Unclassified {
			continue
		}
		if _, want := out[c]; !want {
			continue
		}
		out[c] = append(out[c], col[i])
	}
	return out, nil
}
