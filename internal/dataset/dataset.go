// Package dataset loads the red-wine quality table into typed records.
package dataset

import "fmt"

// Columns lists the eleven physicochemical attributes in file order,
// matching the UCI winequality-red header.
var Columns = []string{
	"fixed acidity",
	"volatile acidity",
	"citric acid",
	"residual sugar",
	"chlorides",
	"free sulfur dioxide",
	"total sulfur dioxide",
	"density",
	"pH",
	"sulphates",
	"alcohol",
}

// QualityColumn is the sensory score column.
const QualityColumn = "quality"

// Record is one sample: the attribute values parallel to Columns plus the
// integer quality score.
type Record struct {
	Attrs   []float64
	Quality int
}

// Dataset is an ordered, in-memory collection of records. It is not mutated
// after load.
type Dataset struct {
	Source  string
	Records []Record
}

// Len returns the number of records.
func (ds Dataset) Len() int { return len(ds.Records) }

// NumericColumns returns every numeric column name, attributes first and
// quality last.
func NumericColumns() []string {
	out := make([]string, 0, len(Columns)+1)
	out = append(out, Columns...)
	return append(out, QualityColumn)
}

// ColumnIndex returns the position of an attribute column, or an error for
// any name that is not one of the eleven attributes.
func ColumnIndex(name string) (int, error) {
	for i, c := range Columns {
		if c == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown column %q", name)
}

// Column returns the values of a numeric column in record order. The quality
// score is returned as floats so it can feed the same statistics as the
// attributes.
func (ds Dataset) Column(name string) ([]float64, error) {
	out := make([]float64, len(ds.Records))
	if name == QualityColumn {
		for i, r := range ds.Records {
			out[i] = float64(r.Quality)
		}
		return out, nil
	}
	idx, err := ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	for i, r := range ds.Records {
		out[i] = r.Attrs[idx]
	}
	return out, nil
}

// Head returns up to n leading records.
func (ds Dataset) Head(n int) []Record {
	if n > len(ds.Records) {
		n = len(ds.Records)
	}
	return ds.Records[:n]
}
