package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// DefaultDelimiter matches the semicolon-separated UCI file.
const DefaultDelimiter = ';'

// Load reads a delimited file into a Dataset. The header row must name all
// eleven attributes plus quality; a missing column is fatal. Any malformed
// row (wrong field count, non-numeric value) aborts the load with the row
// number; there is no partial-load recovery.
func Load(path string, delim rune) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	if delim == 0 {
		delim = DefaultDelimiter
	}
	r := csv.NewReader(f)
	r.Comma = delim
	r.TrimLeadingSpace = true
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return Dataset{}, fmt.Errorf("read header: %w", err)
	}
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}
	attrPos := make([]int, len(Columns))
	for i, name := range Columns {
		p, ok := pos[name]
		if !ok {
			return Dataset{}, fmt.Errorf("missing column %q in %s", name, path)
		}
		attrPos[i] = p
	}
	qualPos, ok := pos[QualityColumn]
	if !ok {
		return Dataset{}, fmt.Errorf("missing column %q in %s", QualityColumn, path)
	}

	ds := Dataset{Source: path}
	row := 0
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Dataset{}, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++
		sample := Record{Attrs: make([]float64, len(Columns))}
		for i, p := range attrPos {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[p]), 64)
			if err != nil {
				return Dataset{}, fmt.Errorf("row %d: column %q: %w", row, Columns[i], err)
			}
			sample.Attrs[i] = v
		}
		q, err := parseQuality(rec[qualPos])
		if err != nil {
			return Dataset{}, fmt.Errorf("row %d: column %q: %w", row, QualityColumn, err)
		}
		sample.Quality = q
		ds.Records = append(ds.Records, sample)
	}
	return ds, nil
}

// parseQuality accepts "5" as well as "5.0"; a fractional score is an error.
func parseQuality(s string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("quality score %v is not an integer", v)
	}
	return int(v), nil
}
