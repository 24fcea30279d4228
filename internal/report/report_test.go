package report

import (
	"strings"
	"testing"

	"github.com/winestat/winestat/internal/dataset"
	"github.com/winestat/winestat/internal/quality"
	"github.com/winestat/winestat/internal/stats"
)

func sampleData() Data {
	attrs := make([]float64, len(dataset.Columns))
	attrs[10] = 9.4 // alcohol
	return Data{
		Source: "wine.csv",
		Head:   []dataset.Record{{Attrs: attrs, Quality: 5}},
		Rows:   4,
		Summaries: []stats.Summary{
			{Column: "alcohol", Count: 4, Mean: 11.5, Std: 1.29, Min: 10, Q1: 10.75, Median: 11.5, Q3: 12.25, Max: 13},
		},
		Corr: stats.CorrMatrix{
			Columns: []string{"alcohol", "quality"},
			Values:  [][]float64{{1, 0.48}, {0.48, 1}},
		},
		Top: []stats.PairCorr{{Column: "alcohol", R: 0.48}},
		Dist: map[quality.Class]int{
			quality.Bad:          1,
			quality.Good:         1,
			quality.VeryGood:     1,
			quality.Unclassified: 1,
		},
		ClassStats: []ClassSummary{
			{Column: "alcohol", Class: quality.Good, Count: 2, Mean: 10.5, Min: 10, Max: 11},
			{Column: "alcohol", Class: quality.VeryGood, Count: 0},
		},
		RunID: "test-run",
	}
}

func TestRenderSections(t *testing.T) {
	out := Render(sampleData())
	for _, want := range []string{
		"[DATASET]",
		"File: wine.csv",
		"Rows: 4",
		"[HEAD]",
		"[SUMMARY STATISTICS]",
		"[CORRELATIONS] (Pearson)",
		`Top correlations with "quality":`,
		"- alcohol: r=0.480",
		"[QUALITY CLASSES]",
		"- Unclassified: 1 (quality == 4, excluded from class views)",
		"[CLASS SUMMARY]",
		"- alcohol / Good: n=2 mean 10.5 (min 10, max 11)",
		"- alcohol / Very Good: n=0",
		"[INTERPRETATIONS]",
		"(1) Summary statistics:",
		"(7) Conclusion:",
		"Run: test-run",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderEmptyDataset(t *testing.T) {
	d := Data{Rows: 0, Dist: map[quality.Class]int{}}
	out := Render(d)
	if !strings.Contains(out, "Rows: 0") {
		t.Error("missing zero row count")
	}
	if strings.Contains(out, "[HEAD]") {
		t.Error("empty dataset should not print a head section")
	}
	if !strings.Contains(out, "- Bad: 0") {
		t.Error("missing empty class counts")
	}
}

func TestInterpretationsComplete(t *testing.T) {
	ps := Interpretations()
	if len(ps) != 7 {
		t.Fatalf("got %d paragraphs, want 7", len(ps))
	}
	for i, p := range ps {
		if !strings.Contains(p, "(") || !strings.HasPrefix(p, "(") {
			t.Errorf("paragraph %d lacks its number prefix", i+1)
		}
	}
}
