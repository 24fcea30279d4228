// Package report renders the analysis results as a sectioned text report.
package report

import (
	"fmt"
	"strings"

	"github.com/winestat/winestat/internal/dataset"
	"github.com/winestat/winestat/internal/quality"
	"github.com/winestat/winestat/internal/stats"
)

// ClassSummary is one column's aggregate over one quality class.
type ClassSummary struct {
	Column string
	Class  quality.Class
	Count  int
	Mean   float64
	Min    float64
	Max    float64
}

// Data carries everything the report prints.
type Data struct {
	Source     string
	Head       []dataset.Record
	Rows       int
	Summaries  []stats.Summary
	Corr       stats.CorrMatrix
	Top        []stats.PairCorr
	Dist       map[quality.Class]int
	ClassStats []ClassSummary
	RunID      string
}

// Render writes the full report.
func Render(d Data) string {
	var b strings.Builder
	b.WriteString("[DATASET]\n")
	if d.Source != "" {
		fmt.Fprintf(&b, "File: %s\n", d.Source)
	}
	fmt.Fprintf(&b, "Rows: %d\n", d.Rows)
	fmt.Fprintf(&b, "Columns: %d\n\n", len(dataset.Columns)+1)

	writeHead(&b, d.Head)
	writeSummaries(&b, d.Summaries)
	writeCorrelations(&b, d.Corr, d.Top)
	writeClasses(&b, d.Dist, d.ClassStats)

	b.WriteString("[INTERPRETATIONS]\n")
	for _, p := range Interpretations() {
		b.WriteString(p)
		b.WriteString("\n")
	}

	if d.RunID != "" {
		fmt.Fprintf(&b, "\nRun: %s\n", d.RunID)
	}
	return b.String()
}

func writeHead(b *strings.Builder, head []dataset.Record) {
	if len(head) == 0 {
		return
	}
	b.WriteString("[HEAD]\n")
	b.WriteString(strings.Join(dataset.NumericColumns(), " | "))
	b.WriteString("\n")
	for _, r := range head {
		parts := make([]string, 0, len(r.Attrs)+1)
		for _, v := range r.Attrs {
			parts = append(parts, fmt.Sprintf("%g", v))
		}
		parts = append(parts, fmt.Sprintf("%d", r.Quality))
		b.WriteString(strings.Join(parts, " | "))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeSummaries(b *strings.Builder, sums []stats.Summary) {
	b.WriteString("[SUMMARY STATISTICS]\n")
	fmt.Fprintf(b, "%-22s %6s %10s %10s %10s %10s %10s %10s %10s\n",
		"column", "count", "mean", "std", "min", "25%", "50%", "75%", "max")
	for _, s := range sums {
		fmt.Fprintf(b, "%-22s %6d %10.4g %10.4g %10.4g %10.4g %10.4g %10.4g %10.4g\n",
			s.Column, s.Count, s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max)
	}
	b.WriteString("\n")
}

func writeCorrelations(b *strings.Builder, m stats.CorrMatrix, top []stats.PairCorr) {
	if len(m.Columns) == 0 {
		return
	}
	b.WriteString("[CORRELATIONS] (Pearson)\n")
	// Numbered columns keep the matrix narrow enough for a terminal.
	for i, c := range m.Columns {
		fmt.Fprintf(b, "(%d) %s\n", i+1, c)
	}
	b.WriteString("\n      ")
	for i := range m.Columns {
		fmt.Fprintf(b, "%6s", fmt.Sprintf("(%d)", i+1))
	}
	b.WriteString("\n")
	for i := range m.Columns {
		fmt.Fprintf(b, "%6s", fmt.Sprintf("(%d)", i+1))
		for j := range m.Columns {
			fmt.Fprintf(b, "%6.2f", m.Values[i][j])
		}
		b.WriteString("\n")
	}
	if len(top) > 0 {
		fmt.Fprintf(b, "\nTop correlations with %q:\n", dataset.QualityColumn)
		for _, p := range top {
			fmt.Fprintf(b, "- %s: r=%.3f\n", p.Column, p.R)
		}
	}
	b.WriteString("\n")
}

func writeClasses(b *strings.Builder, dist map[quality.Class]int, cs []ClassSummary) {
	b.WriteString("[QUALITY CLASSES]\n")
	total := 0
	for _, c := range quality.Ordered {
		fmt.Fprintf(b, "- %s: %d\n", c, dist[c])
		total += dist[c]
	}
	fmt.Fprintf(b, "- %s: %d (quality == 4, excluded from class views)\n",
		quality.Unclassified, dist[quality.Unclassified])
	b.WriteString("\n")

	if len(cs) > 0 {
		b.WriteString("[CLASS SUMMARY]\n")
		for _, s := range cs {
			if s.Count == 0 {
				fmt.Fprintf(b, "- %s / %s: n=0\n", s.Column, s.Class)
				continue
			}
			fmt.Fprintf(b, "- %s / %s: n=%d mean %.4g (min %.4g, max %.4g)\n",
				s.Column, s.Class, s.Count, s.Mean, s.Min, s.Max)
		}
		b.WriteString("\n")
	}
}
