// Package eda runs the exploratory-analysis pipeline end to end:
// load, describe, correlate, classify, group, report, charts.
package eda

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/winestat/winestat/internal/chart"
	"github.com/winestat/winestat/internal/dataset"
	"github.com/winestat/winestat/internal/quality"
	"github.com/winestat/winestat/internal/report"
	"github.com/winestat/winestat/internal/stats"
)

// Options configures one pipeline run.
type Options struct {
	CSVPath   string
	Delimiter rune // 0 means semicolon
	TopK      int  // correlations against quality to list
	HeadRows  int  // sample rows echoed in the report, default 5
}

// Fixed artifact names, one per chart.
const (
	FigHeatmap       = "correlation_heatmap.png"
	FigScatterSugar  = "scatter_residual_sugar_vs_ph.png"
	FigScatterAcid   = "scatter_fixed_acidity_vs_citric_acid.png"
	FigHistQuality   = "hist_quality.png"
	FigBoxAlcohol    = "box_alcohol_by_class.png"
	FigBoxPH         = "box_ph_by_class.png"
	FigBoxAlcoholAll = "box_alcohol_all.png"
	FigBoxPHAll      = "box_ph_all.png"
)

// classColumns are the attributes summarized and boxplotted per class.
var classColumns = []string{"alcohol", "pH"}

// Run executes the whole pipeline: the report goes to out, charts go to r.
// Pass chart.Discard to skip figure export.
func Run(opt Options, out io.Writer, r chart.Renderer) error {
	ds, err := dataset.Load(opt.CSVPath, opt.Delimiter)
	if err != nil {
		return err
	}

	headRows := opt.HeadRows
	if headRows <= 0 {
		headRows = 5
	}
	corr := stats.Correlations(ds)
	topK := opt.TopK
	if topK <= 0 {
		topK = 8
	}
	top, err := corr.TopAgainst(dataset.QualityColumn, topK)
	if err != nil {
		return err
	}

	classStats, err := summarizeClasses(ds)
	if err != nil {
		return err
	}

	d := report.Data{
		Source:     ds.Source,
		Head:       ds.Head(headRows),
		Rows:       ds.Len(),
		Summaries:  stats.Describe(ds),
		Corr:       corr,
		Top:        top,
		Dist:       quality.Distribution(ds),
		ClassStats: classStats,
		RunID:      uuid.NewString(),
	}
	if _, err := io.WriteString(out, report.Render(d)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return renderFigures(ds, corr, r)
}

// summarizeClasses aggregates the class-conditioned columns; this is the
// same grouping that feeds the class boxplots.
func summarizeClasses(ds dataset.Dataset) ([]report.ClassSummary, error) {
	var out []report.ClassSummary
	for _, col := range classColumns {
		buckets, err := quality.GroupValues(ds, col, quality.Ordered...)
		if err != nil {
			return nil, err
		}
		for _, c := range quality.Ordered {
			vals := buckets[c]
			s := report.ClassSummary{Column: col, Class: c, Count: len(vals)}
			if len(vals) > 0 {
				s.Min, s.Max = vals[0], vals[0]
				sum := 0.0
				for _, v := range vals {
					sum += v
					if v < s.Min {
						s.Min = v
					}
					if v > s.Max {
						s.Max = v
					}
				}
				s.Mean = sum / float64(len(vals))
			}
			out = append(out, s)
		}
	}
	return out, nil
}

func renderFigures(ds dataset.Dataset, corr stats.CorrMatrix, r chart.Renderer) error {
	if err := r.Heatmap(FigHeatmap, "Correlation Heatmap (Pearson)", corr.Columns, corr.Values); err != nil {
		return err
	}

	sugar, _ := ds.Column("residual sugar")
	ph, _ := ds.Column("pH")
	if err := r.Scatter(FigScatterSugar, "Residual Sugar vs pH",
		"Residual Sugar (g/dm^3)", "pH", sugar, ph); err != nil {
		return err
	}
	fixed, _ := ds.Column("fixed acidity")
	citric, _ := ds.Column("citric acid")
	if err := r.Scatter(FigScatterAcid, "Fixed Acidity vs Citric Acid",
		"Fixed Acidity (g/dm^3)", "Citric Acid (g/dm^3)", fixed, citric); err != nil {
		return err
	}

	qual, _ := ds.Column(dataset.QualityColumn)
	if err := r.Histogram(FigHistQuality, "Wine Quality",
		"Quality (integer score)", qual, qualityBins(ds)); err != nil {
		return err
	}

	labels := make([]string, len(quality.Ordered))
	for i, c := range quality.Ordered {
		labels[i] = c.String()
	}
	boxFigs := map[string]string{"alcohol": FigBoxAlcohol, "pH": FigBoxPH}
	yLabels := map[string]string{"alcohol": "Alcohol (% vol.)", "pH": "pH"}
	for _, col := range classColumns {
		buckets, err := quality.GroupValues(ds, col, quality.Ordered...)
		if err != nil {
			return err
		}
		ordered := make([][]float64, len(quality.Ordered))
		for i, c := range quality.Ordered {
			ordered[i] = buckets[c]
		}
		title := fmt.Sprintf("%s by Quality Class", yLabels[col])
		if err := r.BoxPlots(boxFigs[col], title, yLabels[col], labels, ordered); err != nil {
			return err
		}
	}

	alcohol, _ := ds.Column("alcohol")
	if err := r.BoxPlots(FigBoxAlcoholAll, "Alcohol (All Wines)", "Alcohol (% vol.)",
		[]string{"All Wines"}, [][]float64{alcohol}); err != nil {
		return err
	}
	return r.BoxPlots(FigBoxPHAll, "pH (All Wines)", "pH",
		[]string{"All Wines"}, [][]float64{ph})
}

// qualityBins aligns histogram bins to the observed integer score range.
func qualityBins(ds dataset.Dataset) int {
	if ds.Len() == 0 {
		return 1
	}
	minQ, maxQ := ds.Records[0].Quality, ds.Records[0].Quality
	for _, r := range ds.Records {
		if r.Quality < minQ {
			minQ = r.Quality
		}
		if r.Quality > maxQ {
			maxQ = r.Quality
		}
	}
	return maxQ - minQ + 1
}
