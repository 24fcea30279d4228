// Package chart renders named series into visual artifacts. The analysis
// core only depends on the Renderer interface, never on a plotting library.
package chart

// Renderer produces one visual artifact per call. The name is the artifact's
// identity (for the file-backed renderer, the output filename).
type Renderer interface {
	Heatmap(name, title string, cols []string, matrix [][]float64) error
	Scatter(name, title, xLabel, yLabel string, xs, ys []float64) error
	Histogram(name, title, xLabel string, values []float64, bins int) error
	// BoxPlots draws one box per labeled bucket. Empty buckets are
	// tolerated: the label keeps its slot and no box is drawn there.
	BoxPlots(name, title, yLabel string, labels []string, buckets [][]float64) error
}

// Discard renders nothing. It backs runs with figure export disabled.
type Discard struct{}

func (Discard) Heatmap(string, string, []string, [][]float64) error { return nil }

func (Discard) Scatter(string, string, string, string, []float64, []float64) error { return nil }

func (Discard) Histogram(string, string, string, []float64, int) error { return nil }

func (Discard) BoxPlots(string, string, string, []string, [][]float64) error { return nil }
