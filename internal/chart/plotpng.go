package chart

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/winestat/winestat/internal/utils"
)

// PNGRenderer writes each chart as a PNG file into Dir.
type PNGRenderer struct {
	Dir string
}

// NewPNGRenderer creates the output directory if needed.
func NewPNGRenderer(dir string) (*PNGRenderer, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("figure dir: %w", err)
	}
	return &PNGRenderer{Dir: dir}, nil
}

func (r *PNGRenderer) save(p *plot.Plot, name string, w, h vg.Length) error {
	path := filepath.Join(r.Dir, name)
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// corrGrid adapts a correlation matrix to plotter.GridXYZ.
type corrGrid struct {
	cols   []string
	matrix [][]float64
}

func (g corrGrid) Dims() (c, r int)   { return len(g.cols), len(g.cols) }
func (g corrGrid) Z(c, r int) float64 { return g.matrix[r][c] }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// nameTicks labels integer axis positions with column names.
type nameTicks struct{ names []string }

func (t nameTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, n := range t.names {
		v := float64(i)
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: n})
	}
	return ticks
}

func (r *PNGRenderer) Heatmap(name, title string, cols []string, matrix [][]float64) error {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	h := plotter.NewHeatMap(corrGrid{cols: cols, matrix: matrix}, cm.Palette(255))

	p := plot.New()
	p.Title.Text = title
	p.Add(h)
	p.X.Tick.Marker = nameTicks{names: cols}
	p.Y.Tick.Marker = nameTicks{names: cols}
	p.X.Tick.Label.Rotation = -math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return r.save(p, name, 8*vg.Inch, 7*vg.Inch)
}

func (r *PNGRenderer) Scatter(name, title, xLabel, yLabel string, xs, ys []float64) error {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("scatter %s: %w", name, err)
	}
	s.GlyphStyle.Radius = vg.Points(2)
	s.Color = color.RGBA{R: 50, G: 50, B: 255, A: 160}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(s)
	return r.save(p, name, 5*vg.Inch, 4*vg.Inch)
}

func (r *PNGRenderer) Histogram(name, title, xLabel string, values []float64, bins int) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Count"
	if len(values) > 0 {
		if bins < 1 {
			bins = 1
		}
		h, err := plotter.NewHist(plotter.Values(values), bins)
		if err != nil {
			return fmt.Errorf("hist %s: %w", name, err)
		}
		h.FillColor = color.RGBA{R: 120, G: 120, B: 200, A: 255}
		p.Add(h)
	}
	return r.save(p, name, 5*vg.Inch, 4*vg.Inch)
}

func (r *PNGRenderer) BoxPlots(name, title, yLabel string, labels []string, buckets [][]float64) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	for i, b := range buckets {
		if len(b) == 0 {
			continue // degenerate bucket keeps its axis slot, no box
		}
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(b))
		if err != nil {
			return fmt.Errorf("boxplot %s[%d]: %w", name, i, err)
		}
		p.Add(box)
	}
	p.NominalX(labels...)
	return r.save(p, name, 5*vg.Inch, 4*vg.Inch)
}
