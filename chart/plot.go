package chart

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/researchaccelerator-hub/video-insights/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	defaultWidth  = 10 * vg.Inch
	defaultHeight = 5 * vg.Inch
	// maxCloudBars bounds the terms drawn by TermCloud.
	maxCloudBars = 25
)

// PlotRenderer implements Renderer with gonum plots.
type PlotRenderer struct {
	store         *ImageStore
	width, height vg.Length
}

// NewPlotRenderer creates a renderer storing its images in store.
func NewPlotRenderer(store *ImageStore) *PlotRenderer {
	return &PlotRenderer{store: store, width: defaultWidth, height: defaultHeight}
}

// Store returns the store images are written to.
func (r *PlotRenderer) Store() *ImageStore { return r.store }

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

func pick(c color.Color, i int) color.Color {
	if c != nil {
		return c
	}
	return plotutil.Color(i)
}

func (r *PlotRenderer) save(p *plot.Plot) (string, error) {
	wt, err := p.WriterTo(r.width, r.height, "png")
	if err != nil {
		return "", fmt.Errorf("failed to encode chart %q: %w", p.Title.Text, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("failed to write chart %q: %w", p.Title.Text, err)
	}
	return r.store.Put(buf.Bytes()), nil
}

// CumulativeLine draws one line per series over a date axis.
func (r *PlotRenderer) CumulativeLine(title string, series ...TimeSeries) (string, error) {
	p := newPlot(title, "Date", "Sum of comments")
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Add(plotter.NewGrid())

	for i, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j].X = float64(pt.At.Unix())
			xys[j].Y = pt.Value
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return "", fmt.Errorf("line %q: %w", s.Label, err)
		}
		line.Color = pick(s.Color, i)
		line.Width = vg.Points(1)
		p.Add(line)
		if s.Label != "" {
			p.Legend.Add(s.Label, line)
		}
	}
	p.Legend.Top = true
	p.Legend.Left = true
	return r.save(p)
}

// SentimentScatter draws one colored point group per sentiment view.
func (r *PlotRenderer) SentimentScatter(title string, groups ...PointGroup) (string, error) {
	p := newPlot(title, "Sentiment", "Logarithm of like count")
	p.Add(plotter.NewGrid())

	for i, g := range groups {
		if len(g.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(g.Points))
		for j, pt := range g.Points {
			xys[j].X, xys[j].Y = pt.X, pt.Y
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return "", fmt.Errorf("scatter %q: %w", g.Label, err)
		}
		sc.GlyphStyle.Color = pick(g.Color, i)
		sc.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(sc)
		if g.Label != "" {
			p.Legend.Add(g.Label, sc)
		}
	}
	p.Legend.Top = true
	return r.save(p)
}

// Bars draws a simple bar chart.
func (r *PlotRenderer) Bars(title, xLabel, yLabel string, bars []Bar) (string, error) {
	p := newPlot(title, xLabel, yLabel)
	if len(bars) > 0 {
		values := make(plotter.Values, len(bars))
		labels := make([]string, len(bars))
		for i, b := range bars {
			values[i] = b.Value
			labels[i] = b.Label
		}
		bc, err := plotter.NewBarChart(values, vg.Points(40))
		if err != nil {
			return "", fmt.Errorf("bars %q: %w", title, err)
		}
		bc.Color = plotutil.Color(0)
		bc.LineStyle.Width = 0
		p.Add(bc)
		p.NominalX(labels...)
	}
	return r.save(p)
}

// GroupedBars draws one bar per series side by side for every category.
func (r *PlotRenderer) GroupedBars(title, xLabel, yLabel string, categories []string, series []BarSeries) (string, error) {
	p := newPlot(title, xLabel, yLabel)
	width := vg.Points(24)
	for i, s := range series {
		if len(s.Values) != len(categories) {
			return "", fmt.Errorf("bar series %q has %d values for %d categories", s.Label, len(s.Values), len(categories))
		}
		if len(s.Values) == 0 {
			continue
		}
		bc, err := plotter.NewBarChart(plotter.Values(s.Values), width)
		if err != nil {
			return "", fmt.Errorf("bar series %q: %w", s.Label, err)
		}
		bc.Color = plotutil.Color(i)
		bc.LineStyle.Width = 0
		bc.Offset = vg.Length(float64(i)-float64(len(series)-1)/2) * width
		p.Add(bc)
		p.Legend.Add(s.Label, bc)
	}
	if len(categories) > 0 {
		p.NominalX(categories...)
	}
	p.Legend.Top = true
	return r.save(p)
}

// Histogram draws the distribution of values over bins equal-width bins.
func (r *PlotRenderer) Histogram(title, xLabel, yLabel string, values []float64, bins int) (string, error) {
	p := newPlot(title, xLabel, yLabel)
	if bins < 1 {
		bins = 1
	}
	if len(values) > 0 {
		h, err := plotter.NewHist(plotter.Values(values), bins)
		if err != nil {
			return "", fmt.Errorf("histogram %q: %w", title, err)
		}
		h.FillColor = plotutil.Color(0)
		p.Add(h)
		p.X.Min = 0
	}
	return r.save(p)
}

// TermCloud draws the most frequent terms as horizontal bars, the most
// frequent on top. terms must be ordered by descending count.
func (r *PlotRenderer) TermCloud(title string, terms []model.TermCount) (string, error) {
	p := newPlot(title, "Occurrences", "")
	if len(terms) > maxCloudBars {
		terms = terms[:maxCloudBars]
	}
	if len(terms) > 0 {
		n := len(terms)
		values := make(plotter.Values, n)
		labels := make([]string, n)
		for i, t := range terms {
			values[n-1-i] = float64(t.Count)
			labels[n-1-i] = t.Term
		}
		bc, err := plotter.NewBarChart(values, vg.Points(12))
		if err != nil {
			return "", fmt.Errorf("terms %q: %w", title, err)
		}
		bc.Horizontal = true
		bc.Color = plotutil.Color(2)
		bc.LineStyle.Width = 0
		p.Add(bc)
		p.NominalY(labels...)
	}
	return r.save(p)
}

var _ Renderer = (*PlotRenderer)(nil)
