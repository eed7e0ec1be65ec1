// Package chart renders analytics tables into PNG images kept in an ImageStore.
package chart

import (
	"image/color"
	"time"

	"github.com/researchaccelerator-hub/video-insights/model"
)

// Renderer draws one chart per call and returns the id of the stored image.
type Renderer interface {
	CumulativeLine(title string, series ...TimeSeries) (string, error)
	SentimentScatter(title string, groups ...PointGroup) (string, error)
	Bars(title, xLabel, yLabel string, bars []Bar) (string, error)
	GroupedBars(title, xLabel, yLabel string, categories []string, series []BarSeries) (string, error)
	Histogram(title, xLabel, yLabel string, values []float64, bins int) (string, error)
	TermCloud(title string, terms []model.TermCount) (string, error)
}

// TimePoint is one sample of a time series.
type TimePoint struct {
	At    time.Time
	Value float64
}

// TimeSeries is a labelled line. A nil Color selects a palette color.
type TimeSeries struct {
	Label  string
	Color  color.Color
	Points []TimePoint
}

// Point is one scatter sample.
type Point struct {
	X, Y float64
}

// PointGroup is a labelled set of scatter samples drawn in one color.
type PointGroup struct {
	Label  string
	Color  color.Color
	Points []Point
}

// Bar is one labelled bar.
type Bar struct {
	Label string
	Value float64
}

// BarSeries is one group member of a grouped bar chart. Values has one entry
// per category.
type BarSeries struct {
	Label  string
	Values []float64
}

// Colors used for sentiment views.
var (
	Neutral  color.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	Positive color.Color = color.RGBA{G: 128, A: 255}
	Negative color.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)
