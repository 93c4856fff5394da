package models

import "time"

// Point is a single dated value on a chart line.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// LineSeries is one named line on a line chart.
type LineSeries struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// LineChart is the renderable specification of a multi-series line chart.
// A front end draws it verbatim: one line per series, dates on the x-axis.
type LineChart struct {
	ChartType string       `json:"chart_type"`
	Title     string       `json:"title"`
	Series    []LineSeries `json:"series"`
	Legend    bool         `json:"legend"`
	Grid      bool         `json:"grid"`
}

// Bar is a single labeled bar with its annotation text rendered above it.
type Bar struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Annotation string  `json:"annotation"`
}

// BarChart is the renderable specification of a bar chart. ReferenceLine,
// when set, draws a horizontal line at the given y value.
type BarChart struct {
	ChartType     string   `json:"chart_type"`
	Title         string   `json:"title"`
	YAxisLabel    string   `json:"y_axis_label,omitempty"`
	Bars          []Bar    `json:"bars"`
	ReferenceLine *float64 `json:"reference_line,omitempty"`
	Grid          bool     `json:"grid"`
}
