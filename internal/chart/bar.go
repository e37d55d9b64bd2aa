package chart

import (
	"io"

	svg "github.com/ajstarks/svgo/float"
)

// Bar chart canvas defaults.
const (
	DefaultBarWidth  = 640.0
	DefaultBarHeight = 360.0
)

// Margins leave room for the title above and the two axis captions
// below and left of the plot area.
const (
	barMarginLeft   = 70.0
	barMarginRight  = 20.0
	barMarginTop    = 60.0
	barMarginBottom = 60.0
)

// bandPadding is the band-scale padding fraction (inner and outer).
const bandPadding = 0.3

// Bar is one positioned bar. X/Y is the top-left corner of the rectangle.
type Bar struct {
	X, Y, W, H float64
	Label      string
	Value      float64
}

// ValueTick is one tick on the value axis.
type ValueTick struct {
	Y     float64
	Label string
}

// BarLayout is the complete geometry of a bar chart render.
type BarLayout struct {
	Width, Height   float64
	PlotX, PlotY    float64
	PlotW, PlotH    float64
	Title           string
	Bars            []Bar
	Ticks           []ValueTick
	CategoryCaption string
	ValueCaption    string
}

// NewBarLayout lays out a bar chart at the default canvas size.
func NewBarLayout(data []Datum, title string) BarLayout {
	return NewBarLayoutSize(data, title, DefaultBarWidth, DefaultBarHeight)
}

// NewBarLayoutSize lays out a bar chart for the given canvas size.
// One ordinal band per datum spans the inner width; the value scale is
// fixed to [0,1] over the inner height, value 0 at the bottom.
func NewBarLayoutSize(data []Datum, title string, width, height float64) BarLayout {
	l := BarLayout{
		Width:           width,
		Height:          height,
		PlotX:           barMarginLeft,
		PlotY:           barMarginTop,
		PlotW:           width - barMarginLeft - barMarginRight,
		PlotH:           height - barMarginTop - barMarginBottom,
		Title:           title,
		CategoryCaption: "Data type",
		ValueCaption:    "Association score",
	}

	for _, lvl := range gridLevels {
		l.Ticks = append(l.Ticks, ValueTick{
			Y:     l.PlotY + l.PlotH*(1-lvl),
			Label: formatValue(lvl),
		})
	}

	n := len(data)
	if n == 0 {
		return l
	}

	// Band scale: step = range / (n - paddingInner + 2*paddingOuter),
	// bandwidth = step * (1 - paddingInner), bands offset by the outer pad.
	step := l.PlotW / (float64(n) + bandPadding)
	bandW := step * (1 - bandPadding)

	l.Bars = make([]Bar, 0, n)
	for i, d := range data {
		h := d.Value * l.PlotH
		l.Bars = append(l.Bars, Bar{
			X:     l.PlotX + step*(bandPadding+float64(i)),
			Y:     l.PlotY + l.PlotH - h,
			W:     bandW,
			H:     h,
			Label: d.Label,
			Value: d.Value,
		})
	}
	return l
}

// Render draws the layout as a standalone SVG document.
func (l BarLayout) Render(w io.Writer) {
	c := svg.New(w)
	c.Start(l.Width, l.Height)
	c.Rect(0, 0, l.Width, l.Height, "fill:white")

	c.Text(20, 30, l.Title, "font-size:16px;font-weight:bold;fill:#1f2937")

	// Axis lines
	c.Line(l.PlotX, l.PlotY, l.PlotX, l.PlotY+l.PlotH, "stroke:#4b5563;stroke-width:1")
	c.Line(l.PlotX, l.PlotY+l.PlotH, l.PlotX+l.PlotW, l.PlotY+l.PlotH, "stroke:#4b5563;stroke-width:1")

	for _, tick := range l.Ticks {
		c.Line(l.PlotX-5, tick.Y, l.PlotX, tick.Y, "stroke:#4b5563;stroke-width:1")
		c.Line(l.PlotX, tick.Y, l.PlotX+l.PlotW, tick.Y, "stroke:#e5e7eb;stroke-width:1")
		c.Text(l.PlotX-9, tick.Y+4, tick.Label, "font-size:11px;fill:#374151;text-anchor:end")
	}

	for _, b := range l.Bars {
		c.Rect(b.X, b.Y, b.W, b.H, "fill:#4f46e5")
		c.Text(b.X+b.W/2, l.PlotY+l.PlotH+16, b.Label,
			"font-size:10px;fill:#374151;text-anchor:middle")
	}

	c.Text(l.PlotX+l.PlotW/2, l.Height-14, l.CategoryCaption,
		"font-size:12px;fill:#374151;text-anchor:middle")
	c.TranslateRotate(18, l.PlotY+l.PlotH/2, -90)
	c.Text(0, 0, l.ValueCaption, "font-size:12px;fill:#374151;text-anchor:middle")
	c.Gend()

	c.End()
}
