package chart

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo/float"
)

// Radar chart canvas defaults.
const (
	DefaultRadarWidth  = 640.0
	DefaultRadarHeight = 500.0
	DefaultRadarMargin = 80.0
)

// axisLabelOffset is how far axis labels sit outside the outer ring.
const axisLabelOffset = 14.0

// Ring is one concentric grid circle. The level label is drawn on the
// vertical (top) spoke only.
type Ring struct {
	Radius         float64
	Label          string
	LabelX, LabelY float64
}

// Spoke is one axis line from the center to the outer ring, with its
// category label placed just outside the ring.
type Spoke struct {
	X2, Y2         float64
	Label          string
	LabelX, LabelY float64
	Anchor         string
}

// Vertex is one data point on the radar polygon.
type Vertex struct {
	X, Y  float64
	Label string
	Value float64
}

// RadarLayout is the complete geometry of a radar chart render.
type RadarLayout struct {
	Width, Height float64
	Margin        float64
	CX, CY        float64
	Radius        float64
	Title         string
	Rings         []Ring
	Spokes        []Spoke
	Points        []Vertex
}

// NewRadarLayout lays out a radar chart at the default canvas size.
func NewRadarLayout(data []Datum, title string) RadarLayout {
	return NewRadarLayoutSize(data, title, DefaultRadarWidth, DefaultRadarHeight, DefaultRadarMargin)
}

// NewRadarLayoutSize lays out a radar chart for the given canvas size.
// Axes are spaced evenly around the circle with axis 0 pointing straight
// up and subsequent axes proceeding clockwise. The radial scale maps
// [0,1] linearly onto [0,radius].
func NewRadarLayoutSize(data []Datum, title string, width, height, margin float64) RadarLayout {
	l := RadarLayout{
		Width:  width,
		Height: height,
		Margin: margin,
		CX:     width / 2,
		CY:     height / 2,
		Radius: math.Min(width, height)/2 - margin,
		Title:  title,
	}

	for _, lvl := range gridLevels {
		r := lvl * l.Radius
		l.Rings = append(l.Rings, Ring{
			Radius: r,
			Label:  formatValue(lvl),
			LabelX: l.CX - 8,
			LabelY: l.CY - r + 4,
		})
	}

	n := len(data)
	if n == 0 {
		return l
	}

	l.Spokes = make([]Spoke, 0, n)
	l.Points = make([]Vertex, 0, n)
	for i, d := range data {
		// Shift the conventional 0° reference so index 0 renders at the
		// top; increasing angles proceed clockwise in screen coordinates.
		angle := float64(i)*(2*math.Pi/float64(n)) - math.Pi/2
		cos, sin := math.Cos(angle), math.Sin(angle)

		labelR := l.Radius + axisLabelOffset
		l.Spokes = append(l.Spokes, Spoke{
			X2:     l.CX + l.Radius*cos,
			Y2:     l.CY + l.Radius*sin,
			Label:  d.Label,
			LabelX: l.CX + labelR*cos,
			LabelY: l.CY + labelR*sin,
			Anchor: anchorFor(cos),
		})

		r := d.Value * l.Radius
		l.Points = append(l.Points, Vertex{
			X:     l.CX + r*cos,
			Y:     l.CY + r*sin,
			Label: d.Label,
			Value: d.Value,
		})
	}
	return l
}

// anchorFor picks the text anchor by the sign of the axis cosine so labels
// never overlap the plot: right half anchors at the start, left half at
// the end, near-vertical axes in the middle.
func anchorFor(cos float64) string {
	switch {
	case math.Abs(cos) < 1e-6:
		return "middle"
	case cos > 0:
		return "start"
	default:
		return "end"
	}
}

// Render draws the layout as a standalone SVG document.
func (l RadarLayout) Render(w io.Writer) {
	c := svg.New(w)
	c.Start(l.Width, l.Height)
	c.Rect(0, 0, l.Width, l.Height, "fill:white")

	c.Text(20, 30, l.Title, "font-size:16px;font-weight:bold;fill:#1f2937")

	for _, ring := range l.Rings {
		c.Circle(l.CX, l.CY, ring.Radius, "fill:none;stroke:#e5e7eb;stroke-width:1")
		if len(l.Spokes) > 0 {
			c.Text(ring.LabelX, ring.LabelY, ring.Label,
				"font-size:10px;fill:#6b7280;text-anchor:end")
		}
	}

	for _, s := range l.Spokes {
		c.Line(l.CX, l.CY, s.X2, s.Y2, "stroke:#d1d5db;stroke-width:1")
		c.Text(s.LabelX, s.LabelY, s.Label,
			"font-size:11px;fill:#374151;text-anchor:"+s.Anchor)
	}

	if len(l.Points) > 0 {
		xs := make([]float64, len(l.Points))
		ys := make([]float64, len(l.Points))
		for i, p := range l.Points {
			xs[i] = p.X
			ys[i] = p.Y
		}
		c.Polygon(xs, ys, "fill:#4f46e5;fill-opacity:0.35;stroke:#4f46e5;stroke-width:2")
		for _, p := range l.Points {
			c.Circle(p.X, p.Y, 3, "fill:#4f46e5")
		}
	}

	c.End()
}
