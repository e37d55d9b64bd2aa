package chart

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestNewRadarLayout_Radius(t *testing.T) {
	l := NewRadarLayout([]Datum{{Label: "a", Value: 1}}, "t")

	// min(640, 500)/2 - 80
	if !floatEq(l.Radius, 170) {
		t.Errorf("expected radius 170, got %f", l.Radius)
	}
	if !floatEq(l.CX, 320) || !floatEq(l.CY, 250) {
		t.Errorf("expected center (320, 250), got (%f, %f)", l.CX, l.CY)
	}
}

func TestNewRadarLayout_AxisAngles(t *testing.T) {
	data := []Datum{
		{Label: "up", Value: 1},
		{Label: "right", Value: 1},
		{Label: "down", Value: 1},
		{Label: "left", Value: 1},
	}
	l := NewRadarLayout(data, "t")

	if len(l.Spokes) != 4 {
		t.Fatalf("expected 4 spokes, got %d", len(l.Spokes))
	}

	tests := []struct {
		idx        int
		wantX2     float64
		wantY2     float64
		wantAnchor string
	}{
		{0, l.CX, l.CY - l.Radius, "middle"},
		{1, l.CX + l.Radius, l.CY, "start"},
		{2, l.CX, l.CY + l.Radius, "middle"},
		{3, l.CX - l.Radius, l.CY, "end"},
	}
	for _, tc := range tests {
		s := l.Spokes[tc.idx]
		if math.Abs(s.X2-tc.wantX2) > 1e-6 || math.Abs(s.Y2-tc.wantY2) > 1e-6 {
			t.Errorf("spoke %d: expected end (%f, %f), got (%f, %f)",
				tc.idx, tc.wantX2, tc.wantY2, s.X2, s.Y2)
		}
		if s.Anchor != tc.wantAnchor {
			t.Errorf("spoke %d: expected anchor %q, got %q", tc.idx, tc.wantAnchor, s.Anchor)
		}
	}
}

func TestNewRadarLayout_RadialScale(t *testing.T) {
	l := NewRadarLayout([]Datum{{Label: "up", Value: 0.5}}, "t")

	if len(l.Points) != 1 {
		t.Fatalf("expected 1 vertex, got %d", len(l.Points))
	}
	p := l.Points[0]
	// Axis 0 points straight up; half the score is half the radius.
	if math.Abs(p.X-l.CX) > 1e-6 {
		t.Errorf("expected vertex on the vertical axis, got x=%f (cx=%f)", p.X, l.CX)
	}
	if math.Abs(p.Y-(l.CY-l.Radius/2)) > 1e-6 {
		t.Errorf("expected vertex at %f, got %f", l.CY-l.Radius/2, p.Y)
	}
}

func TestNewRadarLayout_RingLevels(t *testing.T) {
	l := NewRadarLayout([]Datum{{Label: "a", Value: 1}}, "t")

	if len(l.Rings) != 5 {
		t.Fatalf("expected 5 rings, got %d", len(l.Rings))
	}
	wantLabels := []string{"0.000", "0.250", "0.500", "0.750", "1.000"}
	for i, want := range wantLabels {
		if l.Rings[i].Label != want {
			t.Errorf("ring %d: expected label %q, got %q", i, want, l.Rings[i].Label)
		}
		if !floatEq(l.Rings[i].Radius, gridLevels[i]*l.Radius) {
			t.Errorf("ring %d: expected radius %f, got %f", i, gridLevels[i]*l.Radius, l.Rings[i].Radius)
		}
	}
}

func TestNewRadarLayout_EmptyInput(t *testing.T) {
	l := NewRadarLayout(nil, "Empty")

	if len(l.Spokes) != 0 || len(l.Points) != 0 {
		t.Errorf("expected no spokes or points, got %d/%d", len(l.Spokes), len(l.Points))
	}
	if len(l.Rings) != 5 {
		t.Errorf("expected 5 rings, got %d", len(l.Rings))
	}

	var buf bytes.Buffer
	l.Render(&buf)
	out := buf.String()

	if got := strings.Count(out, "<circle"); got != 5 {
		t.Errorf("expected 5 grid rings, got %d circles", got)
	}
	if strings.Contains(out, "<polygon") {
		t.Error("expected no polygon for empty input")
	}
	if strings.Contains(out, "<line") {
		t.Error("expected no spokes for empty input")
	}
	if !strings.Contains(out, "Empty") {
		t.Error("expected title in output")
	}
}

func TestNewRadarLayout_SingleAxis(t *testing.T) {
	l := NewRadarLayout([]Datum{{Label: "only", Value: 0.4}}, "t")

	if len(l.Spokes) != 1 || len(l.Points) != 1 {
		t.Fatalf("expected 1 spoke and 1 point, got %d/%d", len(l.Spokes), len(l.Points))
	}

	var buf bytes.Buffer
	l.Render(&buf)
	if !strings.Contains(buf.String(), "<polygon") {
		t.Error("expected degenerate polygon for a single axis")
	}
}

func TestRadarLayout_Render(t *testing.T) {
	data := []Datum{
		{Label: "Known drug", Value: 0.7},
		{Label: "Literature", Value: 0.2},
		{Label: "Animal model", Value: 0.9},
	}
	l := NewRadarLayout(data, "KRAS association scores")

	var buf bytes.Buffer
	l.Render(&buf)
	out := buf.String()

	for _, want := range []string{
		"KRAS association scores",
		"Known drug",
		"Literature",
		"Animal model",
		"0.500",
		"<polygon",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected rendered SVG to contain %q", want)
		}
	}

	// One marker circle per vertex on top of the 5 rings.
	if got := strings.Count(out, "<circle"); got != 8 {
		t.Errorf("expected 8 circles (5 rings + 3 markers), got %d", got)
	}
}

func TestRadarLayout_RenderIdempotent(t *testing.T) {
	data := []Datum{
		{Label: "a", Value: 0.3},
		{Label: "b", Value: 0.6},
	}

	var first, second bytes.Buffer
	NewRadarLayout(data, "t").Render(&first)
	NewRadarLayout(data, "t").Render(&second)

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("expected identical output for identical inputs")
	}
}
