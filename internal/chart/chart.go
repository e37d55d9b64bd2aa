// Package chart implements the two score visualizations: a cartesian bar
// chart and a polar radar chart. Each variant is split into a pure layout
// step (geometry only, fully testable) and an SVG drawing step. A layout is
// recomputed from scratch for every input; nothing is retained between
// renders.
package chart

import "strconv"

// Datum is one category/value pair to plot. Values are expected in [0,1]
// by contract; out-of-range values are drawn as-is, not clamped.
type Datum struct {
	Label string
	Value float64
}

// gridLevels are the fixed value-axis tick levels shared by both variants.
var gridLevels = [...]float64{0, 0.25, 0.5, 0.75, 1}

// formatValue renders a score with exactly 3 decimal places.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
