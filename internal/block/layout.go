package block

import (
	"math"
	"strings"
)

const (
	DirectionRow    = "row"
	DirectionColumn = "column"

	defaultLayoutGap = 24
	maxGridWeight    = 12
)

// Axis returns the normalized direction. Anything other than "column" is a row.
func (l Layout) Axis() string {
	if strings.EqualFold(strings.TrimSpace(l.Direction), DirectionColumn) {
		return DirectionColumn
	}
	return DirectionRow
}

// GapPixels returns the spacing between panes.
func (l Layout) GapPixels() int {
	if l.Gap == nil || *l.Gap < 0 {
		return defaultLayoutGap
	}
	return *l.Gap
}

// PaneWeights returns one relative size per pane. Sizes that all fit a 12-column
// grid are rounded and clamped to 1..12; larger values are used as raw weights.
// Missing or mismatched sizes give every pane weight 1.
func (l Layout) PaneWeights() []float64 {
	weights := make([]float64, len(l.Panes))
	if len(l.Sizes) != len(l.Panes) {
		for i := range weights {
			weights[i] = 1
		}
		return weights
	}
	grid := true
	for _, size := range l.Sizes {
		if size > maxGridWeight {
			grid = false
			break
		}
	}
	for i, size := range l.Sizes {
		if grid {
			weights[i] = math.Min(maxGridWeight, math.Max(1, math.Round(size)))
			continue
		}
		weights[i] = math.Max(1, size)
	}
	return weights
}
