package cutpoints

import (
	"slices"
	"sort"
)

// Category labels a stretch of the timeline for the trimming step.
type Category int

const (
	// Highlighted frames show content the viewer must see in full.
	Highlighted Category = iota
	// Covered frames hold or frame content and may be shortened.
	Covered
)

func (c Category) String() string {
	switch c {
	case Highlighted:
		return "highlighted"
	case Covered:
		return "covered"
	default:
		return "unknown"
	}
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Interval is a half-open frame range [Start, End).
type Interval struct {
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Category Category `json:"category"`
}

// Len returns the number of frames in the interval.
func (iv Interval) Len() int { return max(0, iv.End-iv.Start) }

// Merge turns categorized intervals into ordered cut points. A cut is placed
// at 0, wherever the category changes or the next interval does not start
// where the previous one ended, and at totalFrames.
func Merge(intervals []Interval, totalFrames int) []int {
	sorted := slices.Clone(intervals)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	points := []int{0}
	var prev Interval
	started := false
	for _, iv := range sorted {
		if iv.Len() == 0 {
			continue
		}
		if started && (iv.Category != prev.Category || iv.Start != prev.End) {
			points = append(points, iv.Start)
		}
		prev, started = iv, true
	}
	points = append(points, totalFrames)
	return normalize(points, totalFrames)
}

// Correct removes one-frame segments. The left cut of such a segment moves
// one frame later; when the left cut is the pinned zero the right cut moves
// instead. Zero and totalFrames never move.
func Correct(points []int, totalFrames int) []int {
	points = normalize(points, totalFrames)
	if totalFrames <= 1 {
		return points
	}
	for {
		k := firstSingleFrame(points)
		if k < 0 {
			return points
		}
		if points[k] == 0 {
			points[k+1]++
		} else {
			points[k]++
		}
		points = normalize(points, totalFrames)
	}
}

func firstSingleFrame(points []int) int {
	for i := 0; i+1 < len(points); i++ {
		if points[i+1]-points[i] == 1 {
			return i
		}
	}
	return -1
}

// normalize clamps to [0, totalFrames], pins both endpoints, sorts and dedupes.
func normalize(points []int, totalFrames int) []int {
	totalFrames = max(0, totalFrames)
	out := make([]int, 0, len(points)+2)
	out = append(out, 0, totalFrames)
	for _, p := range points {
		out = append(out, min(max(p, 0), totalFrames))
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// covers reports whether the union of intervals spans [from, to).
func covers(intervals []Interval, from, to int) bool {
	if to <= from {
		return true
	}
	sorted := slices.Clone(intervals)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	pos := from
	for _, iv := range sorted {
		if iv.Len() == 0 || iv.End <= pos {
			continue
		}
		if iv.Start > pos {
			return false
		}
		pos = iv.End
		if pos >= to {
			return true
		}
	}
	return pos >= to
}
