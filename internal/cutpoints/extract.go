package cutpoints

import (
	"codecast/internal/block"
	"codecast/internal/phases"
	"codecast/internal/timeline"
	"codecast/internal/timing"
)

// Detail describes where one leaf block sits in the final cut.
type Detail struct {
	Kind             block.Kind `json:"type"`
	Start            int        `json:"start"`
	EndOfHighlight   *int       `json:"endOfHighlight,omitempty"`
	EndOfBlock       int        `json:"endOfBlock"`
	SequenceDuration int        `json:"sequenceDuration"`
	IsCode           bool       `json:"isCode"`
}

// Cuts is the extractor's output.
type Cuts struct {
	Points    []int
	Details   []Detail
	Intervals []Interval
}

// Extract flattens a compiled timeline into absolute, categorized intervals
// and reduces them to cut points. Nested pane blocks are offset by their
// layout's start.
func Extract(res timeline.Result, fps int, s timing.Settings) Cuts {
	x := extractor{fps: fps, settings: s}
	plan := phases.ForTimeline(res, fps, s)

	for i, meta := range res.Blocks {
		end := meta.End() + plan.HighlightHold[i] + plan.Tail[i]
		if i+1 < len(res.Blocks) {
			end = begin(res.Blocks[i+1])
		}
		if _, ok := meta.Block.(block.Layout); !ok {
			x.leaf(meta, meta.Start, end, plan.HighlightHold[i], plan.Tail[i])
			continue
		}
		from := len(x.intervals)
		x.panes(meta, meta.Start, end)
		if !covers(x.intervals[from:], meta.Start, end) {
			x.intervals = append(x.intervals, Interval{Start: meta.Start, End: end, Category: Covered})
		}
	}

	intervals := clip(x.intervals, res.TotalFrames)
	return Cuts{
		Points:    Correct(Merge(intervals, res.TotalFrames), res.TotalFrames),
		Details:   x.details,
		Intervals: intervals,
	}
}

type extractor struct {
	fps       int
	settings  timing.Settings
	intervals []Interval
	details   []Detail
}

// panes flattens every pane of a layout that starts at absolute frame offset
// and must finish by limit.
func (x *extractor) panes(meta timeline.BlockMetadata, offset, limit int) {
	for _, pane := range meta.Panes {
		plan := phases.Adjust(phases.SpansOf(pane.Blocks), x.fps, x.settings, phases.Options{})
		for j, child := range pane.Blocks {
			end := limit
			if j+1 < len(pane.Blocks) {
				end = min(limit, offset+begin(pane.Blocks[j+1]))
			}
			start := offset + child.Start
			if _, ok := child.Block.(block.Layout); ok {
				x.panes(child, start, end)
				continue
			}
			x.leaf(child, start, end, plan.HighlightHold[j], plan.Tail[j])
		}
	}
}

// leaf emits the intervals and detail for a non-layout block placed at
// absolute frame start and owning the timeline until end.
func (x *extractor) leaf(meta timeline.BlockMetadata, start, end, hold, tail int) {
	detail := Detail{
		Kind:             meta.Kind(),
		Start:            start,
		EndOfBlock:       end,
		SequenceDuration: max(0, end-start),
	}

	switch v := meta.Block.(type) {
	case block.Code:
		detail.IsCode = true
		if meta.PreRoll > 0 {
			x.add(start-meta.PreRoll, start, end, Covered)
		}
		if !v.Highlighted() {
			x.add(start, end, end, Covered)
			break
		}
		highlightEnd := min(start+meta.Duration+hold, end)
		x.add(start, highlightEnd, end, Highlighted)
		x.add(highlightEnd, start+meta.Duration+hold+tail, end, Covered)
		detail.EndOfHighlight = &highlightEnd
	case block.Video:
		windowStart, windowEnd, ok := v.Window()
		if !ok {
			x.add(start, end, end, Covered)
			break
		}
		spanEnd := min(start+meta.Duration, end)
		playFrom := min(start+timing.Frames(x.settings.VideoLeadInSeconds, x.fps), spanEnd)
		playTo := min(playFrom+timing.Frames(windowEnd-windowStart, x.fps), spanEnd)
		x.add(start, playFrom, end, Covered)
		x.add(playFrom, playTo, end, Highlighted)
		x.add(playTo, end, end, Covered)
		detail.EndOfHighlight = &playTo
	default:
		x.add(start, end, end, Covered)
	}
	x.details = append(x.details, detail)
}

// add records [from, to) clipped to limit, dropping empty ranges.
func (x *extractor) add(from, to, limit int, category Category) {
	to = min(to, limit)
	if to <= from {
		return
	}
	x.intervals = append(x.intervals, Interval{Start: from, End: to, Category: category})
}

// begin is the first frame a block owns, including any code pre-roll.
func begin(meta timeline.BlockMetadata) int {
	return meta.Start - meta.PreRoll
}

func clip(intervals []Interval, totalFrames int) []Interval {
	out := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		iv.Start = min(max(iv.Start, 0), totalFrames)
		iv.End = min(max(iv.End, 0), totalFrames)
		if iv.Len() > 0 {
			out = append(out, iv)
		}
	}
	return out
}
