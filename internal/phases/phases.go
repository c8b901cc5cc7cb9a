package phases

import (
	"codecast/internal/block"
	"codecast/internal/timeline"
	"codecast/internal/timing"
)

// holdScale stretches the base tail into the highlight and tail phases.
const holdScale = 1.3

// Span is the part of a compiled block the adjuster reads.
type Span struct {
	Start      int
	Duration   int
	AddedChars int
	Code       bool
}

// Plan holds the per-block secondary phases of one sequence.
type Plan struct {
	HighlightHold []int
	Tail          []int
	// ExtraFramesPerBlock is the final block's combined hold and tail.
	ExtraFramesPerBlock int
}

// Options selects sequence-level behavior.
type Options struct {
	// FinalBonus adds the last-block tail bonus. Only the outermost sequence
	// gets it; nested panes end with their layout.
	FinalBonus bool
}

// TailFrames returns the tail length for a snippet that adds addedChars
// characters, clamped between the scaled minimum and maximum.
func TailFrames(addedChars, fps int, s timing.Settings) int {
	minHold := s.Scaled(s.TailHoldMinSeconds, fps)
	maxHold := s.Scaled(s.TailHoldMaxSeconds, fps)
	scaled := s.Scaled(s.TailHoldBaseSeconds+float64(addedChars)*s.TailHoldSecondsPerChar, fps)
	return max(minHold, min(maxHold, scaled))
}

// SpansOf extracts spans from compiled metadata.
func SpansOf(blocks []timeline.BlockMetadata) []Span {
	spans := make([]Span, len(blocks))
	for i, meta := range blocks {
		_, isCode := meta.Block.(block.Code)
		spans[i] = Span{
			Start:      meta.Start,
			Duration:   meta.Duration,
			AddedChars: meta.AddedChars,
			Code:       isCode,
		}
	}
	return spans
}

// Adjust computes highlight holds and tails for one sequence. Code blocks
// start from a content-scaled base; every other block starts at zero. A
// block whose hold and tail together fall short of the gap to its successor
// has its hold extended to close the gap.
func Adjust(spans []Span, fps int, s timing.Settings, opts Options) Plan {
	plan := Plan{
		HighlightHold: make([]int, len(spans)),
		Tail:          make([]int, len(spans)),
	}
	for i, span := range spans {
		if !span.Code {
			continue
		}
		base := scaleHold(TailFrames(span.AddedChars, fps, s))
		plan.HighlightHold[i] = base
		plan.Tail[i] = base
	}

	for i := 0; i+1 < len(spans); i++ {
		gap := max(0, spans[i+1].Start-(spans[i].Start+spans[i].Duration))
		if combined := plan.HighlightHold[i] + plan.Tail[i]; combined < gap {
			plan.HighlightHold[i] += gap - combined
		}
	}

	if last := len(spans) - 1; last >= 0 {
		if opts.FinalBonus {
			plan.Tail[last] += s.Scaled(s.LastBlockTailBonusSeconds, fps)
		}
		plan.ExtraFramesPerBlock = plan.HighlightHold[last] + plan.Tail[last]
	}
	return plan
}

// ForTimeline adjusts the top level of a compiled timeline.
func ForTimeline(res timeline.Result, fps int, s timing.Settings) Plan {
	return Adjust(SpansOf(res.Blocks), fps, s, Options{FinalBonus: true})
}

func scaleHold(frames int) int {
	return timing.Frames(float64(frames)*holdScale, 1)
}
