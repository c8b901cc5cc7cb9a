package timeline

import (
	"strings"
	"unicode/utf8"

	"codecast/internal/block"
	"codecast/internal/textdiff"
	"codecast/internal/timing"
)

// BlockMetadata is a block with its computed placement on its own level's
// timeline. Start is relative to the enclosing sequence.
type BlockMetadata struct {
	Block      block.Block
	Start      int
	Duration   int
	PreRoll    int
	AddedChars int
	// Transition is the number of frames that follow the block before the
	// next sibling may start.
	Transition int
	Panes      []PaneMetadata
}

// Kind returns the wrapped block's kind.
func (m BlockMetadata) Kind() block.Kind { return m.Block.Kind() }

// End returns the first frame after the block's own duration.
func (m BlockMetadata) End() int { return m.Start + m.Duration }

// PaneMetadata is one compiled pane of a layout.
type PaneMetadata struct {
	Blocks      []BlockMetadata `json:"blocks"`
	TotalFrames int             `json:"totalFrames"`
}

// Result is a compiled sequence.
type Result struct {
	Blocks        []BlockMetadata
	TotalFrames   int
	MaxLineLength int
	MaxLineCount  int
}

// Options adjusts a single compilation.
type Options struct {
	// Instant forces near-zero typing time for every code block.
	Instant bool
}

// Compile places every block on a frame timeline. Each sequence, including
// every layout pane, starts its own cursor at frame zero. The result is a
// pure function of its inputs.
func Compile(blocks []block.Block, fps int, settings timing.Settings, opts Options) Result {
	if opts.Instant {
		settings.InstantChanges = true
	}
	return compileSequence(blocks, fps, settings)
}

func compileSequence(blocks []block.Block, fps int, s timing.Settings) Result {
	res := Result{Blocks: make([]BlockMetadata, 0, len(blocks))}
	preRoll := s.PreRoll(fps)

	cursor := 0
	var prevContent, prevTitle string
	for i, b := range blocks {
		meta := BlockMetadata{Block: b, Start: cursor}
		switch v := b.(type) {
		case block.Code:
			baseline := prevContent
			if v.StartFromBlank || v.Title != prevTitle {
				baseline = ""
			}
			meta.AddedChars = textdiff.AddedChars(baseline, v.Content)
			meta.PreRoll = preRoll
			meta.Start = cursor + preRoll
			meta.Duration = s.CodeFrames(meta.AddedChars, fps)
			prevContent, prevTitle = v.Content, v.Title

			length, count := lineStats(v.Content)
			res.MaxLineLength = max(res.MaxLineLength, length)
			res.MaxLineCount = max(res.MaxLineCount, count)
		case block.Layout:
			meta.Panes = make([]PaneMetadata, 0, len(v.Panes))
			for _, pane := range v.Panes {
				inner := compileSequence(pane.Blocks, fps, s)
				meta.Panes = append(meta.Panes, PaneMetadata{Blocks: inner.Blocks, TotalFrames: inner.TotalFrames})
				meta.Duration = max(meta.Duration, inner.TotalFrames)
				res.MaxLineLength = max(res.MaxLineLength, inner.MaxLineLength)
				res.MaxLineCount = max(res.MaxLineCount, inner.MaxLineCount)
			}
		default:
			meta.Duration, _ = s.CutawayFrames(b, fps)
		}

		meta.Transition = s.Transition(fps)
		if i+1 < len(blocks) && block.ChainsFrom(b, blocks[i+1]) {
			meta.Transition = s.ChainedTransition(fps)
		}
		cursor = meta.End() + meta.Transition
		res.Blocks = append(res.Blocks, meta)
	}
	res.TotalFrames = cursor
	return res
}

func lineStats(content string) (maxLength, count int) {
	lines := strings.Split(content, "\n")
	for _, line := range lines {
		maxLength = max(maxLength, utf8.RuneCountInString(line))
	}
	return maxLength, len(lines)
}
