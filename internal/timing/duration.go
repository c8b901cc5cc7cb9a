package timing

import (
	"math"
	"unicode/utf8"

	"codecast/internal/block"
)

// instantSeconds stands in for a zero-length typing phase.
const instantSeconds = 0.000001

// Frames converts seconds to whole frames, rounding to nearest. Negative
// results are clamped to zero.
func Frames(seconds float64, fps int) int {
	frames := int(math.Round(seconds * float64(fps)))
	if frames < 0 {
		return 0
	}
	return frames
}

// CodeSeconds returns the unscaled typing time for a code block that adds
// addedChars characters.
func (s Settings) CodeSeconds(addedChars int) float64 {
	if s.InstantChanges {
		return instantSeconds
	}
	added := float64(addedChars)
	if addedChars <= s.SmallCharsThreshold {
		return math.Max(s.MinSmallSnippetSeconds, added*s.SmallSecondsPerChar)
	}
	return math.Max(added*s.LargeSecondsPerChar, s.MinLargeSnippetSeconds)
}

// CodeFrames returns the typing duration of a code block in frames.
func (s Settings) CodeFrames(addedChars, fps int) int {
	return s.Scaled(s.CodeSeconds(addedChars), fps)
}

// CutawayFrames returns the duration of a non-code, non-layout block. The
// second result is false for code blocks and layouts.
func (s Settings) CutawayFrames(b block.Block, fps int) (int, bool) {
	switch v := b.(type) {
	case block.Image:
		return Frames(explicitOr(v.Cutaway, s.ImageSeconds), fps), true
	case block.Gif:
		return Frames(explicitOr(v.Cutaway, s.GifSeconds), fps), true
	case block.Video:
		return Frames(s.ClipSeconds(v), fps), true
	case block.Console:
		if v.DurationFrames != nil {
			return max(0, *v.DurationFrames), true
		}
		return Frames(s.ConsoleSeconds(v), fps), true
	default:
		return 0, false
	}
}

// ClipSeconds resolves a video's on-screen time: explicit seconds, then the
// playback window, then the play-to-end fallback, then the generic default.
func (s Settings) ClipSeconds(v block.Video) float64 {
	if secs, ok := v.ExplicitSeconds(); ok {
		return secs
	}
	if start, end, ok := v.Window(); ok {
		return end - start
	}
	if v.PlayToEnd {
		return s.VideoPlayToEndSeconds
	}
	return s.VideoSeconds
}

// ConsoleSeconds returns the time needed to type the command, wait for enter,
// print the output and linger. Appended consoles skip the trailing linger
// because the next segment of the chain continues on the same screen.
func (s Settings) ConsoleSeconds(c block.Console) float64 {
	if secs, ok := c.ExplicitSeconds(); ok {
		return secs
	}
	command, output := c.Split()
	cmdLen := float64(utf8.RuneCountInString(command))
	outLen := float64(utf8.RuneCountInString(output))

	cmdCPS := rate(c.CommandCPS, s.ConsoleCommandCPS)
	outCPS := rate(c.OutputCPS, s.ConsoleOutputCPS)
	enterDelay := s.ConsoleEnterDelaySeconds
	if c.EnterDelay != nil {
		enterDelay = math.Max(0, *c.EnterDelay)
	}

	seconds := cmdLen/cmdCPS + enterDelay + outLen/outCPS
	if outLen == 0 {
		seconds += s.ConsoleCommandOnlyTailSeconds
	}
	if !c.Append {
		seconds += s.ConsoleTailSeconds
	}
	return math.Max(s.ConsoleMinVisibleSeconds, seconds)
}

func explicitOr(c block.Cutaway, fallback float64) float64 {
	if secs, ok := c.ExplicitSeconds(); ok {
		return secs
	}
	return fallback
}

// rate picks the per-block override when present and clamps it to at least
// one character per second.
func rate(override *float64, fallback float64) float64 {
	value := fallback
	if override != nil {
		value = *override
	}
	return math.Max(1, value)
}
