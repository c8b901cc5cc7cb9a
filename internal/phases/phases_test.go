package phases

import (
	"testing"

	"codecast/internal/block"
	"codecast/internal/timeline"
	"codecast/internal/timing"
)

func TestTailFramesClamped(t *testing.T) {
	s := timing.Default()
	tests := []struct {
		added int
		fps   int
		want  int
	}{
		{added: 0, fps: 30, want: 4},
		{added: 10, fps: 30, want: 4},
		{added: 100, fps: 30, want: 8},
		{added: 0, fps: 60, want: 7},
		{added: 20, fps: 60, want: 11},
	}
	for _, tt := range tests {
		if got := TailFrames(tt.added, tt.fps, s); got != tt.want {
			t.Fatalf("TailFrames(%d, %d) = %d want %d", tt.added, tt.fps, got, tt.want)
		}
	}
}

func TestAdjustFillsGaps(t *testing.T) {
	s := timing.Default()
	spans := []Span{
		{Start: 0, Duration: 10, AddedChars: 10, Code: true},
		{Start: 500, Duration: 10, AddedChars: 10, Code: true},
	}
	plan := Adjust(spans, 30, s, Options{FinalBonus: true})
	if plan.HighlightHold[0] != 485 {
		t.Fatalf("hold[0] = %d want 485", plan.HighlightHold[0])
	}
	if plan.Tail[0] != 5 {
		t.Fatalf("tail[0] = %d want 5", plan.Tail[0])
	}
	if plan.HighlightHold[1] != 5 || plan.Tail[1] != 6 {
		t.Fatalf("last block hold/tail = %d/%d want 5/6", plan.HighlightHold[1], plan.Tail[1])
	}
	if plan.ExtraFramesPerBlock != 11 {
		t.Fatalf("extra frames = %d want 11", plan.ExtraFramesPerBlock)
	}
}

func TestAdjustLeavesCoveredGapsAlone(t *testing.T) {
	spans := []Span{
		{Start: 0, Duration: 10, AddedChars: 10, Code: true},
		{Start: 12, Duration: 10, Code: true},
	}
	plan := Adjust(spans, 30, timing.Default(), Options{})
	if plan.HighlightHold[0] != 5 {
		t.Fatalf("hold[0] = %d want 5", plan.HighlightHold[0])
	}
	if plan.Tail[1] != 5 {
		t.Fatalf("no bonus without FinalBonus: tail = %d want 5", plan.Tail[1])
	}
}

func TestAdjustNonCodeBlocks(t *testing.T) {
	spans := []Span{
		{Start: 0, Duration: 90},
		{Start: 110, Duration: 30},
	}
	plan := Adjust(spans, 30, timing.Default(), Options{FinalBonus: true})
	if plan.HighlightHold[0] != 20 || plan.Tail[0] != 0 {
		t.Fatalf("cutaway hold/tail = %d/%d want 20/0", plan.HighlightHold[0], plan.Tail[0])
	}
	if plan.ExtraFramesPerBlock != 1 {
		t.Fatalf("extra frames = %d want 1", plan.ExtraFramesPerBlock)
	}
}

func TestAdjustEmpty(t *testing.T) {
	plan := Adjust(nil, 30, timing.Default(), Options{FinalBonus: true})
	if len(plan.HighlightHold) != 0 || plan.ExtraFramesPerBlock != 0 {
		t.Fatalf("unexpected plan for empty input: %+v", plan)
	}
}

func TestForTimelineCoversEveryGap(t *testing.T) {
	blocks := []block.Block{
		block.Code{Content: "a"},
		block.Image{Src: "/a"},
		block.Code{Content: "a\nbcdefghijklmnopqrstuvwxyz"},
		block.Console{Content: "ls"},
		block.Code{Content: "z"},
	}
	s := timing.Default()
	res := timeline.Compile(blocks, 60, s, timeline.Options{})
	plan := ForTimeline(res, 60, s)
	for i := 0; i+1 < len(res.Blocks); i++ {
		gap := res.Blocks[i+1].Start - res.Blocks[i].End()
		if plan.HighlightHold[i]+plan.Tail[i] < gap {
			t.Fatalf("block %d: hold %d + tail %d < gap %d", i, plan.HighlightHold[i], plan.Tail[i], gap)
		}
	}
	last := len(res.Blocks) - 1
	if plan.ExtraFramesPerBlock != plan.HighlightHold[last]+plan.Tail[last] {
		t.Fatalf("extra frames %d != final hold+tail", plan.ExtraFramesPerBlock)
	}
	if plan.HighlightHold[1] != 40 {
		t.Fatalf("image hold = %d want transition length 40", plan.HighlightHold[1])
	}
}
