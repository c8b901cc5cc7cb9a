package timeline_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"codecast/internal/block"
	"codecast/internal/timeline"
	"codecast/internal/timing"
)

func seconds(v float64) *float64 { return &v }

func code(content string) block.Code {
	return block.Code{Language: "ts", Content: content}
}

func image(secs float64) block.Image {
	return block.Image{Src: "/img.png", Cutaway: block.Cutaway{DurationSeconds: seconds(secs)}}
}

func TestCompileGrowingSnippets(t *testing.T) {
	res := timeline.Compile([]block.Block{code("a"), code("ab"), code("abc")}, 60, timing.Default(), timeline.Options{})

	if len(res.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(res.Blocks))
	}
	b := res.Blocks
	if b[0].Start != 0 {
		t.Fatalf("first start = %d want 0", b[0].Start)
	}
	if b[0].Duration <= 0 {
		t.Fatalf("first duration = %d want > 0", b[0].Duration)
	}
	if b[1].Start <= b[0].Start {
		t.Fatalf("second start %d not after first %d", b[1].Start, b[0].Start)
	}
	if res.TotalFrames <= b[2].Start+b[2].Duration {
		t.Fatalf("total %d must exceed last end %d", res.TotalFrames, b[2].End())
	}
	for i, meta := range b {
		if meta.AddedChars != 1 {
			t.Fatalf("block %d addedChars = %d want 1", i, meta.AddedChars)
		}
	}
	wantStarts := []int{0, 45, 90}
	for i, want := range wantStarts {
		if b[i].Start != want {
			t.Fatalf("block %d start = %d want %d", i, b[i].Start, want)
		}
	}
	if res.TotalFrames != 135 {
		t.Fatalf("total = %d want 135", res.TotalFrames)
	}
}

func TestCompileLayoutTakesLongestPane(t *testing.T) {
	layout := block.Layout{Direction: "row", Panes: []block.Pane{
		{Blocks: []block.Block{image(1.0)}},
		{Blocks: []block.Block{image(2.5)}},
	}}
	res := timeline.Compile([]block.Block{layout}, 60, timing.Default(), timeline.Options{})
	meta := res.Blocks[0]
	if len(meta.Panes) != 2 {
		t.Fatalf("expected 2 panes, got %d", len(meta.Panes))
	}
	if meta.Panes[0].TotalFrames != 100 || meta.Panes[1].TotalFrames != 190 {
		t.Fatalf("pane totals = %d, %d want 100, 190", meta.Panes[0].TotalFrames, meta.Panes[1].TotalFrames)
	}
	if meta.Duration != 190 {
		t.Fatalf("layout duration = %d want 190", meta.Duration)
	}
	if res.TotalFrames != 230 {
		t.Fatalf("total = %d want 230", res.TotalFrames)
	}
}

func TestCompileEmptyLayout(t *testing.T) {
	res := timeline.Compile([]block.Block{block.Layout{}}, 30, timing.Default(), timeline.Options{})
	if res.Blocks[0].Duration != 0 {
		t.Fatalf("empty layout duration = %d want 0", res.Blocks[0].Duration)
	}
}

func TestCompileBaselineResets(t *testing.T) {
	blocks := []block.Block{
		block.Code{Language: "js", Title: "a.js", Content: "abc"},
		block.Code{Language: "js", Title: "b.js", Content: "abc"},
		block.Code{Language: "js", Title: "b.js", Content: "abcd", StartFromBlank: true},
		block.Code{Language: "js", Title: "b.js", Content: "abcde"},
	}
	res := timeline.Compile(blocks, 60, timing.Default(), timeline.Options{})
	want := []int{3, 3, 4, 1}
	for i, w := range want {
		if got := res.Blocks[i].AddedChars; got != w {
			t.Fatalf("block %d addedChars = %d want %d", i, got, w)
		}
	}
}

func TestCompilePaneStateIsIsolated(t *testing.T) {
	layout := block.Layout{Panes: []block.Pane{
		{Blocks: []block.Block{code("a"), code("ab")}},
		{Blocks: []block.Block{code("abc")}},
	}}
	blocks := []block.Block{code("x"), image(1), layout, code("xy")}
	res := timeline.Compile(blocks, 60, timing.Default(), timeline.Options{})

	panes := res.Blocks[2].Panes
	if panes[0].Blocks[0].Start != 0 || panes[1].Blocks[0].Start != 0 {
		t.Fatal("every pane must start at frame 0")
	}
	if panes[0].Blocks[1].AddedChars != 1 {
		t.Fatalf("pane 0 second snippet addedChars = %d want 1", panes[0].Blocks[1].AddedChars)
	}
	if panes[1].Blocks[0].AddedChars != 3 {
		t.Fatalf("pane 1 must not see pane 0 content: addedChars = %d", panes[1].Blocks[0].AddedChars)
	}
	if res.Blocks[3].AddedChars != 1 {
		t.Fatalf("top level baseline must skip nested code: addedChars = %d", res.Blocks[3].AddedChars)
	}
}

func TestCompileStartsAreMonotonic(t *testing.T) {
	blocks := []block.Block{
		code("fmt.Println(1)"),
		block.Console{Content: "go run .\n1"},
		block.Video{Src: "/v.mp4"},
		code("fmt.Println(1)\nfmt.Println(2)"),
		block.Gif{Src: "/g.gif"},
	}
	res := timeline.Compile(blocks, 30, timing.Default(), timeline.Options{})
	for i := 1; i < len(res.Blocks); i++ {
		prev := res.Blocks[i-1]
		if res.Blocks[i].Start < prev.Start+prev.Duration {
			t.Fatalf("block %d starts at %d before previous end %d", i, res.Blocks[i].Start, prev.End())
		}
	}
}

func TestCompileConsoleAppendChain(t *testing.T) {
	blocks := []block.Block{
		block.Console{Content: "echo 1"},
		block.Console{Content: "echo 2", Append: true},
		block.Console{Content: "echo 3", Append: true},
	}
	res := timeline.Compile(blocks, 30, timing.Default(), timeline.Options{})
	for i := 1; i < 3; i++ {
		prev := res.Blocks[i-1]
		gap := res.Blocks[i].Start - prev.End()
		if gap > 8 {
			t.Fatalf("gap before console %d = %d want <= 8", i, gap)
		}
	}
	if last := res.Blocks[2]; last.Transition != timing.Default().Transition(30) {
		t.Fatalf("last console keeps the full transition, got %d", last.Transition)
	}
}

func TestCompileInstantOption(t *testing.T) {
	blocks := []block.Block{code("abcdef"), code("abcdefgh")}
	res := timeline.Compile(blocks, 60, timing.Default(), timeline.Options{Instant: true})
	for i, meta := range res.Blocks {
		if meta.Duration > 1 {
			t.Fatalf("instant block %d duration = %d want <= 1", i, meta.Duration)
		}
	}
}

func TestCompilePreRollCountsTowardCursor(t *testing.T) {
	s := timing.Default()
	s.CodePreRollSeconds = 0.5
	res := timeline.Compile([]block.Block{code("a"), image(1)}, 60, s, timeline.Options{})
	if res.Blocks[0].Start != 30 || res.Blocks[0].PreRoll != 30 {
		t.Fatalf("code start = %d preRoll = %d want 30/30", res.Blocks[0].Start, res.Blocks[0].PreRoll)
	}
	if res.Blocks[1].Start != 30+5+40 {
		t.Fatalf("image start = %d want %d", res.Blocks[1].Start, 30+5+40)
	}
}

func TestCompileLineStats(t *testing.T) {
	layout := block.Layout{Panes: []block.Pane{{Blocks: []block.Block{code("1\n2\n3\n4")}}}}
	blocks := []block.Block{code("short\n" + strings.Repeat("w", 40)), layout, block.Console{Content: strings.Repeat("z", 200)}}
	res := timeline.Compile(blocks, 30, timing.Default(), timeline.Options{})
	if res.MaxLineLength != 40 {
		t.Fatalf("max line length = %d want 40", res.MaxLineLength)
	}
	if res.MaxLineCount != 4 {
		t.Fatalf("max line count = %d want 4", res.MaxLineCount)
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	blocks := []block.Block{
		code("package main"),
		block.Layout{Panes: []block.Pane{
			{Blocks: []block.Block{code("a"), block.Console{Content: "ls\nx"}}},
			{Blocks: []block.Block{block.Video{Src: "/v", PlayToEnd: true}}},
		}},
		code("package main\n\nfunc main() {}"),
	}
	first := timeline.Compile(blocks, 60, timing.Default(), timeline.Options{})
	second := timeline.Compile(blocks, 60, timing.Default(), timeline.Options{})
	if !reflect.DeepEqual(first, second) {
		t.Fatal("compilation is not deterministic")
	}
}

func TestBlockMetadataJSON(t *testing.T) {
	layout := block.Layout{Direction: "row", Panes: []block.Pane{{Blocks: []block.Block{image(1)}}}}
	res := timeline.Compile([]block.Block{code("ab"), layout}, 30, timing.Default(), timeline.Options{})
	data, err := json.Marshal(res.Blocks)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded[0]["type"] != "code" || decoded[0]["content"] != "ab" || decoded[0]["addedChars"] != float64(2) {
		t.Fatalf("unexpected code json: %v", decoded[0])
	}
	if _, ok := decoded[0]["panes"]; ok {
		t.Fatal("code json must not carry panes")
	}
	if decoded[1]["type"] != "layout-split" {
		t.Fatalf("unexpected layout json: %v", decoded[1])
	}
	panes, ok := decoded[1]["panes"].([]any)
	if !ok || len(panes) != 1 {
		t.Fatalf("expected one pane, got %v", decoded[1]["panes"])
	}
	pane := panes[0].(map[string]any)
	if pane["totalFrames"] != float64(30+20) {
		t.Fatalf("pane totalFrames = %v want 50", pane["totalFrames"])
	}
	if _, ok := decoded[1]["addedChars"]; ok {
		t.Fatal("layout json must not carry addedChars")
	}
}

func TestBlockJSONKeysSorted(t *testing.T) {
	res := timeline.Compile([]block.Block{code("abc")}, 30, timing.Default(), timeline.Options{})
	data, err := json.Marshal(res.Blocks[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(data)
	keys := []string{`"addedChars"`, `"content"`, `"duration"`, `"language"`, `"start"`, `"type"`}
	last := -1
	for _, key := range keys {
		idx := strings.Index(got, key)
		if idx < 0 {
			t.Fatalf("missing %s in %s", key, got)
		}
		if idx < last {
			t.Fatalf("key %s out of order in %s", key, got)
		}
		last = idx
	}
}
