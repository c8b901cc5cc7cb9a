package textdiff

import (
	"strings"
	"testing"
)

func TestAddedChars(t *testing.T) {
	tests := []struct {
		name   string
		before string
		after  string
		want   int
	}{
		{name: "identical", before: "abc", after: "abc", want: 0},
		{name: "from blank", before: "", after: "abc", want: 3},
		{name: "append", before: "ab", after: "abc", want: 1},
		{name: "prepend", before: "bc", after: "abc", want: 1},
		{name: "removal only", before: "abcdef", after: "abc", want: 0},
		{name: "replace", before: "cat", after: "cut", want: 1},
		{name: "multibyte", before: "", after: "héllo→", want: 6},
		{name: "decomposed equals composed", before: "e\u0301", after: "\u00e9", want: 0},
	}
	for _, tt := range tests {
		if got := AddedChars(tt.before, tt.after); got != tt.want {
			t.Fatalf("%s: AddedChars(%q, %q) = %d want %d", tt.name, tt.before, tt.after, got, tt.want)
		}
	}
}

func TestAddedCharsPureAppendIsSuffixLength(t *testing.T) {
	base := "func main() {\n"
	for _, suffix := range []string{"x", "\tfmt.Println(1)\n", strings.Repeat("y", 500)} {
		if got := AddedChars(base, base+suffix); got != len(suffix) {
			t.Fatalf("append %d chars: got %d", len(suffix), got)
		}
	}
}

func TestDiffRunsReassemble(t *testing.T) {
	before, after := "hello world", "hello brave new world"
	var rebuiltBefore, rebuiltAfter strings.Builder
	for _, run := range Diff(before, after) {
		if run.Op != Insert {
			rebuiltBefore.WriteString(run.Text)
		}
		if run.Op != Delete {
			rebuiltAfter.WriteString(run.Text)
		}
	}
	if rebuiltBefore.String() != before || rebuiltAfter.String() != after {
		t.Fatalf("runs do not reassemble: %q / %q", rebuiltBefore.String(), rebuiltAfter.String())
	}
}
