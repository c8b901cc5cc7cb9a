package textdiff

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/text/unicode/norm"
)

// Op classifies a diff run.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

// Run is a contiguous span of a character diff.
type Run struct {
	Op   Op
	Text string
}

// Len returns the run length in characters.
func (r Run) Len() int { return utf8.RuneCountInString(r.Text) }

// Diff computes a character-level diff from before to after. Both inputs are
// NFC-normalized first so composed and decomposed spellings compare equal.
// The result does not depend on wall-clock time.
func Diff(before, after string) []Run {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	diffs := dmp.DiffMain(norm.NFC.String(before), norm.NFC.String(after), false)

	runs := make([]Run, 0, len(diffs))
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = Insert
		case diffmatchpatch.DiffDelete:
			op = Delete
		default:
			op = Equal
		}
		runs = append(runs, Run{Op: op, Text: d.Text})
	}
	return runs
}

// AddedChars returns the total length of inserted runs between before and
// after. Removed characters are not counted.
func AddedChars(before, after string) int {
	if before == after {
		return 0
	}
	if before == "" {
		return utf8.RuneCountInString(norm.NFC.String(after))
	}
	total := 0
	for _, run := range Diff(before, after) {
		if run.Op == Insert {
			total += run.Len()
		}
	}
	return total
}
