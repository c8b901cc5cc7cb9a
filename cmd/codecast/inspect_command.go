package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"codecast/internal/block"
	"codecast/internal/timeline"
)

const titleWidth = 32

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var opts treeOptions

	cmd := &cobra.Command{
		Use:   "inspect TREE",
		Short: "Show the compiled timeline of a content tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			compiled, err := compileTree(ctx.runContext(cmd.Context()), cfg, args[0], opts, logger)
			if err != nil {
				return err
			}
			renderInspect(cmd.OutOrStdout(), compiled)
			return nil
		},
	}

	addTreeFlags(cmd, &opts)
	return cmd
}

func renderInspect(w io.Writer, compiled compiledTree) {
	doc := compiled.doc
	colorize := shouldColorize(w)

	for _, line := range renderSectionHeader(compiled.name(), colorize) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, renderStatusLine("Frame rate", statusInfo, fmt.Sprintf("%d fps", doc.FPS), colorize))
	fmt.Fprintln(w, renderStatusLine("Total", statusInfo, formatFrames(doc.TotalFrames, doc.FPS), colorize))
	fmt.Fprintln(w, renderStatusLine("Cut points", statusInfo, strconv.Itoa(len(doc.CutPoints)), colorize))
	fmt.Fprintln(w, renderStatusLine("Longest line", statusInfo,
		fmt.Sprintf("%d chars, %d lines max", doc.MaxLineLengthGlobal, doc.MaxLineCountGlobal), colorize))
	if n := len(compiled.tree.Skipped); n > 0 {
		fmt.Fprintln(w, renderStatusLine("Skipped", statusWarn, strings.Join(compiled.tree.Skipped, ", "), colorize))
	}
	fmt.Fprintln(w)

	var rows [][]string
	for i, meta := range doc.Blocks {
		hold, tail := "", ""
		if i < len(doc.PerBlockHighlightHoldFrames) {
			hold = strconv.Itoa(doc.PerBlockHighlightHoldFrames[i])
			tail = strconv.Itoa(doc.PerBlockTailFrames[i])
		}
		rows = append(rows, timelineRow(strconv.Itoa(i+1), meta, 0, hold, tail))
		rows = appendPaneRows(rows, strconv.Itoa(i+1), meta, meta.Start)
	}
	fmt.Fprintln(w, renderTable(
		[]string{"#", "Kind", "Title", "Start", "Duration", "End", "Added", "Hold", "Tail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight},
	))
}

// appendPaneRows lists nested pane blocks at absolute frames, numbered
// <layout>.<pane>.<block>.
func appendPaneRows(rows [][]string, prefix string, meta timeline.BlockMetadata, offset int) [][]string {
	for p, pane := range meta.Panes {
		for b, child := range pane.Blocks {
			label := fmt.Sprintf("%s.%d.%d", prefix, p+1, b+1)
			rows = append(rows, timelineRow(label, child, offset, "", ""))
			rows = appendPaneRows(rows, label, child, offset+child.Start)
		}
	}
	return rows
}

func timelineRow(label string, meta timeline.BlockMetadata, offset int, hold, tail string) []string {
	added := ""
	if meta.Kind() == block.KindCode {
		added = strconv.Itoa(meta.AddedChars)
	}
	return []string{
		label,
		kindLabel(meta.Kind()),
		truncate(block.Title(meta.Block), titleWidth),
		strconv.Itoa(offset + meta.Start),
		strconv.Itoa(meta.Duration),
		strconv.Itoa(offset + meta.End()),
		added,
		hold,
		tail,
	}
}

// kindLabel turns "cutaway-image" into "Cutaway Image".
func kindLabel(kind block.Kind) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(kind), "-", " "))
}

func formatFrames(frames, fps int) string {
	if fps <= 0 {
		return strconv.Itoa(frames) + " frames"
	}
	return fmt.Sprintf("%d frames (%.2fs)", frames, float64(frames)/float64(fps))
}

func truncate(s string, width int) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
