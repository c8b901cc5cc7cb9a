package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"codecast/internal/cutpoints"
)

type cutsOutput struct {
	FPS         int                `json:"fps"`
	TotalFrames int                `json:"totalFrames"`
	CutPoints   []int              `json:"cutPoints"`
	CutDetails  []cutpoints.Detail `json:"cutDetails"`
}

func newCutsCommand(ctx *commandContext) *cobra.Command {
	var opts treeOptions
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "cuts TREE",
		Short: "Print the cut points of a content tree",
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
			doc := compiled.doc

			if asJSON {
				return writeJSON(cmd, cutsOutput{
					FPS:         doc.FPS,
					TotalFrames: doc.TotalFrames,
					CutPoints:   nonNilInts(doc.CutPoints),
					CutDetails:  doc.CutDetails,
				})
			}

			w := cmd.OutOrStdout()
			points := make([]string, len(doc.CutPoints))
			for i, p := range doc.CutPoints {
				points[i] = strconv.Itoa(p)
			}
			fmt.Fprintf(w, "Cut points (%d): %s\n", len(points), strings.Join(points, " "))

			rows := make([][]string, 0, len(doc.CutDetails))
			for i, d := range doc.CutDetails {
				highlight := "-"
				if d.EndOfHighlight != nil {
					highlight = strconv.Itoa(*d.EndOfHighlight)
				}
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					kindLabel(d.Kind),
					strconv.Itoa(d.Start),
					highlight,
					strconv.Itoa(d.EndOfBlock),
					formatFrames(d.SequenceDuration, doc.FPS),
				})
			}
			fmt.Fprintln(w, renderTable(
				[]string{"#", "Kind", "Start", "Highlight End", "Block End", "Length"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	addTreeFlags(cmd, &opts)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func nonNilInts(values []int) []int {
	if values == nil {
		return []int{}
	}
	return values
}
