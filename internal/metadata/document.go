package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"codecast/internal/block"
	"codecast/internal/cutpoints"
	"codecast/internal/phases"
	"codecast/internal/timeline"
	"codecast/internal/timing"
)

// SpecVersion identifies the document layout.
const SpecVersion = "v0"

// GeneratorVersion is stamped into every document. Release builds override
// it with -ldflags "-X codecast/internal/metadata.GeneratorVersion=...".
var GeneratorVersion = "0.0.0"

// Document is the single artifact handed to the renderer and trimmer.
type Document struct {
	Blocks                      []timeline.BlockMetadata `json:"blocks"`
	TotalFrames                 int                      `json:"totalFrames"`
	MaxLineLengthGlobal         int                      `json:"maxLineLengthGlobal"`
	MaxLineCountGlobal          int                      `json:"maxLineCountGlobal"`
	FPS                         int                      `json:"fps"`
	ExtraFramesPerBlock         int                      `json:"extraFramesPerBlock"`
	TrimSafetyFrames            int                      `json:"trimSafetyFrames"`
	PerBlockHighlightHoldFrames []int                    `json:"perBlockHighlightHoldFrames"`
	PerBlockTailFrames          []int                    `json:"perBlockTailFrames"`
	CutPoints                   []int                    `json:"cutPoints,omitempty"`
	CutDetails                  []cutpoints.Detail       `json:"cutDetails,omitempty"`
	SpecVersion                 string                   `json:"specVersion"`
	GeneratorVersion            string                   `json:"generatorVersion"`
}

// Options controls document generation.
type Options struct {
	// Instant compiles code typing as a single frame. Only Generate reads it.
	Instant bool
	// SkipCuts leaves cutPoints and cutDetails out of the document.
	SkipCuts bool
	// GeneratorVersion overrides the build's version stamp when non-empty.
	GeneratorVersion string
}

// Generate compiles blocks and assembles the full document.
func Generate(blocks []block.Block, fps int, s timing.Settings, opts Options) (*Document, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", fps)
	}
	res := timeline.Compile(blocks, fps, s, timeline.Options{Instant: opts.Instant})
	return Build(res, fps, s, opts), nil
}

// Build assembles a document from an already compiled timeline. Durations
// are taken from res, so opts.Instant has no effect here.
func Build(res timeline.Result, fps int, s timing.Settings, opts Options) *Document {
	plan := phases.ForTimeline(res, fps, s)
	doc := &Document{
		Blocks:                      res.Blocks,
		TotalFrames:                 res.TotalFrames,
		MaxLineLengthGlobal:         res.MaxLineLength,
		MaxLineCountGlobal:          res.MaxLineCount,
		FPS:                         fps,
		ExtraFramesPerBlock:         plan.ExtraFramesPerBlock,
		TrimSafetyFrames:            s.TrimSafety(fps),
		PerBlockHighlightHoldFrames: plan.HighlightHold,
		PerBlockTailFrames:          plan.Tail,
		SpecVersion:                 SpecVersion,
		GeneratorVersion:            GeneratorVersion,
	}
	if v := strings.TrimSpace(opts.GeneratorVersion); v != "" {
		doc.GeneratorVersion = v
	}
	if !opts.SkipCuts {
		cuts := cutpoints.Extract(res, fps, s)
		doc.CutPoints = cuts.Points
		doc.CutDetails = cuts.Details
	}
	return doc
}

// Encode writes the document as indented JSON.
func (d *Document) Encode(w io.Writer) error {
	if d == nil {
		return errors.New("encode metadata: nil document")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	return nil
}
