package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"codecast/internal/block"
	"codecast/internal/config"
	"codecast/internal/logging"
	"codecast/internal/metadata"
)

// treeOptions carries the per-invocation knobs shared by compile, cuts and inspect.
type treeOptions struct {
	fps     int
	instant bool
	noCuts  bool
	lenient bool
}

// compiledTree is one tree file taken through decoding and document generation.
type compiledTree struct {
	path string
	tree *block.Tree
	fps  int
	doc  *metadata.Document
}

func (t compiledTree) name() string {
	if title := strings.TrimSpace(t.tree.Title); title != "" {
		return title
	}
	return filepath.Base(t.path)
}

// resolveFPS picks the frame rate: an explicit flag wins over the tree header,
// which wins over render.fps.
func resolveFPS(flagFPS int, tree *block.Tree, cfg *config.Config) (int, error) {
	switch {
	case flagFPS < 0:
		return 0, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	case flagFPS > 0:
		return flagFPS, nil
	case tree != nil && tree.FPS > 0:
		return tree.FPS, nil
	case tree != nil && tree.FPS < 0:
		return 0, fmt.Errorf("tree fps must be positive, got %d", tree.FPS)
	default:
		return cfg.Render.FPS, nil
	}
}

func compileTree(ctx context.Context, cfg *config.Config, path string, opts treeOptions, logger *slog.Logger) (compiledTree, error) {
	logger = logging.WithContext(logging.WithSourceFile(ctx, path), logging.NewComponentLogger(logger, "compile"))
	if err := ctx.Err(); err != nil {
		return compiledTree{}, err
	}
	if strings.TrimSpace(path) == "" {
		return compiledTree{}, errors.New("tree path is required")
	}

	tree, err := block.LoadFile(path, block.DecodeOptions{Lenient: opts.lenient})
	if err != nil {
		return compiledTree{}, err
	}
	if len(tree.Skipped) > 0 {
		logger.Warn("skipped unrecognized blocks",
			logging.Int("count", len(tree.Skipped)),
			logging.String("paths", strings.Join(tree.Skipped, ", ")),
		)
	}

	fps, err := resolveFPS(opts.fps, tree, cfg)
	if err != nil {
		return compiledTree{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	doc, err := metadata.Generate(tree.Blocks, fps, cfg.Timing(), metadata.Options{
		Instant:          opts.instant || cfg.Render.InstantChanges,
		SkipCuts:         opts.noCuts,
		GeneratorVersion: cfg.Render.GeneratorVersion,
	})
	if err != nil {
		return compiledTree{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	logger.Debug("compiled tree",
		logging.Int("fps", fps),
		logging.Int("blocks", len(tree.Blocks)),
		logging.Int("total_frames", doc.TotalFrames),
	)
	return compiledTree{path: path, tree: tree, fps: fps, doc: doc}, nil
}
