package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"codecast/internal/config"
	"codecast/internal/metadata"
)

const stdoutTarget = "-"

func newCompileCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var opts treeOptions

	cmd := &cobra.Command{
		Use:   "compile TREE...",
		Short: "Compile content trees into metadata documents",
		Long: "Compile each content tree (YAML or JSON) into a <name>.metadata.json document.\n" +
			"Trees are compiled concurrently. Use -o - to print a single document to stdout.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			target := strings.TrimSpace(outputDir)
			if target == stdoutTarget {
				if len(args) != 1 {
					return errors.New("-o - requires exactly one tree")
				}
				compiled, err := compileTree(ctx.runContext(cmd.Context()), cfg, args[0], opts, logger)
				if err != nil {
					return err
				}
				return compiled.doc.Encode(cmd.OutOrStdout())
			}

			effective := *cfg
			if target != "" {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve output directory: %w", err)
				}
				effective.Render.OutputDir = expanded
			}

			runCtx := ctx.runContext(cmd.Context())
			g, gctx := errgroup.WithContext(runCtx)
			g.SetLimit(runtime.NumCPU())
			results := make([]compiledTree, len(args))
			outputs := make([]string, len(args))
			for i, path := range args {
				g.Go(func() error {
					compiled, err := compileTree(gctx, &effective, path, opts, logger)
					if err != nil {
						return err
					}
					out := effective.OutputPathFor(path)
					if err := metadata.WriteFile(gctx, out, compiled.doc, logger); err != nil {
						return fmt.Errorf("%s: %w", filepath.Base(path), err)
					}
					results[i] = compiled
					outputs[i] = out
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			colorize := shouldColorize(w)
			for i, compiled := range results {
				message := fmt.Sprintf("%d frames @ %d fps -> %s", compiled.doc.TotalFrames, compiled.fps, outputs[i])
				kind := statusOK
				if len(compiled.tree.Skipped) > 0 {
					kind = statusWarn
					message += fmt.Sprintf(" (%d blocks skipped)", len(compiled.tree.Skipped))
				}
				fmt.Fprintln(w, renderStatusLine(compiled.name(), kind, message, colorize))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default render.output_dir, else next to each tree; - for stdout)")
	addTreeFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.noCuts, "no-cuts", false, "Leave cutPoints and cutDetails out of the document")
	return cmd
}

func addTreeFlags(cmd *cobra.Command, opts *treeOptions) {
	cmd.Flags().IntVar(&opts.fps, "fps", 0, "Frame rate (default: tree fps, else render.fps)")
	cmd.Flags().BoolVar(&opts.instant, "instant", false, "Collapse code typing to a single frame")
	cmd.Flags().BoolVar(&opts.lenient, "lenient", false, "Skip blocks with an unknown type instead of failing")
}
