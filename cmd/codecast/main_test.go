package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codecast/internal/config"
	"codecast/internal/testsupport"
)

const threeStepTree = `
title: Growing
blocks:
  - type: code
    language: go
    content: a
  - type: code
    language: go
    content: ab
  - type: code
    language: go
    content: abc
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runCLIWithConfig(t, testsupport.NewConfig(t), args...)
}

func runCLIWithConfig(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", testsupport.WriteConfig(t, cfg)}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

type documentView struct {
	FPS              int    `json:"fps"`
	TotalFrames      int    `json:"totalFrames"`
	CutPoints        []int  `json:"cutPoints"`
	SpecVersion      string `json:"specVersion"`
	GeneratorVersion string `json:"generatorVersion"`
	Blocks           []struct {
		Type     string `json:"type"`
		Start    int    `json:"start"`
		Duration int    `json:"duration"`
	} `json:"blocks"`
}

func TestCompileWritesMetadataDocument(t *testing.T) {
	tree := testsupport.WriteTree(t, "growing.yaml", threeStepTree)
	outDir := filepath.Join(t.TempDir(), "out")

	stdout, err := runCLI(t, "compile", tree, "-o", outDir, "--fps", "60")
	if err != nil {
		t.Fatalf("compile returned error: %v", err)
	}
	if !strings.Contains(stdout, "[OK] 135 frames @ 60 fps") {
		t.Fatalf("unexpected summary %q", stdout)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "growing.metadata.json"))
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	var doc documentView
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if doc.TotalFrames != 135 || doc.FPS != 60 || doc.SpecVersion != "v0" {
		t.Fatalf("unexpected document header: %+v", doc)
	}
	want := []int{0, 36, 45, 81, 90, 104, 135}
	if !equalInts(doc.CutPoints, want) {
		t.Fatalf("cut points: got %v want %v", doc.CutPoints, want)
	}
	if len(doc.Blocks) != 3 || doc.Blocks[1].Start != 45 || doc.Blocks[2].Type != "code" {
		t.Fatalf("unexpected blocks: %+v", doc.Blocks)
	}
}

func TestCompileSeveralTrees(t *testing.T) {
	first := testsupport.WriteTree(t, "one.yaml", threeStepTree)
	second := testsupport.WriteTree(t, "two.json", `[{"type":"cutaway-image","src":"/a.png","durationSeconds":1}]`)
	outDir := t.TempDir()

	if _, err := runCLI(t, "compile", first, second, "-o", outDir, "--no-cuts"); err != nil {
		t.Fatalf("compile returned error: %v", err)
	}
	for _, name := range []string{"one.metadata.json", "two.metadata.json"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if strings.Contains(string(data), "cutPoints") {
			t.Fatalf("%s: expected no cut points with --no-cuts", name)
		}
	}
}

func TestCompileUsesConfiguredOutputDir(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithFPS(30), testsupport.WithLogFile("compile.log"))
	cfg.Logging.Level = "debug"
	tree := testsupport.WriteTree(t, "growing.yaml", threeStepTree)

	if _, err := runCLIWithConfig(t, cfg, "compile", tree); err != nil {
		t.Fatalf("compile returned error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(cfg.Render.OutputDir, "growing.metadata.json"))
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	var doc documentView
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if doc.FPS != 30 {
		t.Fatalf("expected render.fps 30, got %d", doc.FPS)
	}

	logs, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	for _, want := range []string{"compile: compiled tree [growing.yaml]", "metadata: metadata written", "correlation_id="} {
		if !strings.Contains(string(logs), want) {
			t.Fatalf("expected %q in logs:\n%s", want, logs)
		}
	}
}

func TestCompileToStdoutUsesTreeFPS(t *testing.T) {
	tree := testsupport.WriteTree(t, "intro.yaml", "fps: 30\n"+threeStepTree)

	stdout, err := runCLI(t, "compile", tree, "-o", "-", "--instant")
	if err != nil {
		t.Fatalf("compile returned error: %v", err)
	}
	var doc documentView
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("decode stdout document: %v\n%s", err, stdout)
	}
	if doc.FPS != 30 {
		t.Fatalf("expected tree fps 30, got %d", doc.FPS)
	}
	for i, b := range doc.Blocks {
		if b.Duration > 1 {
			t.Fatalf("--instant block %d: got duration %d want <= 1", i, b.Duration)
		}
	}

	other := testsupport.WriteTree(t, "other.yaml", threeStepTree)
	if _, err := runCLI(t, "compile", tree, other, "-o", "-"); err == nil {
		t.Fatal("expected error for stdout output with two trees")
	}
}

func TestCompileUnknownBlockType(t *testing.T) {
	tree := testsupport.WriteTree(t, "odd.yaml", threeStepTree+"  - type: hologram\n")
	outDir := t.TempDir()

	if _, err := runCLI(t, "compile", tree, "-o", outDir); err == nil || !strings.Contains(err.Error(), "hologram") {
		t.Fatalf("expected unknown block error, got %v", err)
	}
	stdout, err := runCLI(t, "compile", tree, "-o", outDir, "--lenient")
	if err != nil {
		t.Fatalf("lenient compile returned error: %v", err)
	}
	if !strings.Contains(stdout, "[WARN]") || !strings.Contains(stdout, "1 blocks skipped") {
		t.Fatalf("expected skipped warning, got %q", stdout)
	}
}

func TestCutsJSON(t *testing.T) {
	tree := testsupport.WriteTree(t, "growing.yaml", threeStepTree)

	stdout, err := runCLI(t, "cuts", tree, "--json", "--fps", "60")
	if err != nil {
		t.Fatalf("cuts returned error: %v", err)
	}
	var out cutsOutput
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("decode cuts: %v", err)
	}
	if out.TotalFrames != 135 || len(out.CutDetails) != 3 {
		t.Fatalf("unexpected cuts output: %+v", out)
	}
	if out.CutDetails[0].EndOfHighlight == nil || *out.CutDetails[0].EndOfHighlight != 36 {
		t.Fatalf("unexpected first detail: %+v", out.CutDetails[0])
	}

	text, err := runCLI(t, "cuts", tree, "--fps", "60")
	if err != nil {
		t.Fatalf("cuts returned error: %v", err)
	}
	if !strings.Contains(text, "Cut points (7): 0 36 45 81 90 104 135") {
		t.Fatalf("unexpected cuts text:\n%s", text)
	}
}

func TestInspectListsNestedPanes(t *testing.T) {
	tree := testsupport.WriteTree(t, "layout.yaml", `
title: Side by side
fps: 60
blocks:
  - type: layout-split
    panes:
      - blocks:
          - type: cutaway-image
            title: Diagram
            src: /a.png
            durationSeconds: 1
      - blocks:
          - type: code
            content: fmt.Println("hi")
`)
	stdout, err := runCLI(t, "inspect", tree)
	if err != nil {
		t.Fatalf("inspect returned error: %v", err)
	}
	for _, want := range []string{"== Side by side ==", "Layout Split", "Cutaway Image", "1.1.1", "1.2.1", "Diagram"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in inspect output:\n%s", want, stdout)
		}
	}
}

func TestConfigInitShowValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codecast.toml")

	stdout, err := runCLI(t, "config", "init", "--path", path)
	if err != nil {
		t.Fatalf("config init returned error: %v", err)
	}
	if !strings.Contains(stdout, path) {
		t.Fatalf("unexpected init output %q", stdout)
	}
	if _, err := runCLI(t, "config", "init", "--path", path); err == nil {
		t.Fatal("expected error when config already exists")
	}

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "config", "show"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config show returned error: %v", err)
	}
	if !strings.Contains(out.String(), "[animation]") || !strings.Contains(out.String(), "timing_multiplier = 0.3") {
		t.Fatalf("unexpected config show output:\n%s", out.String())
	}

	stdout, err = runCLIWithConfig(t, testsupport.NewConfig(t, testsupport.WithFPS(24)), "config", "validate")
	if err != nil {
		t.Fatalf("config validate returned error: %v", err)
	}
	if !strings.Contains(stdout, "Frame rate: 24 fps") || !strings.Contains(stdout, "Configuration valid") {
		t.Fatalf("unexpected validate output %q", stdout)
	}

	cmd = newRootCommand()
	out.Reset()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "absent.toml"), "config", "validate"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config validate returned error: %v", err)
	}
	if !strings.Contains(out.String(), "defaults were used") {
		t.Fatalf("expected defaults notice, got %q", out.String())
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
