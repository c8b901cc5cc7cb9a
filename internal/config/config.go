package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"codecast/internal/timing"
)

//go:embed sample_config.toml
var sampleConfig string

// Render contains frame rate and output settings.
type Render struct {
	FPS              int    `toml:"fps"`
	OutputDir        string `toml:"output_dir"`
	GeneratorVersion string `toml:"generator_version"`
	InstantChanges   bool   `toml:"instant_changes"`
	Transitions      bool   `toml:"transitions"`
}

// Animation contains code typing and hold timings, in seconds.
type Animation struct {
	TimingMultiplier          float64 `toml:"timing_multiplier"`
	TransitionSeconds         float64 `toml:"transition_seconds"`
	SmallCharsThreshold       int     `toml:"small_chars_threshold"`
	MinSmallSnippetSeconds    float64 `toml:"min_small_snippet_seconds"`
	SmallSecondsPerChar       float64 `toml:"small_seconds_per_char"`
	LargeSecondsPerChar       float64 `toml:"large_seconds_per_char"`
	MinLargeSnippetSeconds    float64 `toml:"min_large_snippet_seconds"`
	CodePreRollSeconds        float64 `toml:"code_pre_roll_seconds"`
	TailHoldMinSeconds        float64 `toml:"tail_hold_min_seconds"`
	TailHoldMaxSeconds        float64 `toml:"tail_hold_max_seconds"`
	TailHoldBaseSeconds       float64 `toml:"tail_hold_base_seconds"`
	TailHoldSecondsPerChar    float64 `toml:"tail_hold_seconds_per_char"`
	LastBlockTailBonusSeconds float64 `toml:"last_block_tail_bonus_seconds"`
	TrimSafetySeconds         float64 `toml:"trim_safety_seconds"`
}

// Cutaways contains default media durations, in seconds.
type Cutaways struct {
	ImageSeconds          float64 `toml:"image_seconds"`
	GifSeconds            float64 `toml:"gif_seconds"`
	VideoSeconds          float64 `toml:"video_seconds"`
	VideoPlayToEndSeconds float64 `toml:"video_play_to_end_seconds"`
	VideoLeadInSeconds    float64 `toml:"video_lead_in_seconds"`
}

// Console contains terminal cutaway playback settings.
type Console struct {
	CommandCPS              float64 `toml:"command_cps"`
	OutputCPS               float64 `toml:"output_cps"`
	EnterDelaySeconds       float64 `toml:"enter_delay_seconds"`
	MinVisibleSeconds       float64 `toml:"min_visible_seconds"`
	CommandOnlyTailSeconds  float64 `toml:"command_only_tail_seconds"`
	TailSeconds             float64 `toml:"tail_seconds"`
	AppendTransitionSeconds float64 `toml:"append_transition_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Config encapsulates all configuration values for codecast.
//
// Configuration sections:
//   - Render: frame rate, output directory and document stamping
//   - Animation: code typing, hold and tail timings
//   - Cutaways: default media durations
//   - Console: terminal playback speeds
//   - Logging: log format, level and optional file
type Config struct {
	Render    Render    `toml:"render"`
	Animation Animation `toml:"animation"`
	Cutaways  Cutaways  `toml:"cutaways"`
	Console   Console   `toml:"console"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and environment overrides applied.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// Timing converts the animation, cutaway and console sections into
// calculator settings.
func (c *Config) Timing() timing.Settings {
	return timing.Settings{
		TimingMultiplier:   c.Animation.TimingMultiplier,
		InstantChanges:     c.Render.InstantChanges,
		TransitionSeconds:  c.Animation.TransitionSeconds,
		DisableTransitions: !c.Render.Transitions,

		SmallCharsThreshold:    c.Animation.SmallCharsThreshold,
		MinSmallSnippetSeconds: c.Animation.MinSmallSnippetSeconds,
		SmallSecondsPerChar:    c.Animation.SmallSecondsPerChar,
		LargeSecondsPerChar:    c.Animation.LargeSecondsPerChar,
		MinLargeSnippetSeconds: c.Animation.MinLargeSnippetSeconds,
		CodePreRollSeconds:     c.Animation.CodePreRollSeconds,

		TailHoldMinSeconds:        c.Animation.TailHoldMinSeconds,
		TailHoldMaxSeconds:        c.Animation.TailHoldMaxSeconds,
		TailHoldBaseSeconds:       c.Animation.TailHoldBaseSeconds,
		TailHoldSecondsPerChar:    c.Animation.TailHoldSecondsPerChar,
		LastBlockTailBonusSeconds: c.Animation.LastBlockTailBonusSeconds,
		TrimSafetySeconds:         c.Animation.TrimSafetySeconds,

		ImageSeconds:          c.Cutaways.ImageSeconds,
		GifSeconds:            c.Cutaways.GifSeconds,
		VideoSeconds:          c.Cutaways.VideoSeconds,
		VideoPlayToEndSeconds: c.Cutaways.VideoPlayToEndSeconds,
		VideoLeadInSeconds:    c.Cutaways.VideoLeadInSeconds,

		ConsoleCommandCPS:              c.Console.CommandCPS,
		ConsoleOutputCPS:               c.Console.OutputCPS,
		ConsoleEnterDelaySeconds:       c.Console.EnterDelaySeconds,
		ConsoleMinVisibleSeconds:       c.Console.MinVisibleSeconds,
		ConsoleCommandOnlyTailSeconds:  c.Console.CommandOnlyTailSeconds,
		ConsoleTailSeconds:             c.Console.TailSeconds,
		ConsoleAppendTransitionSeconds: c.Console.AppendTransitionSeconds,
	}
}

// OutputPathFor returns where the metadata document for a tree file is written.
// An empty output directory places it next to the tree.
func (c *Config) OutputPathFor(treePath string) string {
	base := filepath.Base(treePath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + metadataSuffix
	dir := c.Render.OutputDir
	if dir == "" {
		dir = filepath.Dir(treePath)
	}
	return filepath.Join(dir, name)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders the effective configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
