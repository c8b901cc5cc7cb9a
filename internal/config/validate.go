package config

import (
	"errors"
	"fmt"
	"sort"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateAnimation(); err != nil {
		return err
	}
	if err := c.validateCutaways(); err != nil {
		return err
	}
	if err := c.validateConsole(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateRender() error {
	if c.Render.FPS <= 0 {
		return errors.New("render.fps must be positive")
	}
	return nil
}

func (c *Config) validateAnimation() error {
	a := c.Animation
	if a.SmallCharsThreshold < 0 {
		return errors.New("animation.small_chars_threshold must not be negative")
	}
	if err := ensureNonNegativeMap(map[string]float64{
		"animation.transition_seconds":            a.TransitionSeconds,
		"animation.min_small_snippet_seconds":     a.MinSmallSnippetSeconds,
		"animation.small_seconds_per_char":        a.SmallSecondsPerChar,
		"animation.large_seconds_per_char":        a.LargeSecondsPerChar,
		"animation.min_large_snippet_seconds":     a.MinLargeSnippetSeconds,
		"animation.code_pre_roll_seconds":         a.CodePreRollSeconds,
		"animation.tail_hold_min_seconds":         a.TailHoldMinSeconds,
		"animation.tail_hold_max_seconds":         a.TailHoldMaxSeconds,
		"animation.tail_hold_base_seconds":        a.TailHoldBaseSeconds,
		"animation.tail_hold_seconds_per_char":    a.TailHoldSecondsPerChar,
		"animation.last_block_tail_bonus_seconds": a.LastBlockTailBonusSeconds,
		"animation.trim_safety_seconds":           a.TrimSafetySeconds,
	}); err != nil {
		return err
	}
	if a.TailHoldMaxSeconds < a.TailHoldMinSeconds {
		return errors.New("animation.tail_hold_max_seconds must be at least animation.tail_hold_min_seconds")
	}
	return nil
}

func (c *Config) validateCutaways() error {
	return ensureNonNegativeMap(map[string]float64{
		"cutaways.image_seconds":             c.Cutaways.ImageSeconds,
		"cutaways.gif_seconds":               c.Cutaways.GifSeconds,
		"cutaways.video_seconds":             c.Cutaways.VideoSeconds,
		"cutaways.video_play_to_end_seconds": c.Cutaways.VideoPlayToEndSeconds,
		"cutaways.video_lead_in_seconds":     c.Cutaways.VideoLeadInSeconds,
	})
}

func (c *Config) validateConsole() error {
	if c.Console.CommandCPS <= 0 {
		return errors.New("console.command_cps must be positive")
	}
	if c.Console.OutputCPS <= 0 {
		return errors.New("console.output_cps must be positive")
	}
	return ensureNonNegativeMap(map[string]float64{
		"console.enter_delay_seconds":       c.Console.EnterDelaySeconds,
		"console.min_visible_seconds":       c.Console.MinVisibleSeconds,
		"console.command_only_tail_seconds": c.Console.CommandOnlyTailSeconds,
		"console.tail_seconds":              c.Console.TailSeconds,
		"console.append_transition_seconds": c.Console.AppendTransitionSeconds,
	})
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
}

func ensureNonNegativeMap(values map[string]float64) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if values[key] < 0 {
			return fmt.Errorf("%s must not be negative", key)
		}
	}
	return nil
}
