// Package config loads, normalizes, and validates codecast configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the CODECAST_FPS and
// CODECAST_TIMING_MULTIPLIER environment overrides. Timing tunables are
// converted into timing.Settings through Config.Timing so the calculators
// never read TOML directly.
package config
