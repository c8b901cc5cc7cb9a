package config

import "codecast/internal/timing"

const (
	defaultConfigPath   = "~/.config/codecast/config.toml"
	projectConfigName   = "codecast.toml"
	metadataSuffix      = ".metadata.json"
	defaultFPS          = 60
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	envFPS              = "CODECAST_FPS"
	envTimingMultiplier = "CODECAST_TIMING_MULTIPLIER"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	t := timing.Default()
	return Config{
		Render: Render{
			FPS:         defaultFPS,
			Transitions: true,
		},
		Animation: Animation{
			TimingMultiplier:          t.TimingMultiplier,
			TransitionSeconds:         t.TransitionSeconds,
			SmallCharsThreshold:       t.SmallCharsThreshold,
			MinSmallSnippetSeconds:    t.MinSmallSnippetSeconds,
			SmallSecondsPerChar:       t.SmallSecondsPerChar,
			LargeSecondsPerChar:       t.LargeSecondsPerChar,
			MinLargeSnippetSeconds:    t.MinLargeSnippetSeconds,
			CodePreRollSeconds:        t.CodePreRollSeconds,
			TailHoldMinSeconds:        t.TailHoldMinSeconds,
			TailHoldMaxSeconds:        t.TailHoldMaxSeconds,
			TailHoldBaseSeconds:       t.TailHoldBaseSeconds,
			TailHoldSecondsPerChar:    t.TailHoldSecondsPerChar,
			LastBlockTailBonusSeconds: t.LastBlockTailBonusSeconds,
			TrimSafetySeconds:         t.TrimSafetySeconds,
		},
		Cutaways: Cutaways{
			ImageSeconds:          t.ImageSeconds,
			GifSeconds:            t.GifSeconds,
			VideoSeconds:          t.VideoSeconds,
			VideoPlayToEndSeconds: t.VideoPlayToEndSeconds,
			VideoLeadInSeconds:    t.VideoLeadInSeconds,
		},
		Console: Console{
			CommandCPS:              t.ConsoleCommandCPS,
			OutputCPS:               t.ConsoleOutputCPS,
			EnterDelaySeconds:       t.ConsoleEnterDelaySeconds,
			MinVisibleSeconds:       t.ConsoleMinVisibleSeconds,
			CommandOnlyTailSeconds:  t.ConsoleCommandOnlyTailSeconds,
			TailSeconds:             t.ConsoleTailSeconds,
			AppendTransitionSeconds: t.ConsoleAppendTransitionSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
