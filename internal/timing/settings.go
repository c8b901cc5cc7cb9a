package timing

// Settings holds every tunable that shapes the timeline. Durations are in
// seconds; the calculators convert to frames for a given frame rate.
type Settings struct {
	// TimingMultiplier scales code typing and hold phases. Non-positive values act as 1.
	TimingMultiplier float64
	// InstantChanges collapses code typing to a near-zero duration.
	InstantChanges bool

	TransitionSeconds  float64
	DisableTransitions bool

	SmallCharsThreshold    int
	MinSmallSnippetSeconds float64
	SmallSecondsPerChar    float64
	LargeSecondsPerChar    float64
	MinLargeSnippetSeconds float64
	CodePreRollSeconds     float64

	TailHoldMinSeconds        float64
	TailHoldMaxSeconds        float64
	TailHoldBaseSeconds       float64
	TailHoldSecondsPerChar    float64
	LastBlockTailBonusSeconds float64
	TrimSafetySeconds         float64

	ImageSeconds          float64
	GifSeconds            float64
	VideoSeconds          float64
	VideoPlayToEndSeconds float64
	VideoLeadInSeconds    float64

	ConsoleCommandCPS              float64
	ConsoleOutputCPS               float64
	ConsoleEnterDelaySeconds       float64
	ConsoleMinVisibleSeconds       float64
	ConsoleCommandOnlyTailSeconds  float64
	ConsoleTailSeconds             float64
	ConsoleAppendTransitionSeconds float64
}

// Default returns the stock animation timings.
func Default() Settings {
	return Settings{
		TimingMultiplier:  0.3,
		TransitionSeconds: 0.67,

		SmallCharsThreshold:    12,
		MinSmallSnippetSeconds: 0.27,
		SmallSecondsPerChar:    1.0 / 30,
		LargeSecondsPerChar:    0.3 / 30,
		MinLargeSnippetSeconds: 0.67,

		TailHoldMinSeconds:        0.4,
		TailHoldMaxSeconds:        0.93,
		TailHoldBaseSeconds:       8.0 / 30,
		TailHoldSecondsPerChar:    0.5 / 30,
		LastBlockTailBonusSeconds: 0.1,
		TrimSafetySeconds:         0.2,

		ImageSeconds:          3,
		GifSeconds:            3,
		VideoSeconds:          5,
		VideoPlayToEndSeconds: 8,
		VideoLeadInSeconds:    0.3,

		ConsoleCommandCPS:              30,
		ConsoleOutputCPS:               200,
		ConsoleEnterDelaySeconds:       0.3,
		ConsoleMinVisibleSeconds:       0.4,
		ConsoleCommandOnlyTailSeconds:  0.5,
		ConsoleTailSeconds:             1,
		ConsoleAppendTransitionSeconds: 0.1,
	}
}

// SpeedFactor returns the effective timing multiplier.
func (s Settings) SpeedFactor() float64 {
	if s.TimingMultiplier <= 0 {
		return 1
	}
	return s.TimingMultiplier
}

// Transition returns the frames inserted after each block.
func (s Settings) Transition(fps int) int {
	if s.DisableTransitions {
		return 0
	}
	return Frames(s.TransitionSeconds, fps)
}

// ChainedTransition returns the frames between a console and the appended
// console that continues it.
func (s Settings) ChainedTransition(fps int) int {
	if s.DisableTransitions {
		return 0
	}
	return Frames(s.ConsoleAppendTransitionSeconds, fps)
}

// PreRoll returns the frames that precede every code block's start.
func (s Settings) PreRoll(fps int) int {
	return Frames(s.CodePreRollSeconds, fps)
}

// TrimSafety returns the padding an external trimmer keeps around cuts.
func (s Settings) TrimSafety(fps int) int {
	return Frames(s.TrimSafetySeconds, fps)
}

// Scaled converts seconds to frames with the speed factor applied.
func (s Settings) Scaled(seconds float64, fps int) int {
	return Frames(seconds*s.SpeedFactor(), fps)
}
