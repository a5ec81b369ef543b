package config

// AnimationConfig contains clip resolution and playback configuration.
type AnimationConfig struct {
	FadeDuration float64 // Crossfade length in seconds

	// Ordered alias candidates per category, most preferred first
	Aliases map[AnimationCategory][]string

	// Substrings that disqualify a clip in the filtered matching passes
	Avoid []string

	// Loop behaviour per category; categories not listed loop-repeat
	Loops map[AnimationCategory]LoopMode

	// Clip names assumed when the asset collaborator never delivers a list
	DefaultClips []string
}

var Animation AnimationConfig

func init() {
	Animation = AnimationConfig{
		FadeDuration: 0.25,
		Aliases: map[AnimationCategory][]string{
			CategoryIdle:    {"Idle", "idle", "Idle_01", "Idle_02", "Standing", "Breathing", "Stand"},
			CategoryWalking: {"Walk", "walk", "Walking", "Walk_01", "Walk_Forward"},
			CategoryRunning: {"Run", "run", "Running", "Run_01", "Sprint", "Jog"},
			CategoryJumping: {"Jump", "jump", "Jumping", "Jump_01", "Fall", "Falling", "Air"},
		},
		Avoid: []string{"crouch", "combat", "crawl", "swim", "sit"},
		Loops: map[AnimationCategory]LoopMode{
			CategoryJumping: LoopOnce,
		},
		DefaultClips: nil,
	}
}
