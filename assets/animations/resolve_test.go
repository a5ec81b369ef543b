package animations

import (
	"testing"

	"github.com/automoto/wayfarer/config"
)

func testRules() Rules {
	return Rules{
		Aliases: map[config.AnimationCategory][]string{
			config.CategoryIdle:    {"Idle", "Idle_01", "Idle_02", "Stand"},
			config.CategoryWalking: {"Walk", "Walking"},
			config.CategoryRunning: {"Run", "Sprint"},
			config.CategoryJumping: {"Jump", "Fall"},
		},
		Avoid: []string{"crouch", "combat", "crawl", "swim", "sit"},
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		category config.AnimationCategory
		clips    []string
		wantClip string
		wantCat  config.AnimationCategory
		wantStep Step
	}{
		{
			name:     "alias list names the clip",
			category: config.CategoryIdle,
			clips:    []string{"Idle_02", "Run_01"},
			wantClip: "Idle_02",
			wantCat:  config.CategoryIdle,
			wantStep: StepExactAlias,
		},
		{
			name:     "category token wins",
			category: config.CategoryWalking,
			clips:    []string{"Walk", "walking"},
			wantClip: "walking",
			wantCat:  config.CategoryWalking,
			wantStep: StepExactCategory,
		},
		{
			name:     "substring skips avoided clips",
			category: config.CategoryWalking,
			clips:    []string{"Crouch_Walk", "Slow_Walk_Loop"},
			wantClip: "Slow_Walk_Loop",
			wantCat:  config.CategoryWalking,
			wantStep: StepSubstring,
		},
		{
			name:     "case insensitive substring",
			category: config.CategoryRunning,
			clips:    []string{"T-Pose", "HERO_RUN_FAST"},
			wantClip: "HERO_RUN_FAST",
			wantCat:  config.CategoryRunning,
			wantStep: StepSubstring,
		},
		{
			name:     "loose substring when only avoided clips match",
			category: config.CategoryWalking,
			clips:    []string{"T-Pose", "Crouch_Walk"},
			wantClip: "Crouch_Walk",
			wantCat:  config.CategoryWalking,
			wantStep: StepLooseSubstring,
		},
		{
			name:     "falls back to idle",
			category: config.CategoryJumping,
			clips:    []string{"Wave", "Standing_Idle"},
			wantClip: "Standing_Idle",
			wantCat:  config.CategoryIdle,
			wantStep: StepSubstring,
		},
		{
			name:     "first available when nothing matches",
			category: config.CategoryJumping,
			clips:    []string{"Wave", "Dance"},
			wantClip: "Wave",
			wantCat:  config.CategoryJumping,
			wantStep: StepFirstAvailable,
		},
		{
			name:     "idle with no match does not retry",
			category: config.CategoryIdle,
			clips:    []string{"Wave"},
			wantClip: "Wave",
			wantCat:  config.CategoryIdle,
			wantStep: StepFirstAvailable,
		},
		{
			name:     "no clips",
			category: config.CategoryRunning,
			clips:    nil,
			wantClip: "",
			wantCat:  config.CategoryRunning,
			wantStep: StepNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.category, tt.clips, testRules())
			if got.Clip != tt.wantClip || got.Category != tt.wantCat || got.Step != tt.wantStep {
				t.Errorf("Resolve = %+v, want clip %q category %q step %v", got, tt.wantClip, tt.wantCat, tt.wantStep)
			}
		})
	}
}

func TestResolutionFallback(t *testing.T) {
	r := Resolve(config.CategoryJumping, []string{"Idle"}, testRules())
	if !r.Fallback(config.CategoryJumping) {
		t.Error("idle substitution not reported as fallback")
	}
	r = Resolve(config.CategoryJumping, []string{"Jump"}, testRules())
	if r.Fallback(config.CategoryJumping) {
		t.Error("direct match reported as fallback")
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		onGround, moving, sprint bool
		want                     config.AnimationCategory
	}{
		{false, false, false, config.CategoryJumping},
		{false, true, true, config.CategoryJumping},
		{true, false, true, config.CategoryIdle},
		{true, true, false, config.CategoryWalking},
		{true, true, true, config.CategoryRunning},
	}
	for _, tt := range tests {
		if got := Categorize(tt.onGround, tt.moving, tt.sprint); got != tt.want {
			t.Errorf("Categorize(%v, %v, %v) = %q, want %q", tt.onGround, tt.moving, tt.sprint, got, tt.want)
		}
	}
}
