package animations

import (
	"strings"

	"github.com/automoto/wayfarer/config"
)

// Step identifies which rule of the resolution chain produced a clip.
type Step int

const (
	StepNone Step = iota
	StepExactCategory
	StepExactAlias
	StepSubstring
	StepPrefix
	StepLooseSubstring
	StepFirstAvailable
)

func (s Step) String() string {
	switch s {
	case StepExactCategory:
		return "exact category"
	case StepExactAlias:
		return "exact alias"
	case StepSubstring:
		return "substring"
	case StepPrefix:
		return "prefix"
	case StepLooseSubstring:
		return "loose substring"
	case StepFirstAvailable:
		return "first available"
	}
	return "none"
}

// Rules are the data driving clip resolution.
type Rules struct {
	Aliases map[config.AnimationCategory][]string
	Avoid   []string
}

// DefaultRules reads the rules from the animation config.
func DefaultRules() Rules {
	return Rules{
		Aliases: config.Animation.Aliases,
		Avoid:   config.Animation.Avoid,
	}
}

// Resolution is the outcome of Resolve. Clip is empty when no clips exist.
// Category is the category that matched, which is idle after a fallback.
type Resolution struct {
	Clip     string
	Category config.AnimationCategory
	Step     Step
}

// Fallback reports whether the requested category could not be matched directly.
func (r Resolution) Fallback(requested config.AnimationCategory) bool {
	return r.Category != requested || r.Step == StepFirstAvailable || r.Step == StepNone
}

// Resolve picks the clip to play for category from the available clip
// names. Substring, prefix and avoid comparisons ignore case; the exact
// steps do not.
func Resolve(category config.AnimationCategory, clips []string, rules Rules) Resolution {
	if clip, step, ok := match(category, clips, rules); ok {
		return Resolution{Clip: clip, Category: category, Step: step}
	}
	if category != config.CategoryIdle {
		if clip, step, ok := match(config.CategoryIdle, clips, rules); ok {
			return Resolution{Clip: clip, Category: config.CategoryIdle, Step: step}
		}
	}
	if len(clips) > 0 {
		return Resolution{Clip: clips[0], Category: category, Step: StepFirstAvailable}
	}
	return Resolution{Category: category, Step: StepNone}
}

func match(category config.AnimationCategory, clips []string, rules Rules) (string, Step, bool) {
	token := string(category)
	for _, c := range clips {
		if c == token {
			return c, StepExactCategory, true
		}
	}

	aliases := rules.Aliases[category]
	for _, a := range aliases {
		for _, c := range clips {
			if c == a {
				return c, StepExactAlias, true
			}
		}
	}

	lowered := make([]string, len(clips))
	for i, c := range clips {
		lowered[i] = strings.ToLower(c)
	}
	avoid := make([]bool, len(clips))
	for i, lc := range lowered {
		avoid[i] = containsAny(lc, rules.Avoid)
	}

	for _, a := range aliases {
		la := strings.ToLower(a)
		for i, lc := range lowered {
			if !avoid[i] && strings.Contains(lc, la) {
				return clips[i], StepSubstring, true
			}
		}
	}
	for _, a := range aliases {
		la := strings.ToLower(a)
		for i, lc := range lowered {
			if !avoid[i] && strings.HasPrefix(lc, la) {
				return clips[i], StepPrefix, true
			}
		}
	}
	for _, a := range aliases {
		la := strings.ToLower(a)
		for i, lc := range lowered {
			if strings.Contains(lc, la) {
				return clips[i], StepLooseSubstring, true
			}
		}
	}
	return "", StepNone, false
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(s, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// Categorize derives the coarse movement category from ground state and input.
func Categorize(onGround, moving, sprint bool) config.AnimationCategory {
	switch {
	case !onGround:
		return config.CategoryJumping
	case !moving:
		return config.CategoryIdle
	case sprint:
		return config.CategoryRunning
	}
	return config.CategoryWalking
}
