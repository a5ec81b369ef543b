package systems

import (
	"log"

	"github.com/automoto/wayfarer/assets/animations"
	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation resolves the player's movement category to a clip and
// advances the crossfade.
func UpdateAnimation(e *ecs.ECS) {
	entry, ok := GetPlayerEntry(e)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	anim := components.Animation.Get(entry)
	input := getOrCreateInput(e)

	pollClipLoad(anim)

	if anim.Manual && manualOverrideEnded(input) {
		anim.Manual = false
		anim.ManualClip = ""
		anim.Dirty = true
	}

	if !anim.Manual {
		category := animations.Categorize(player.OnGround, player.Inputs.Moving(), player.Inputs.Has(components.MoveSprint))
		if category != anim.Requested || anim.Dirty {
			switchAnimation(player, anim, category)
		}
	}

	anim.Mixer.Update(GetFrame(e).DT)
}

func switchAnimation(player *components.PlayerData, anim *components.AnimationData, category cfg.AnimationCategory) {
	res := animations.Resolve(category, anim.Clips, animations.DefaultRules())
	if res.Fallback(category) {
		if res.Clip == "" {
			log.Printf("Warning: no animation clip for %s", category)
		} else {
			log.Printf("Warning: no %s animation, using %q (%s)", category, res.Clip, res.Step)
		}
	}

	anim.Requested = category
	anim.Dirty = false
	anim.Mixer.Play(res.Clip, cfg.Animation.Loops[res.Category])
	player.Animation = components.AnimationState{
		Category: category,
		Clip:     res.Clip,
	}
}

// manualOverrideEnded reports whether new directional or jump input arrived.
func manualOverrideEnded(input *components.InputData) bool {
	for _, id := range []cfg.ActionID{
		cfg.ActionForward,
		cfg.ActionBackward,
		cfg.ActionLeft,
		cfg.ActionRight,
		cfg.ActionJump,
	} {
		if GetAction(input, id).JustPressed {
			return true
		}
	}
	return false
}

// pollClipLoad picks up a finished clip list. A failed load keeps whatever
// list the player already had.
func pollClipLoad(anim *components.AnimationData) {
	if anim.Pending == nil {
		return
	}
	clips, done, err := anim.Pending.Poll()
	if !done {
		return
	}
	anim.Pending = nil
	if err != nil {
		log.Printf("Warning: keeping %d known animation clips: %v", len(anim.Clips), err)
		return
	}
	anim.Clips = clips
	anim.Dirty = true
}
