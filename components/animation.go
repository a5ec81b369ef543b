package components

import (
	"github.com/automoto/wayfarer/assets"
	"github.com/automoto/wayfarer/assets/animations"
	"github.com/automoto/wayfarer/config"
	"github.com/yohamta/donburi"
)

// AnimationData drives clip playback for the player.
type AnimationData struct {
	Mixer   *animations.Mixer
	Clips   []string
	Pending *assets.ClipLoad

	// Manual pins ManualClip until new directional or jump input arrives
	Manual     bool
	ManualClip string

	// Requested is the category last resolved; Dirty forces a re-resolve
	Requested config.AnimationCategory
	Dirty     bool
}

var Animation = donburi.NewComponentType[AnimationData]()
