package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CollectibleData is a pickup. Collected guards against collecting twice
// when the trigger and the capture check both fire.
type CollectibleData struct {
	ID        string
	Position  mgl64.Vec3
	Value     int
	Collected bool
}

var Collectible = donburi.NewComponentType[CollectibleData]()
