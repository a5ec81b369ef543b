package components

import (
	"github.com/automoto/wayfarer/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// MoveFlags is the bitset of movement inputs the player is holding.
type MoveFlags uint8

const (
	MoveForward MoveFlags = 1 << iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveJump
	MoveSprint
)

const moveDirections = MoveForward | MoveBackward | MoveLeft | MoveRight

func (f MoveFlags) Has(flag MoveFlags) bool {
	return f&flag != 0
}

// Moving reports whether any directional input is held.
func (f MoveFlags) Moving() bool {
	return f&moveDirections != 0
}

// AnimationState is the resolved animation the player shows.
type AnimationState struct {
	Category config.AnimationCategory
	Clip     string
}

// PlayerData is the avatar's simulation state. Position is the feet.
// Writers: movement owns Position, Velocity, OnGround, Landed and Rotation;
// input owns Inputs; animation owns Animation.
type PlayerData struct {
	Position  mgl64.Vec3
	Velocity  mgl64.Vec3
	OnGround  bool
	Landed    bool    // True only on the frame OnGround became true
	Rotation  float64 // Facing yaw in radians
	Inputs    MoveFlags
	Animation AnimationState
}

var Player = donburi.NewComponentType[PlayerData]()

// AvatarData is the avatar configuration applied to the player transform.
type AvatarData struct {
	Scale        float64
	HeightOffset float64
}

var Avatar = donburi.NewComponentType[AvatarData]()

// InventoryData counts collected items.
type InventoryData struct {
	Items int
	Value int
}

var Inventory = donburi.NewComponentType[InventoryData]()
