package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Camera      = donburi.NewTag().SetName("Camera")
	Stage       = donburi.NewTag().SetName("Stage")
	Collectible = donburi.NewTag().SetName("Collectible")
)

// Registry layers
const (
	LayerPlayer = "player"
	LayerItem   = "item"
	LayerStage  = "stage"
)

// Registry ids of singleton bodies
const (
	PlayerBodyID = "player"
)
