package config

import (
	"math"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render/update layer the simulation uses.
const Default ecs.LayerID = 0

// Config holds window settings for the ebiten host.
type Config struct {
	Width  int
	Height int
	TPS    int
}

// MovementConfig contains all player movement tuning values.
// Speeds are world units per second, accelerations units per second squared.
type MovementConfig struct {
	WalkSpeed      float64 `yaml:"walkSpeed"`
	RunSpeed       float64 `yaml:"runSpeed"`
	JumpForce      float64 `yaml:"jumpForce"`
	Gravity        float64 `yaml:"gravity"`
	GroundFriction float64 `yaml:"groundFriction"` // Fraction of the gap to target speed closed per 60 Hz frame
	AirControl     float64 `yaml:"airControl"`     // Horizontal acceleration per 60 Hz frame while airborne
	AirFriction    float64 `yaml:"airFriction"`    // Horizontal decay per second while airborne
	MaxDelta       float64 `yaml:"maxDelta"`       // Frame delta cap in seconds
	GroundLevel    float64 `yaml:"groundLevel"`
	GroundEpsilon  float64 `yaml:"groundEpsilon"`
	TurnSpeed      float64 `yaml:"turnSpeed"`     // Facing lerp rate, bounded by 1 per frame
	TurnThreshold  float64 `yaml:"turnThreshold"` // Minimum horizontal speed before facing follows movement

	// Collision volume, a sphere resting on the feet position
	Radius float64 `yaml:"radius"`
}

// CameraConfig contains camera behavior configuration.
type CameraConfig struct {
	MinDistance  float64    `yaml:"minDistance"`
	MaxDistance  float64    `yaml:"maxDistance"`
	DefaultZoom  float64    `yaml:"defaultZoom"`
	DefaultYaw   float64    `yaml:"defaultYaw"`
	DefaultPitch float64    `yaml:"defaultPitch"`
	PitchLimit   float64    `yaml:"pitchLimit"` // Symmetric pitch clamp in radians; empirical, not derived
	FollowSpeed  float64    `yaml:"followSpeed"`
	Smoothing    float64    `yaml:"smoothing"`  // Residual fraction after one 60 Hz frame
	HeadHeight   float64    `yaml:"headHeight"` // Orbit target height above the feet, before avatar scale
	EyeHeight    float64    `yaml:"eyeHeight"`  // First-person eye height above the feet, before avatar scale
	DroneHeight  float64    `yaml:"droneHeight"`
	Up           [3]float64 `yaml:"up"`
}

// CollisionConfig contains collision system configuration.
type CollisionConfig struct {
	CellSize      float64 `yaml:"cellSize"`      // Spatial hash cell edge for the object registry
	StageCellSize int     `yaml:"stageCellSize"` // resolv cell edge for stage static geometry
	StageMargin   float64 `yaml:"stageMargin"`   // Padding around stage bounds for the resolv space
	BlockEpsilon  float64 `yaml:"blockEpsilon"`  // Axis displacement below which a blocked axis loses its velocity
}

// CollectibleConfig contains pickup attraction configuration.
type CollectibleConfig struct {
	Radius         float64 `yaml:"radius"` // Trigger sphere radius registered for each item
	CaptureRadius  float64 `yaml:"captureRadius"`
	MagnetRange    float64 `yaml:"magnetRange"`
	MagnetStrength float64 `yaml:"magnetStrength"`
}

// AvatarConfig holds the defaults used until the avatar collaborator supplies values.
type AvatarConfig struct {
	Scale        float64
	HeightOffset float64
}

// AssetsConfig contains asset collaborator timeouts.
type AssetsConfig struct {
	MetadataTimeout time.Duration
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay bool
	StageID     string
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Camera CameraConfig
var Collision CollisionConfig
var Collectible CollectibleConfig
var Avatar AvatarConfig
var Assets AssetsConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	Movement = MovementConfig{
		WalkSpeed:      4.0,
		RunSpeed:       8.0,
		JumpForce:      8.0,
		Gravity:        20.0,
		GroundFriction: 0.8,
		AirControl:     0.02,
		AirFriction:    0.5,
		MaxDelta:       0.1, // 100ms, avoids tunneling on frame hitches
		GroundLevel:    0.0,
		GroundEpsilon:  0.01,
		TurnSpeed:      10.0,
		TurnThreshold:  0.1,
		Radius:         0.4,
	}

	Camera = CameraConfig{
		MinDistance:  2.0,
		MaxDistance:  30.0,
		DefaultZoom:  0.6,
		DefaultYaw:   0.0,
		DefaultPitch: 0.35,
		PitchLimit:   0.47 * math.Pi,
		FollowSpeed:  10.0,
		Smoothing:    0.85,
		HeadHeight:   1.6,
		EyeHeight:    1.65,
		DroneHeight:  25.0,
		Up:           [3]float64{0, 1, 0},
	}

	Collision = CollisionConfig{
		CellSize:      4.0,
		StageCellSize: 2,
		StageMargin:   8.0,
		BlockEpsilon:  1e-6,
	}

	Collectible = CollectibleConfig{
		Radius:         0.5,
		CaptureRadius:  1.2,
		MagnetRange:    5.0,
		MagnetStrength: 8.0,
	}

	Avatar = AvatarConfig{
		Scale:        1.0,
		HeightOffset: 0.0,
	}

	Assets = AssetsConfig{
		MetadataTimeout: 10 * time.Second,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowOverlay: true,
		StageID:     "meadow",
	}
}
