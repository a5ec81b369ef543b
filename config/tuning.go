package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the on-disk override document. Sections that are absent keep
// their current values; fields that are absent inside a section do too.
type Tuning struct {
	Movement    MovementConfig      `yaml:"movement"`
	Camera      CameraConfig        `yaml:"camera"`
	Collision   CollisionConfig     `yaml:"collision"`
	Collectible CollectibleConfig   `yaml:"collectible"`
	Bindings    map[string][]string `yaml:"bindings"`
}

// CurrentTuning snapshots the live configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Movement:    Movement,
		Camera:      Camera,
		Collision:   Collision,
		Collectible: Collectible,
	}
}

// LoadTuning reads a YAML tuning file and applies it.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("apply tuning %s: %w", path, err)
	}
	return nil
}

// ApplyTuning decodes data over the live configuration. Nothing is changed
// when the document fails to decode or validate.
func ApplyTuning(data []byte) error {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return err
	}

	bindings, err := resolveBindings(t.Bindings)
	if err != nil {
		return err
	}

	Movement = t.Movement
	Camera = t.Camera
	Collision = t.Collision
	Collectible = t.Collectible
	for id, keys := range bindings {
		Input.Bindings[id] = keys
	}
	return nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Movement.WalkSpeed <= 0 || t.Movement.RunSpeed <= 0 {
		errs = append(errs, errors.New("movement speeds must be positive"))
	}
	if t.Movement.GroundFriction < 0 || t.Movement.GroundFriction > 1 {
		errs = append(errs, fmt.Errorf("groundFriction %v outside [0,1]", t.Movement.GroundFriction))
	}
	if t.Movement.MaxDelta <= 0 {
		errs = append(errs, errors.New("maxDelta must be positive"))
	}
	if t.Camera.MinDistance < 0 || t.Camera.MaxDistance < t.Camera.MinDistance {
		errs = append(errs, fmt.Errorf("camera distance range [%v,%v] invalid", t.Camera.MinDistance, t.Camera.MaxDistance))
	}
	if t.Camera.Smoothing < 0 || t.Camera.Smoothing >= 1 {
		errs = append(errs, fmt.Errorf("camera smoothing %v outside [0,1)", t.Camera.Smoothing))
	}
	if t.Camera.PitchLimit <= 0 {
		errs = append(errs, errors.New("camera pitchLimit must be positive"))
	}
	if t.Collision.CellSize <= 0 || t.Collision.StageCellSize <= 0 {
		errs = append(errs, errors.New("collision cell sizes must be positive"))
	}
	if t.Collectible.CaptureRadius < 0 || t.Collectible.MagnetRange < 0 {
		errs = append(errs, errors.New("collectible radii must not be negative"))
	}
	return errors.Join(errs...)
}

func resolveBindings(raw map[string][]string) (map[ActionID][]string, error) {
	out := make(map[ActionID][]string, len(raw))
	for name, keys := range raw {
		id, ok := ActionByName(name)
		if !ok || id == ActionNone {
			return nil, fmt.Errorf("unknown action %q in bindings", name)
		}
		out[id] = keys
	}
	return out, nil
}
