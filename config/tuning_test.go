package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func restoreConfig(t *testing.T) {
	t.Helper()
	movement, camera, collision, collectible := Movement, Camera, Collision, Collectible
	bindings := make(map[ActionID][]string, len(Input.Bindings))
	for k, v := range Input.Bindings {
		bindings[k] = v
	}
	t.Cleanup(func() {
		Movement, Camera, Collision, Collectible = movement, camera, collision, collectible
		Input.Bindings = bindings
	})
}

func TestApplyTuningPartialOverride(t *testing.T) {
	restoreConfig(t)

	doc := []byte(`
movement:
  walkSpeed: 5
camera:
  pitchLimit: 1.2
bindings:
  jump: [Enter]
`)
	if err := ApplyTuning(doc); err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}

	if Movement.WalkSpeed != 5 {
		t.Errorf("WalkSpeed = %v, want 5", Movement.WalkSpeed)
	}
	if Movement.RunSpeed != 8 {
		t.Errorf("RunSpeed = %v, want untouched 8", Movement.RunSpeed)
	}
	if Camera.PitchLimit != 1.2 {
		t.Errorf("PitchLimit = %v, want 1.2", Camera.PitchLimit)
	}
	if Camera.MaxDistance != 30 {
		t.Errorf("MaxDistance = %v, want untouched 30", Camera.MaxDistance)
	}
	if got := Input.Bindings[ActionJump]; len(got) != 1 || got[0] != "Enter" {
		t.Errorf("jump bindings = %v, want [Enter]", got)
	}
	if got := Input.Bindings[ActionForward]; len(got) != 2 {
		t.Errorf("forward bindings = %v, want untouched", got)
	}
}

func TestApplyTuningRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "movement: [1, 2"},
		{"negative speed", "movement:\n  walkSpeed: -1\n"},
		{"inverted distances", "camera:\n  minDistance: 10\n  maxDistance: 5\n"},
		{"smoothing one", "camera:\n  smoothing: 1\n"},
		{"unknown action", "bindings:\n  dance: [X]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreConfig(t)
			before := CurrentTuning()

			if err := ApplyTuning([]byte(tt.doc)); err == nil {
				t.Fatal("expected error")
			}
			if Movement != before.Movement || Camera != before.Camera {
				t.Error("configuration changed after rejected tuning")
			}
		})
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap a not-exist error", err)
	}
}

func TestActionNames(t *testing.T) {
	for id := ActionNone + 1; id < ActionCount; id++ {
		got, ok := ActionByName(id.String())
		if !ok || got != id {
			t.Errorf("ActionByName(%q) = %v, %v", id.String(), got, ok)
		}
	}
	if ActionCount.String() != "unknown" {
		t.Errorf("out of range action String = %q", ActionCount.String())
	}
}

func TestCameraModeCycle(t *testing.T) {
	m := CameraThirdPerson
	want := []CameraMode{CameraFirstPerson, CameraDrone, CameraThirdPerson}
	for _, w := range want {
		m = m.Next()
		if m != w {
			t.Fatalf("Next = %v, want %v", m, w)
		}
	}
	if ParseCameraMode("drone") != CameraDrone || ParseCameraMode("bogus") != CameraThirdPerson {
		t.Error("ParseCameraMode mismatch")
	}
}
