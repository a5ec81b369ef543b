package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/wayfarer/config"
	"github.com/go-gl/mathgl/mgl64"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.items == nil {
		m.items = make(map[string][]byte)
	}
	m.items[key] = data
	return nil
}

func TestCameraPrefsRoundTrip(t *testing.T) {
	h := newHarness(t, openStage(), mgl64.Vec3{})
	store := &memStore{}

	cam := h.camera()
	cam.Zoom = 0.25
	cam.Mode = cfg.CameraDrone
	if err := SaveCameraPrefs(store, h.ecs); err != nil {
		t.Fatalf("SaveCameraPrefs: %v", err)
	}

	prefs, err := LoadCameraPrefs(store)
	if err != nil || prefs == nil {
		t.Fatalf("LoadCameraPrefs = %v, %v", prefs, err)
	}

	other := newHarness(t, openStage(), mgl64.Vec3{})
	ApplyCameraPrefs(other.camera(), prefs)
	if got := other.camera(); got.Zoom != 0.25 || got.Mode != cfg.CameraDrone {
		t.Errorf("applied camera = %+v", got)
	}
}

func TestLoadCameraPrefsDegrades(t *testing.T) {
	tests := []struct {
		name    string
		store   PrefStore
		wantErr bool
	}{
		{"no store", nil, false},
		{"nothing saved", &memStore{}, false},
		{"load failure", &memStore{loadErr: errors.New("disk gone")}, false},
		{"corrupt item", &memStore{items: map[string][]byte{cameraPrefsKey: []byte("{zoom")}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs, err := LoadCameraPrefs(tt.store)
			if prefs != nil {
				t.Errorf("prefs = %+v, want nil", prefs)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyCameraPrefsIgnoresBadZoom(t *testing.T) {
	h := newHarness(t, openStage(), mgl64.Vec3{})
	cam := h.camera()
	cam.Zoom = 0.6
	ApplyCameraPrefs(cam, &CameraPrefs{Zoom: 4, Mode: "firstPerson"})
	if cam.Zoom != 0.6 || cam.Mode != cfg.CameraFirstPerson {
		t.Errorf("camera = %+v", cam)
	}
}
