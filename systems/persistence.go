package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const cameraPrefsKey = "camera"

// PrefStore is the subset of gdata.Manager the simulation uses.
type PrefStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// CameraPrefs represents the camera preferences stored on disk
type CameraPrefs struct {
	Zoom float64 `json:"zoom"`
	Mode string  `json:"mode"`
}

// OpenPrefs initializes the gdata manager for preference storage
func OpenPrefs(appName string) (PrefStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return nil, err
	}
	return m, nil
}

// LoadCameraPrefs loads camera preferences. A missing store or item is not
// an error; nil is returned and defaults apply.
func LoadCameraPrefs(store PrefStore) (*CameraPrefs, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(cameraPrefsKey)
	if err != nil {
		log.Printf("Warning: Could not load camera preferences: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved preferences yet, use defaults
		return nil, nil
	}

	var prefs CameraPrefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("Warning: Could not parse camera preferences: %v", err)
		return nil, err
	}
	return &prefs, nil
}

// SaveCameraPrefs saves the current camera zoom and mode.
func SaveCameraPrefs(store PrefStore, e *ecs.ECS) error {
	if store == nil {
		return nil
	}
	camera := GetOrCreateCamera(e)
	data, err := json.Marshal(CameraPrefs{
		Zoom: camera.Zoom,
		Mode: camera.Mode.String(),
	})
	if err != nil {
		log.Printf("Warning: Could not serialize camera preferences: %v", err)
		return err
	}
	if err := store.SaveItem(cameraPrefsKey, data); err != nil {
		log.Printf("Warning: Could not save camera preferences: %v", err)
		return err
	}
	return nil
}

// ApplyCameraPrefs applies loaded preferences to a camera state.
func ApplyCameraPrefs(camera *components.CameraData, prefs *CameraPrefs) {
	if prefs == nil {
		return
	}
	if prefs.Zoom >= 0 && prefs.Zoom <= 1 {
		camera.Zoom = prefs.Zoom
	}
	camera.Mode = cfg.ParseCameraMode(prefs.Mode)
}
