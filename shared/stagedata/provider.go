package stagedata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// ErrUnknownStage is returned for stage ids no provider knows.
var ErrUnknownStage = errors.New("unknown stage")

// Provider supplies stage collision data by stage id.
type Provider interface {
	Stage(id string) (*StageCollisionData, error)
}

// DirProvider loads stages from Dir within FS, trying <id>.yaml, <id>.yml
// and <id>.tmx in that order.
type DirProvider struct {
	FS  fs.FS
	Dir string
}

func (p DirProvider) Stage(id string) (*StageCollisionData, error) {
	for _, ext := range []string{".yaml", ".yml", ".tmx"} {
		file := path.Join(p.Dir, id+ext)
		if _, err := fs.Stat(p.FS, file); err != nil {
			continue
		}
		return loadFile(p.FS, file)
	}
	return nil, fmt.Errorf("stage %q: %w", id, ErrUnknownStage)
}

// MapProvider serves stages held in memory.
type MapProvider map[string]*StageCollisionData

func (m MapProvider) Stage(id string) (*StageCollisionData, error) {
	s, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("stage %q: %w", id, ErrUnknownStage)
	}
	return s, nil
}

func loadFile(fsys fs.FS, file string) (*StageCollisionData, error) {
	var (
		data *StageCollisionData
		err  error
	)
	if strings.HasSuffix(file, ".tmx") {
		data, err = LoadTMX(fsys, file)
	} else {
		data, err = LoadYAML(fsys, file)
	}
	if err != nil {
		return nil, err
	}
	if data.ID == "" {
		data.ID = stem(file)
	}
	return data, nil
}

// LoadAll discovers every stage file in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*StageCollisionData, []string, error) {
	var matches []string
	for _, ext := range []string{"*.yaml", "*.yml", "*.tmx"} {
		pattern := path.Join(dir, ext)
		m, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no stage files found in %s", dir)
	}

	stages := make(map[string]*StageCollisionData, len(matches))
	names := make([]string, 0, len(matches))
	for _, file := range matches {
		data, err := loadFile(fsys, file)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", file, err)
		}
		name := stem(file)
		if _, dup := stages[name]; dup {
			return nil, nil, fmt.Errorf("stage %s defined twice in %s", name, dir)
		}
		stages[name] = data
		names = append(names, name)
	}

	sort.Strings(names)
	return stages, names, nil
}

func stem(file string) string {
	return strings.TrimSuffix(path.Base(file), path.Ext(file))
}
