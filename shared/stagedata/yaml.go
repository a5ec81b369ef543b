package stagedata

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a YAML stage file from fsys.
func LoadYAML(fsys fs.FS, path string) (*StageCollisionData, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read stage %s: %w", path, err)
	}
	return ParseYAML(raw)
}

// ParseYAML decodes and validates a YAML stage document.
func ParseYAML(raw []byte) (*StageCollisionData, error) {
	var data StageCollisionData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode stage: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return &data, nil
}
