package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/wayfarer/shared/stagedata"
)

var (
	//go:embed all:stages
	stageFS embed.FS

	//go:embed all:avatars
	avatarFS embed.FS
)

const (
	stageDir  = "stages"
	avatarDir = "avatars"
)

// StageProvider serves the stages bundled with the binary.
func StageProvider() stagedata.Provider {
	return stagedata.DirProvider{FS: stageFS, Dir: stageDir}
}

// DirStageProvider serves stages from a directory on disk, for content
// authored outside the binary. Ids the directory lacks fall back to the
// bundled stages.
func DirStageProvider(fsys fs.FS, dir string) stagedata.Provider {
	return overlayProvider{
		top:  stagedata.DirProvider{FS: fsys, Dir: dir},
		base: StageProvider(),
	}
}

type overlayProvider struct {
	top, base stagedata.Provider
}

func (p overlayProvider) Stage(id string) (*stagedata.StageCollisionData, error) {
	data, err := p.top.Stage(id)
	if errors.Is(err, stagedata.ErrUnknownStage) {
		return p.base.Stage(id)
	}
	return data, err
}

// StageNames lists the bundled stage ids in sorted order.
func StageNames() ([]string, error) {
	_, names, err := stagedata.LoadAll(stageFS, stageDir)
	if err != nil {
		return nil, fmt.Errorf("bundled stages: %w", err)
	}
	return names, nil
}

// AvatarSource returns the clip source for a bundled avatar manifest.
func AvatarSource(name string) *ManifestSource {
	return &ManifestSource{FS: avatarFS, Path: avatarDir + "/" + name + ".yaml"}
}
