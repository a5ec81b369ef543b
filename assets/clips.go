package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// ClipSource supplies the animation clip names of an avatar. Names are
// opaque to the simulation.
type ClipSource interface {
	ClipNames(ctx context.Context) ([]string, error)
}

// StaticClips is a ClipSource with a fixed list.
type StaticClips []string

func (s StaticClips) ClipNames(context.Context) ([]string, error) {
	return append([]string(nil), s...), nil
}

// AvatarManifest describes an avatar's clips and how it is placed.
type AvatarManifest struct {
	Clips        []string           `yaml:"clips"`
	Durations    map[string]float64 `yaml:"durations"`
	Scale        float64            `yaml:"scale"`
	HeightOffset float64            `yaml:"heightOffset"`
}

// ManifestSource reads an AvatarManifest from a file system.
type ManifestSource struct {
	FS   fs.FS
	Path string
}

// Manifest loads and decodes the manifest.
func (m *ManifestSource) Manifest() (*AvatarManifest, error) {
	raw, err := fs.ReadFile(m.FS, m.Path)
	if err != nil {
		return nil, fmt.Errorf("read avatar manifest %s: %w", m.Path, err)
	}
	var man AvatarManifest
	if err := yaml.Unmarshal(raw, &man); err != nil {
		return nil, fmt.Errorf("decode avatar manifest %s: %w", m.Path, err)
	}
	if man.Scale == 0 {
		man.Scale = 1
	}
	return &man, nil
}

func (m *ManifestSource) ClipNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	man, err := m.Manifest()
	if err != nil {
		return nil, err
	}
	return man.Clips, nil
}

// ErrLoadCancelled is reported by a ClipLoad cancelled before completion.
var ErrLoadCancelled = errors.New("clip load cancelled")

// ClipLoad is an in-flight clip name request. The frame loop polls it and
// never blocks on it.
type ClipLoad struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	clips []string
	err   error
}

// LoadClips asks src for clip names in the background, giving up after timeout.
func LoadClips(ctx context.Context, src ClipSource, timeout time.Duration) *ClipLoad {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	l := &ClipLoad{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		type result struct {
			clips []string
			err   error
		}
		res := make(chan result, 1)
		go func() {
			clips, err := src.ClipNames(ctx)
			res <- result{clips, err}
		}()

		select {
		case r := <-res:
			l.finish(r.clips, r.err)
		case <-ctx.Done():
			err := ctx.Err()
			if errors.Is(err, context.Canceled) {
				err = ErrLoadCancelled
			}
			l.finish(nil, fmt.Errorf("clip metadata: %w", err))
		}
	}()
	return l
}

func (l *ClipLoad) finish(clips []string, err error) {
	l.once.Do(func() {
		l.clips, l.err = clips, err
		l.cancel()
		close(l.done)
	})
}

// Poll returns the result once the load has finished. done is false while
// it is still running.
func (l *ClipLoad) Poll() (clips []string, done bool, err error) {
	select {
	case <-l.done:
		return l.clips, true, l.err
	default:
		return nil, false, nil
	}
}

// Wait blocks until the load finishes.
func (l *ClipLoad) Wait() ([]string, error) {
	<-l.done
	return l.clips, l.err
}

// Cancel abandons the load. Poll then reports ErrLoadCancelled unless the
// load had already finished.
func (l *ClipLoad) Cancel() {
	l.finish(nil, fmt.Errorf("clip metadata: %w", ErrLoadCancelled))
}
