package stagedata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Default heights in world units for TMX objects that carry no "height"
// property. Trees and rocks are spheres sized from the object width.
var defaultHeights = map[Kind]float64{
	KindBuilding: 3,
	KindLava:     0.2,
}

// LoadTMX parses a Tiled map into stage data. Object groups named after a
// Kind ("building", "tree", "rock", "lava", plural accepted) become
// primitives, "collectibles" become pickups, and the first object of
// "spawn" is the spawn point. The map property "pixelsPerUnit" scales pixels
// to world units and defaults to the tile width.
func LoadTMX(fsys fs.FS, tmxPath string) (*StageCollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	ppu := levelMap.Properties.GetFloat("pixelsPerUnit")
	if ppu <= 0 {
		ppu = float64(levelMap.TileWidth)
	}
	if ppu <= 0 {
		ppu = 1
	}

	data := &StageCollisionData{
		ID: strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
		Bounds: Bounds{
			MaxX: float64(levelMap.Width*levelMap.TileWidth) / ppu,
			MaxZ: float64(levelMap.Height*levelMap.TileHeight) / ppu,
		},
	}

	for _, og := range levelMap.ObjectGroups {
		group := strings.ToLower(og.Name)
		switch group {
		case "spawn", "playerspawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				data.Spawn = Vec3{
					X: (o.X + o.Width/2) / ppu,
					Y: o.Properties.GetFloat("elevation"),
					Z: (o.Y + o.Height/2) / ppu,
				}
			}
			continue
		case "collectibles", "items":
			for _, o := range og.Objects {
				data.Collectibles = append(data.Collectibles, Collectible{
					ID: o.Name,
					Position: Vec3{
						X: (o.X + o.Width/2) / ppu,
						Y: o.Properties.GetFloat("elevation") + 0.5,
						Z: (o.Y + o.Height/2) / ppu,
					},
					Value:  o.Properties.GetInt("value"),
					Radius: o.Properties.GetFloat("radius"),
				})
			}
			continue
		}

		kind, ok := parseKind(group)
		if !ok {
			continue
		}
		for _, o := range og.Objects {
			data.Primitives = append(data.Primitives, primitiveFromObject(kind, o, ppu))
		}
	}

	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("stage %s: %w", tmxPath, err)
	}
	return data, nil
}

func parseKind(group string) (Kind, bool) {
	k := Kind(strings.TrimSuffix(group, "s"))
	switch k {
	case KindBuilding, KindTree, KindRock, KindLava:
		return k, true
	}
	return "", false
}

func primitiveFromObject(kind Kind, o *tiled.Object, ppu float64) Primitive {
	cx := (o.X + o.Width/2) / ppu
	cz := (o.Y + o.Height/2) / ppu
	elevation := o.Properties.GetFloat("elevation")

	shape := o.Properties.GetString("shape")
	if shape == "" {
		shape = ShapeBox
		if kind == KindTree || kind == KindRock {
			shape = ShapeSphere
		}
	}

	if shape == ShapeSphere {
		r := o.Width / 2 / ppu
		return Primitive{
			ID:       o.Name,
			Kind:     kind,
			Shape:    shape,
			Position: Vec3{X: cx, Y: elevation + r, Z: cz},
			Size:     Vec3{X: r, Y: r, Z: r},
		}
	}

	h := o.Properties.GetFloat("height")
	if h <= 0 {
		h = defaultHeights[kind]
	}
	if h <= 0 {
		h = 1
	}
	return Primitive{
		ID:       o.Name,
		Kind:     kind,
		Shape:    shape,
		Position: Vec3{X: cx, Y: elevation + h/2, Z: cz},
		Size:     Vec3{X: o.Width / 2 / ppu, Y: h / 2, Z: o.Height / 2 / ppu},
	}
}
