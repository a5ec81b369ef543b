package factory

import (
	"fmt"

	"github.com/automoto/wayfarer/archetypes"
	"github.com/automoto/wayfarer/components"
	cfg "github.com/automoto/wayfarer/config"
	"github.com/automoto/wayfarer/shared/collision"
	"github.com/automoto/wayfarer/shared/stagedata"
	"github.com/automoto/wayfarer/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CollectFunc is called when a collectible's trigger fires.
type CollectFunc func(w donburi.World, item *donburi.Entry)

// CreateStage builds the registry and stage collider for data and spawns its
// collectibles. Stage primitives are registered as static objects so
// raycasts see them.
func CreateStage(ecs *ecs.ECS, data *stagedata.StageCollisionData, onCollect CollectFunc) (*donburi.Entry, error) {
	world := collision.NewWorld(cfg.Collision.CellSize)

	prims := make([]collision.Object, 0, len(data.Primitives))
	for _, p := range data.Primitives {
		obj, err := PrimitiveObject(p)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", data.ID, err)
		}
		if err := world.Add(obj); err != nil {
			return nil, fmt.Errorf("stage %s: %w", data.ID, err)
		}
		prims = append(prims, obj)
	}

	bounds := collision.StageBounds{
		MinX: data.Bounds.MinX,
		MinZ: data.Bounds.MinZ,
		MaxX: data.Bounds.MaxX,
		MaxZ: data.Bounds.MaxZ,
	}
	stage := archetypes.Stage.Spawn(ecs)
	components.Collision.SetValue(stage, components.CollisionData{
		World:   world,
		Stage:   collision.NewStageCollider(prims, bounds, cfg.Collision.StageCellSize, cfg.Collision.StageMargin),
		StageID: data.ID,
		Spawn:   Vec(data.Spawn),
	})

	for _, c := range data.Collectibles {
		if _, err := CreateCollectible(ecs, world, c, onCollect); err != nil {
			return nil, fmt.Errorf("stage %s: %w", data.ID, err)
		}
	}
	return stage, nil
}

// PrimitiveObject converts stage content into a static registry object.
func PrimitiveObject(p stagedata.Primitive) (collision.Object, error) {
	shape, ok := collision.ParseShape(p.Shape)
	if !ok {
		return collision.Object{}, fmt.Errorf("primitive %s: unknown shape %q", p.ID, p.Shape)
	}
	return collision.Object{
		ID:       p.ID,
		Shape:    shape,
		Position: Vec(p.Position),
		Size:     Vec(p.Size),
		Static:   true,
		Layer:    tags.LayerStage,
	}, nil
}

// Vec converts a content vector.
func Vec(v stagedata.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
