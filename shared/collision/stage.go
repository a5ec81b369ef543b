package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

const (
	TagSolid = "solid"
	tagQuery = "query"

	// resolv works in whole pixels; stage units are scaled into that space.
	stagePixelsPerUnit = 64
)

// StageBounds is the XZ rectangle a stage's geometry lives in.
type StageBounds struct {
	MinX, MinZ, MaxX, MaxZ float64
}

// StageCollider answers blocking queries against a stage's static geometry.
// A resolv space over the XZ plane is the broad phase; the shape-pair tests
// are the narrow phase. resolv spaces start at zero, so positions are offset
// by the bounds origin minus the margin and scaled to pixels. Broad-phase
// rectangles are rounded outward so they cover every cell the volume touches.
type StageCollider struct {
	space   *resolv.Space
	query   *resolv.Object
	objects []*resolv.Object
	prims   []Object
	originX float64
	originZ float64
}

// NewStageCollider builds the broad-phase space for prims. Every primitive
// is treated as solid.
func NewStageCollider(prims []Object, bounds StageBounds, cellSize int, margin float64) *StageCollider {
	if cellSize <= 0 {
		cellSize = 1
	}
	for _, p := range prims {
		ex, ez := p.footprint()
		bounds.MinX = math.Min(bounds.MinX, p.Position.X()-ex)
		bounds.MinZ = math.Min(bounds.MinZ, p.Position.Z()-ez)
		bounds.MaxX = math.Max(bounds.MaxX, p.Position.X()+ex)
		bounds.MaxZ = math.Max(bounds.MaxZ, p.Position.Z()+ez)
	}

	sc := &StageCollider{
		prims:   append([]Object(nil), prims...),
		originX: bounds.MinX - margin,
		originZ: bounds.MinZ - margin,
	}
	cell := cellSize * stagePixelsPerUnit
	width := int(math.Ceil((bounds.MaxX-bounds.MinX+2*margin)*stagePixelsPerUnit)) + cell
	depth := int(math.Ceil((bounds.MaxZ-bounds.MinZ+2*margin)*stagePixelsPerUnit)) + cell
	sc.space = resolv.NewSpace(width, depth, cell, cell)

	for i := range sc.prims {
		p := &sc.prims[i]
		ex, ez := p.footprint()
		x, z, w, d := sc.toSpace(p.Position.X()-ex, p.Position.Z()-ez, 2*ex, 2*ez)
		tags := []string{TagSolid}
		if p.Layer != "" {
			tags = append(tags, p.Layer)
		}
		obj := resolv.NewObject(x, z, w, d, tags...)
		obj.SetShape(resolv.NewRectangle(0, 0, w, d))
		obj.Data = i
		sc.space.Add(obj)
		sc.objects = append(sc.objects, obj)
	}

	sc.query = resolv.NewObject(0, 0, 1, 1, tagQuery)
	sc.space.Add(sc.query)
	sc.objects = append(sc.objects, sc.query)
	return sc
}

// toSpace maps an XZ rectangle in world units to a pixel rectangle in the
// resolv space. resolv treats X+W-1 as the last covered pixel, so the far
// edge gets one extra pixel after rounding outward.
func (sc *StageCollider) toSpace(x, z, w, d float64) (float64, float64, float64, float64) {
	x0 := math.Floor((x - sc.originX) * stagePixelsPerUnit)
	z0 := math.Floor((z - sc.originZ) * stagePixelsPerUnit)
	x1 := math.Ceil((x + w - sc.originX) * stagePixelsPerUnit)
	z1 := math.Ceil((z + d - sc.originZ) * stagePixelsPerUnit)
	return x0, z0, x1 - x0 + 1, z1 - z0 + 1
}

// Primitives returns the stage geometry.
func (sc *StageCollider) Primitives() []Object {
	return sc.prims
}

// Blocked reports whether a sphere of radius resting with its bottom at
// feet overlaps stage geometry.
func (sc *StageCollider) Blocked(feet mgl64.Vec3, radius float64) bool {
	if sc.space == nil {
		return false
	}
	body := NewSphere(tagQuery, feet.Add(mgl64.Vec3{0, radius, 0}), radius)

	x, z, w, d := sc.toSpace(feet.X()-radius, feet.Z()-radius, 2*radius, 2*radius)
	sc.query.X, sc.query.Y = x, z
	sc.query.W, sc.query.H = w, d
	sc.query.Update()

	check := sc.query.Check(0, 0, TagSolid)
	if check == nil {
		return false
	}
	for _, obj := range check.ObjectsByTags(TagSolid) {
		i, ok := obj.Data.(int)
		if !ok {
			continue
		}
		if _, hit := Collide(&body, &sc.prims[i]); hit {
			return true
		}
	}
	return false
}

// Slide moves a body of radius from one feet position toward another.
func (sc *StageCollider) Slide(from, to mgl64.Vec3, radius float64) SlideResult {
	return Slide(from, to, func(p mgl64.Vec3) bool {
		return sc.Blocked(p, radius)
	})
}

// Close releases the broad-phase space.
func (sc *StageCollider) Close() {
	if sc.space == nil {
		return
	}
	sc.space.Remove(sc.objects...)
	sc.objects = nil
	sc.space = nil
	sc.prims = nil
}
