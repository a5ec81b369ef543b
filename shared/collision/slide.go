package collision

import "github.com/go-gl/mathgl/mgl64"

// SlideResult is the outcome of an axis-decomposed move.
type SlideResult struct {
	Position mgl64.Vec3
	BlockedX bool
	BlockedZ bool
}

// Slide resolves a move from one position to another against a blocking
// predicate. The full move is taken when free. Otherwise the X-only and
// Z-only candidates are tested independently and each blocked axis keeps its
// pre-move coordinate. Y always follows the target; vertical contact is the
// ground clamp's job.
//
// A start position that is already blocked does not restrict the move, so a
// body placed inside geometry can walk out.
func Slide(from, to mgl64.Vec3, blocked func(mgl64.Vec3) bool) SlideResult {
	if !blocked(to) || blocked(from) {
		return SlideResult{Position: to}
	}

	xOnly := mgl64.Vec3{to.X(), to.Y(), from.Z()}
	zOnly := mgl64.Vec3{from.X(), to.Y(), to.Z()}
	xFree := !blocked(xOnly)
	zFree := !blocked(zOnly)

	switch {
	case xFree && zFree:
		// Only the diagonal is blocked, as at a corner. Keep the dominant axis.
		dx := to.X() - from.X()
		dz := to.Z() - from.Z()
		if dx*dx >= dz*dz {
			return SlideResult{Position: xOnly, BlockedZ: true}
		}
		return SlideResult{Position: zOnly, BlockedX: true}
	case xFree:
		return SlideResult{Position: xOnly, BlockedZ: true}
	case zFree:
		return SlideResult{Position: zOnly, BlockedX: true}
	}
	return SlideResult{
		Position: mgl64.Vec3{from.X(), to.Y(), from.Z()},
		BlockedX: true,
		BlockedZ: true,
	}
}
