package collision

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type cellKey struct {
	x, z int32
}

type cellRange struct {
	minX, minZ, maxX, maxZ int32
}

type slot struct {
	obj   Object
	cells cellRange
	live  bool
	mark  uint32
}

// World is the registry of collidable objects. Objects live in a dense slot
// table; the spatial hash maps each cell to the slots whose XZ footprint
// touches it. Freed slots are reused so steady-state frames do not allocate.
type World struct {
	cellSize float64
	slots    []slot
	free     []int32
	index    map[string]int32
	cells    map[cellKey][]int32

	mark    uint32
	scratch []int32
}

func NewWorld(cellSize float64) *World {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &World{
		cellSize: cellSize,
		index:    make(map[string]int32),
		cells:    make(map[cellKey][]int32),
	}
}

// CellSize returns the spatial hash cell edge.
func (w *World) CellSize() float64 {
	return w.cellSize
}

// Len returns the number of registered objects.
func (w *World) Len() int {
	return len(w.index)
}

// Add registers o. IDs must be unique within the world.
func (w *World) Add(o Object) error {
	if o.ID == "" {
		return ErrEmptyID
	}
	if _, ok := w.index[o.ID]; ok {
		return fmt.Errorf("add %q: %w", o.ID, ErrDuplicateID)
	}

	var i int32
	if n := len(w.free); n > 0 {
		i = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		i = int32(len(w.slots))
		w.slots = append(w.slots, slot{})
	}

	s := &w.slots[i]
	s.obj = o
	s.live = true
	s.mark = 0
	s.cells = w.rangeFor(&o)
	w.insertCells(i, s.cells)
	w.index[o.ID] = i
	return nil
}

// Remove unregisters id. It reports whether the object was present.
func (w *World) Remove(id string) bool {
	i, ok := w.index[id]
	if !ok {
		return false
	}
	w.removeSlot(i)
	return true
}

func (w *World) removeSlot(i int32) {
	s := &w.slots[i]
	w.removeCells(i, s.cells)
	delete(w.index, s.obj.ID)
	*s = slot{}
	w.free = append(w.free, i)
}

// Move updates the position of id and its cell membership.
func (w *World) Move(id string, pos mgl64.Vec3) bool {
	i, ok := w.index[id]
	if !ok {
		return false
	}
	s := &w.slots[i]
	s.obj.Position = pos
	next := w.rangeFor(&s.obj)
	if next != s.cells {
		w.removeCells(i, s.cells)
		w.insertCells(i, next)
		s.cells = next
	}
	return true
}

// Get returns a copy of the object registered under id.
func (w *World) Get(id string) (Object, bool) {
	i, ok := w.index[id]
	if !ok {
		return Object{}, false
	}
	return w.slots[i].obj, true
}

// Each calls fn for every registered object until fn returns false.
func (w *World) Each(fn func(o *Object) bool) {
	for i := range w.slots {
		if !w.slots[i].live {
			continue
		}
		if !fn(&w.slots[i].obj) {
			return
		}
	}
}

// Clear removes every object.
func (w *World) Clear() {
	w.slots = w.slots[:0]
	w.free = w.free[:0]
	clear(w.index)
	clear(w.cells)
	w.mark = 0
}

// Neighbors returns the ids of objects sharing the cell neighborhood of id.
// Unknown ids have no neighbors.
func (w *World) Neighbors(id string) []string {
	i, ok := w.index[id]
	if !ok {
		return nil
	}
	near := w.gather(w.slots[i].cells, i)
	ids := make([]string, 0, len(near))
	for _, j := range near {
		ids = append(ids, w.slots[j].obj.ID)
	}
	return ids
}

// QueryPoint returns the ids of objects whose cell neighborhood covers pos.
func (w *World) QueryPoint(pos mgl64.Vec3) []string {
	k := w.cellOf(pos.X(), pos.Z())
	near := w.gather(cellRange{k.x, k.z, k.x, k.z}, -1)
	ids := make([]string, 0, len(near))
	for _, j := range near {
		ids = append(ids, w.slots[j].obj.ID)
	}
	return ids
}

// Contacts runs the narrow phase between id and its broad-phase neighbors.
func (w *World) Contacts(id string) []Contact {
	i, ok := w.index[id]
	if !ok {
		return nil
	}
	var out []Contact
	self := &w.slots[i].obj
	for _, j := range w.gather(w.slots[i].cells, i) {
		if c, hit := Collide(self, &w.slots[j].obj); hit {
			out = append(out, c)
		}
	}
	return out
}

// HasCollision reports whether id overlaps any other object, using the grid.
func (w *World) HasCollision(id string) bool {
	i, ok := w.index[id]
	if !ok {
		return false
	}
	self := &w.slots[i].obj
	for _, j := range w.gather(w.slots[i].cells, i) {
		if _, hit := Collide(self, &w.slots[j].obj); hit {
			return true
		}
	}
	return false
}

// HasCollisionBruteForce is HasCollision without the broad phase.
func (w *World) HasCollisionBruteForce(id string) bool {
	i, ok := w.index[id]
	if !ok {
		return false
	}
	self := &w.slots[i].obj
	for j := range w.slots {
		if int32(j) == i || !w.slots[j].live {
			continue
		}
		if _, hit := Collide(self, &w.slots[j].obj); hit {
			return true
		}
	}
	return false
}

type triggerHit struct {
	slot    int32
	id      string
	contact Contact
}

// ProcessTriggers fires every trigger overlapping id and removes it from the
// world, so each trigger fires at most once. It returns the number fired.
func (w *World) ProcessTriggers(id string) int {
	i, ok := w.index[id]
	if !ok {
		return 0
	}
	self := w.slots[i].obj

	var hits []triggerHit
	for _, j := range w.gather(w.slots[i].cells, i) {
		other := &w.slots[j].obj
		if !other.Trigger {
			continue
		}
		if c, hit := Collide(other, &self); hit {
			hits = append(hits, triggerHit{slot: j, id: other.ID, contact: c})
		}
	}

	fired := 0
	for _, h := range hits {
		// An earlier callback may have removed this trigger already.
		if !w.slots[h.slot].live || w.slots[h.slot].obj.ID != h.id {
			continue
		}
		trigger := w.slots[h.slot].obj
		w.removeSlot(h.slot)
		if trigger.OnCollision != nil {
			trigger.OnCollision(self, h.contact)
		}
		fired++
	}
	return fired
}

func (w *World) cellOf(x, z float64) cellKey {
	return cellKey{
		x: int32(math.Floor(x / w.cellSize)),
		z: int32(math.Floor(z / w.cellSize)),
	}
}

func (w *World) rangeFor(o *Object) cellRange {
	ex, ez := o.footprint()
	lo := w.cellOf(o.Position.X()-ex, o.Position.Z()-ez)
	hi := w.cellOf(o.Position.X()+ex, o.Position.Z()+ez)
	return cellRange{lo.x, lo.z, hi.x, hi.z}
}

func (w *World) insertCells(i int32, r cellRange) {
	for x := r.minX; x <= r.maxX; x++ {
		for z := r.minZ; z <= r.maxZ; z++ {
			k := cellKey{x, z}
			w.cells[k] = append(w.cells[k], i)
		}
	}
}

func (w *World) removeCells(i int32, r cellRange) {
	for x := r.minX; x <= r.maxX; x++ {
		for z := r.minZ; z <= r.maxZ; z++ {
			k := cellKey{x, z}
			list := w.cells[k]
			for n, v := range list {
				if v == i {
					last := len(list) - 1
					list[n] = list[last]
					list = list[:last]
					break
				}
			}
			if len(list) == 0 {
				delete(w.cells, k)
			} else {
				w.cells[k] = list
			}
		}
	}
}

// gather collects the distinct slots in r grown by one cell on every side,
// the 3x3 block for objects that fit in a cell. skip is excluded. The
// returned slice is reused by the next call.
func (w *World) gather(r cellRange, skip int32) []int32 {
	w.nextMark()
	w.scratch = w.scratch[:0]
	for x := r.minX - 1; x <= r.maxX+1; x++ {
		for z := r.minZ - 1; z <= r.maxZ+1; z++ {
			for _, j := range w.cells[cellKey{x, z}] {
				if j == skip || w.slots[j].mark == w.mark {
					continue
				}
				w.slots[j].mark = w.mark
				w.scratch = append(w.scratch, j)
			}
		}
	}
	return w.scratch
}

func (w *World) nextMark() {
	w.mark++
	if w.mark == 0 {
		for i := range w.slots {
			w.slots[i].mark = 0
		}
		w.mark = 1
	}
}
