package grid

// Edge is a single directional transition out of a position.
type Edge struct {
	From Position
	Dir  Direction
}

// Bounds is an inclusive rectangle of allowed positions.
type Bounds struct {
	Min Position
	Max Position
}

// Contains reports whether p lies inside b.
func (b Bounds) Contains(p Position) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ObstacleMap is the static set of blocked transitions. Walls are modelled
// as edges, not cells: blocking (p, North) does not by itself block the
// reverse step from the northern neighbour.
type ObstacleMap struct {
	blocked map[Edge]struct{}
	bounds  *Bounds
}

// NewObstacleMap creates an empty, unbounded map.
func NewObstacleMap() *ObstacleMap {
	return &ObstacleMap{blocked: make(map[Edge]struct{})}
}

// Block marks the transition (from, dir) as impassable.
func (om *ObstacleMap) Block(from Position, dir Direction) {
	om.blocked[Edge{From: from, Dir: dir}] = struct{}{}
}

// BlockBoth blocks (from, dir) and the reverse step back into from.
func (om *ObstacleMap) BlockBoth(from Position, dir Direction, step int) {
	om.Block(from, dir)
	om.Block(from.Add(dir, step), dir.Opposite())
}

// SetBounds restricts the walkable area. Moves leaving it are blocked.
func (om *ObstacleMap) SetBounds(b Bounds) {
	om.bounds = &b
}

// Bounds returns the walkable rectangle, if one was set.
func (om *ObstacleMap) Bounds() (Bounds, bool) {
	if om.bounds == nil {
		return Bounds{}, false
	}
	return *om.bounds, true
}

// Blocked reports whether stepping from `from` in dir (landing on `to`) is
// impassable.
func (om *ObstacleMap) Blocked(from Position, dir Direction, to Position) bool {
	if om == nil {
		return false
	}
	if _, ok := om.blocked[Edge{From: from, Dir: dir}]; ok {
		return true
	}
	if om.bounds != nil && !om.bounds.Contains(to) {
		return true
	}
	return false
}

// Edges returns every blocked transition (unordered).
func (om *ObstacleMap) Edges() []Edge {
	out := make([]Edge, 0, len(om.blocked))
	for e := range om.blocked {
		out = append(out, e)
	}
	return out
}
