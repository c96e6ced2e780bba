// Package patrol drives scripted adversary motion off the shared countdown
// clock. A script is a table of (clock value, delta, facing) steps expressed
// in patrol-local coordinates; there are no per-adversary timers.
package patrol

import (
	"fmt"

	"github.com/AhmedSherif9/HideAndSeek/internal/grid"
)

// Local is a position in patrol-local space: the path parameterisation a
// script's deltas are written in. It is not a world coordinate; use World.
type Local struct {
	X int
	Y int
}

// World maps a patrol-local coordinate to a grid position:
//
//	world.X =  local.Y * step
//	world.Z = -local.X * step
func (l Local) World(step int) grid.Position {
	return grid.Position{X: l.Y * step, Z: -l.X * step}
}

func (l Local) String() string {
	return fmt.Sprintf("<%d,%d>", l.X, l.Y)
}

// Step is one scripted movement, fired when the clock reaches Tick.
type Step struct {
	Tick   int
	DX     int
	DY     int
	Facing *grid.Direction // nil leaves the facing unchanged
}

// Face returns a pointer to d, for building Steps inline.
func Face(d grid.Direction) *grid.Direction {
	return &d
}

// Script is an ordered, named list of steps.
type Script struct {
	Name   string
	Steps  []Step
	byTick map[int][]int // clock value -> indices into Steps, declared order
}

// NewScript indexes steps by clock value. Steps sharing a tick all fire, in
// the order given.
func NewScript(name string, steps []Step) *Script {
	s := &Script{
		Name:   name,
		Steps:  append([]Step(nil), steps...),
		byTick: make(map[int][]int, len(steps)),
	}
	for i, st := range s.Steps {
		s.byTick[st.Tick] = append(s.byTick[st.Tick], i)
	}
	return s
}

// At returns the steps that fire at clock value tick, in declared order.
func (s *Script) At(tick int) []Step {
	idx := s.byTick[tick]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Step, len(idx))
	for i, j := range idx {
		out[i] = s.Steps[j]
	}
	return out
}

// LowestTick returns the smallest clock value any step fires at.
func (s *Script) LowestTick() (int, bool) {
	if len(s.Steps) == 0 {
		return 0, false
	}
	low := s.Steps[0].Tick
	for _, st := range s.Steps[1:] {
		if st.Tick < low {
			low = st.Tick
		}
	}
	return low, true
}

// Walker is the patrol state of one adversary. The engine mutates walkers
// but does not own them; the world does.
type Walker struct {
	Script       string
	Origin       Local
	OriginFacing grid.Direction
	Local        Local
	Facing       grid.Direction
}

// NewWalker places a walker at its origin.
func NewWalker(script string, origin Local, facing grid.Direction) *Walker {
	return &Walker{
		Script:       script,
		Origin:       origin,
		OriginFacing: facing,
		Local:        origin,
		Facing:       facing,
	}
}

func (w *Walker) apply(st Step) {
	w.Local.X += st.DX
	w.Local.Y += st.DY
	if st.Facing != nil {
		w.Facing = *st.Facing
	}
}

func (w *Walker) restart() {
	w.Local = w.Origin
	w.Facing = w.OriginFacing
}

// WorldPosition maps the walker's current local position to the grid.
func (w *Walker) WorldPosition(step int) grid.Position {
	return w.Local.World(step)
}
