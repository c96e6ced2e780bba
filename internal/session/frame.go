package session

import (
	"cmp"
	"slices"

	"github.com/AhmedSherif9/HideAndSeek/internal/camera"
	"github.com/AhmedSherif9/HideAndSeek/internal/grid"
	"github.com/AhmedSherif9/HideAndSeek/internal/vecmath"
	"github.com/AhmedSherif9/HideAndSeek/internal/world"
)

// Item is a collectible as the renderer sees it.
type Item struct {
	ID        world.EntityID
	Position  grid.Position
	Elevation float64
	Collected bool
}

// Frame is a read-only copy of everything a renderer needs. Building one
// never changes the session.
type Frame struct {
	Tick       int
	Clock      int
	ClockStart int
	Step       int

	Camera camera.Camera
	View   vecmath.Mat4

	Avatar      world.Entity
	Adversaries []world.Entity
	Items       []Item
	Collected   int
	Total       int
	WinZone     []grid.Position
	Walls       []grid.Edge
	Bounds      grid.Bounds
	Bounded     bool
	State       world.GameState
	Outcome     world.Outcome
	Over        bool
	CaughtCount int
}

// Snapshot copies the current state into a Frame.
func (s *Session) Snapshot() Frame {
	clock := s.world.Clock()
	reg := s.world.Registry()
	f := Frame{
		Tick:        s.stats.Ticks,
		Clock:       clock.Value(),
		ClockStart:  clock.Start,
		Step:        s.world.Step(),
		Camera:      s.cam,
		View:        vecmath.Identity(),
		Avatar:      s.world.Avatar(),
		Adversaries: s.world.Adversaries(),
		Collected:   reg.CollectedCount(),
		Total:       reg.Len(),
		State:       s.state,
		Outcome:     s.state.Outcome(),
		Over:        s.over,
		CaughtCount: s.stats.Caught,
	}
	if m, err := s.cam.LookAt(); err == nil {
		f.View = m
	}
	for _, c := range reg.Items() {
		f.Items = append(f.Items, Item{ID: c.ID, Position: c.Position, Elevation: c.Elevation, Collected: c.Collected()})
	}
	for p := range s.world.WinZone() {
		f.WinZone = append(f.WinZone, p)
	}
	slices.SortFunc(f.WinZone, comparePos)

	om := s.world.Obstacles()
	f.Walls = om.Edges()
	slices.SortFunc(f.Walls, func(a, b grid.Edge) int {
		if c := comparePos(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.Dir, b.Dir)
	})
	f.Bounds, f.Bounded = om.Bounds()
	return f
}

func comparePos(a, b grid.Position) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Z, b.Z)
}
