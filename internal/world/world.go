package world

import (
	"errors"
	"fmt"

	"github.com/AhmedSherif9/HideAndSeek/internal/grid"
	"github.com/AhmedSherif9/HideAndSeek/internal/patrol"
)

var (
	// ErrUnknownEntity is returned for an ID the world does not know.
	ErrUnknownEntity = errors.New("world: unknown entity")
	// ErrNotMovable is returned when TryMove targets a scripted or inert entity.
	ErrNotMovable = errors.New("world: entity is not player movable")
	// ErrInvalidDirection is returned for a heading outside the four compass points.
	ErrInvalidDirection = errors.New("world: invalid direction")
	// ErrInvalidSetup wraps every problem found by New.
	ErrInvalidSetup = errors.New("world: invalid setup")
)

// MoveResult is the outcome of a single-step move. Blocked is a normal
// result, not a fault.
type MoveResult uint8

const (
	Blocked MoveResult = iota
	Moved
)

func (r MoveResult) String() string {
	if r == Moved {
		return "moved"
	}
	return "blocked"
}

// Move describes one attempted step.
type Move struct {
	Result MoveResult
	From   grid.Position
	To     grid.Position // equals From when blocked
	Dir    grid.Direction
}

// AvatarSetup places the player.
type AvatarSetup struct {
	ID        EntityID
	Start     grid.Position
	Facing    grid.Direction
	Elevation float64
}

// AdversarySetup places one scripted adversary.
type AdversarySetup struct {
	ID        EntityID
	Script    string
	Origin    patrol.Local
	Facing    grid.Direction
	Elevation float64
}

// Setup is everything needed to construct a World. It is normally produced
// from a scene file by the config package.
type Setup struct {
	Step         int
	Avatar       AvatarSetup
	Obstacles    *grid.ObstacleMap
	Collectibles []*Collectible
	WinZone      []grid.Position
	SoundZones   []SoundZone
	Scripts      []*patrol.Script
	Adversaries  []AdversarySetup
	ClockStart   int
	ClockFloor   int
}

// World owns the obstacle map, the collectible registry, every entity and
// the countdown clock.
type World struct {
	step        int
	obstacles   *grid.ObstacleMap
	avatar      *avatar
	adversaries []*adversary
	registry    *Registry
	winZone     Zone
	cues        cueMap
	clock       *patrol.Clock
	engine      *patrol.Engine
}

// New validates s and builds a World.
func New(s Setup) (*World, error) {
	if s.Step <= 0 {
		return nil, fmt.Errorf("%w: grid step %d must be positive", ErrInvalidSetup, s.Step)
	}
	if s.Obstacles == nil {
		s.Obstacles = grid.NewObstacleMap()
	}
	if s.Avatar.ID == "" {
		s.Avatar.ID = "avatar"
	}

	var errs []error
	if !s.Avatar.Start.Aligned(s.Step) {
		errs = append(errs, fmt.Errorf("avatar start %v is not aligned to step %d", s.Avatar.Start, s.Step))
	}
	if b, ok := s.Obstacles.Bounds(); ok && !b.Contains(s.Avatar.Start) {
		errs = append(errs, fmt.Errorf("avatar start %v is outside bounds", s.Avatar.Start))
	}

	reg, err := NewRegistry(s.Collectibles...)
	if err != nil {
		errs = append(errs, err)
	}
	ids := map[EntityID]bool{s.Avatar.ID: true}
	for _, c := range s.Collectibles {
		if c == nil {
			continue
		}
		if c.ID == s.Avatar.ID {
			errs = append(errs, fmt.Errorf("collectible id %q collides with the avatar", c.ID))
		}
		ids[c.ID] = true
		for _, tp := range c.Triggers {
			if !tp.Aligned(s.Step) {
				errs = append(errs, fmt.Errorf("collectible %q trigger %v is not aligned", c.ID, tp))
			}
		}
	}

	engine, err := patrol.NewEngine(s.Scripts...)
	if err != nil {
		errs = append(errs, err)
	}
	clock, err := patrol.NewClock(s.ClockStart, s.ClockFloor)
	if err != nil {
		errs = append(errs, err)
	}

	advs := make([]*adversary, 0, len(s.Adversaries))
	walkers := make([]*patrol.Walker, 0, len(s.Adversaries))
	for _, a := range s.Adversaries {
		if ids[a.ID] {
			errs = append(errs, fmt.Errorf("entity id %q used twice", a.ID))
		}
		ids[a.ID] = true
		w := patrol.NewWalker(a.Script, a.Origin, a.Facing)
		walkers = append(walkers, w)
		advs = append(advs, &adversary{id: a.ID, elevation: a.Elevation, walker: w})
	}
	if engine != nil && clock != nil {
		if err := engine.Validate(clock, walkers); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSetup, err)
	}

	return &World{
		step:      s.Step,
		obstacles: s.Obstacles,
		avatar: &avatar{
			id:        s.Avatar.ID,
			pos:       s.Avatar.Start,
			facing:    s.Avatar.Facing,
			elevation: s.Avatar.Elevation,
		},
		adversaries: advs,
		registry:    reg,
		winZone:     NewZone(s.WinZone...),
		cues:        newCueMap(s.SoundZones),
		clock:       clock,
		engine:      engine,
	}, nil
}

// Step returns the grid pitch in world units.
func (w *World) Step() int {
	return w.step
}

// TryMove attempts one grid step for a player-movable entity. On success the
// new position and facing are committed; when blocked nothing changes.
func (w *World) TryMove(id EntityID, dir grid.Direction) (Move, error) {
	if !dir.Valid() {
		return Move{}, ErrInvalidDirection
	}
	if w.avatar == nil || w.avatar.id != id {
		if _, ok := w.PositionOf(id); ok {
			return Move{}, fmt.Errorf("%w: %s", ErrNotMovable, id)
		}
		return Move{}, fmt.Errorf("%w: %s", ErrUnknownEntity, id)
	}
	from := w.avatar.pos
	to := from.Add(dir, w.step)
	if w.obstacles.Blocked(from, dir, to) {
		return Move{Result: Blocked, From: from, To: from, Dir: dir}, nil
	}
	w.avatar.pos = to
	w.avatar.facing = dir
	return Move{Result: Moved, From: from, To: to, Dir: dir}, nil
}

// PositionOf returns the current grid position of any entity.
func (w *World) PositionOf(id EntityID) (grid.Position, bool) {
	if w == nil {
		return grid.Position{}, false
	}
	if w.avatar != nil && w.avatar.id == id {
		return w.avatar.pos, true
	}
	for _, a := range w.adversaries {
		if a.id == id {
			return a.walker.WorldPosition(w.step), true
		}
	}
	if c, ok := w.registry.Get(id); ok {
		return c.Position, true
	}
	return grid.Position{}, false
}

// AvatarID returns the player entity's ID.
func (w *World) AvatarID() EntityID {
	return w.avatar.id
}

// Avatar returns a snapshot of the player entity.
func (w *World) Avatar() Entity {
	return w.avatar.snapshot()
}

// Adversaries returns snapshots of every adversary in world coordinates.
func (w *World) Adversaries() []Entity {
	out := make([]Entity, len(w.adversaries))
	for i, a := range w.adversaries {
		out[i] = a.snapshot(w.step)
	}
	return out
}

// AdversaryPositions returns adversary world positions for lose evaluation.
func (w *World) AdversaryPositions() []grid.Position {
	out := make([]grid.Position, len(w.adversaries))
	for i, a := range w.adversaries {
		out[i] = a.walker.WorldPosition(w.step)
	}
	return out
}

// Registry returns the collectible registry.
func (w *World) Registry() *Registry {
	return w.registry
}

// Obstacles returns the static obstacle map.
func (w *World) Obstacles() *grid.ObstacleMap {
	return w.obstacles
}

// WinZone returns the win zone.
func (w *World) WinZone() Zone {
	return w.winZone
}

// Clock returns the countdown clock.
func (w *World) Clock() *patrol.Clock {
	return w.clock
}

// CheckPickup runs the collectible check at the avatar's position.
func (w *World) CheckPickup() []CollectedEvent {
	return w.registry.CheckPickup(w.avatar.pos)
}

// CuesAt returns the sound cues attached to the avatar's position.
func (w *World) CuesAt() []CueEvent {
	return w.cues.at(w.avatar.pos)
}

// Tick advances the clock and the adversary patrols by one tick.
func (w *World) Tick() patrol.Advance {
	walkers := make([]*patrol.Walker, len(w.adversaries))
	for i, a := range w.adversaries {
		walkers[i] = a.walker
	}
	return w.engine.Tick(w.clock, walkers)
}

// State derives win/lose from the current positions. An uninitialised world
// is neither won nor lost.
func (w *World) State() GameState {
	if w == nil || w.avatar == nil {
		return GameState{}
	}
	pos := w.avatar.pos
	return GameState{
		Won:  EvaluateWin(pos, w.winZone, w.registry),
		Lost: EvaluateLose(pos, w.AdversaryPositions()),
	}
}
