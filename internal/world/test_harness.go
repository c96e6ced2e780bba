package world

import (
	"github.com/AhmedSherif9/HideAndSeek/internal/grid"
	"github.com/AhmedSherif9/HideAndSeek/internal/patrol"
)

// TestOption is a builder function applied to a Setup by NewTestWorld.
type TestOption func(*Setup)

// WithStep overrides the grid pitch.
func WithStep(step int) TestOption {
	return func(s *Setup) { s.Step = step }
}

// WithAvatarAt places the avatar.
func WithAvatarAt(x, z int) TestOption {
	return func(s *Setup) { s.Avatar.Start = grid.Pos(x, z) }
}

// WithWall blocks the transition leaving (x,z) toward dir.
func WithWall(x, z int, dir grid.Direction) TestOption {
	return func(s *Setup) { s.Obstacles.Block(grid.Pos(x, z), dir) }
}

// WithBounds limits the walkable area.
func WithBounds(minX, minZ, maxX, maxZ int) TestOption {
	return func(s *Setup) {
		s.Obstacles.SetBounds(grid.Bounds{Min: grid.Pos(minX, minZ), Max: grid.Pos(maxX, maxZ)})
	}
}

// WithCollectible adds an item drawn at its first trigger position.
func WithCollectible(id string, triggers ...grid.Position) TestOption {
	return func(s *Setup) {
		c := &Collectible{ID: EntityID(id), Triggers: triggers}
		if len(triggers) > 0 {
			c.Position = triggers[0]
		}
		s.Collectibles = append(s.Collectibles, c)
	}
}

// WithWinZone sets the win zone.
func WithWinZone(ps ...grid.Position) TestOption {
	return func(s *Setup) { s.WinZone = ps }
}

// WithSoundZone attaches a cue to positions.
func WithSoundZone(cue string, ps ...grid.Position) TestOption {
	return func(s *Setup) {
		s.SoundZones = append(s.SoundZones, SoundZone{Cue: cue, Positions: ps})
	}
}

// WithScript registers a patrol script.
func WithScript(name string, steps ...patrol.Step) TestOption {
	return func(s *Setup) {
		s.Scripts = append(s.Scripts, patrol.NewScript(name, steps))
	}
}

// WithAdversary adds an adversary following script from a patrol-local origin.
func WithAdversary(id, script string, origin patrol.Local) TestOption {
	return func(s *Setup) {
		s.Adversaries = append(s.Adversaries, AdversarySetup{
			ID:     EntityID(id),
			Script: script,
			Origin: origin,
			Facing: grid.North,
		})
	}
}

// WithClock sets the countdown range.
func WithClock(start, floor int) TestOption {
	return func(s *Setup) {
		s.ClockStart = start
		s.ClockFloor = floor
	}
}

// TestSetup returns the Setup NewTestWorld would build, for tests that need
// to tweak it further before calling New.
func TestSetup(opts ...TestOption) Setup {
	s := Setup{
		Step:       grid.Step,
		Avatar:     AvatarSetup{ID: "avatar", Facing: grid.North},
		Obstacles:  grid.NewObstacleMap(),
		ClockStart: patrol.DefaultStart,
		ClockFloor: 0,
	}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// NewTestWorld builds a small world from options. It panics on an invalid
// setup; it is meant for tests and the headless tools only.
func NewTestWorld(opts ...TestOption) *World {
	w, err := New(TestSetup(opts...))
	if err != nil {
		panic(err)
	}
	return w
}
