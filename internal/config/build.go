package config

import (
	"github.com/AhmedSherif9/HideAndSeek/internal/camera"
	"github.com/AhmedSherif9/HideAndSeek/internal/grid"
	"github.com/AhmedSherif9/HideAndSeek/internal/patrol"
	"github.com/AhmedSherif9/HideAndSeek/internal/world"
)

func (b *BoundsConfig) bounds() grid.Bounds {
	return grid.Bounds{Min: b.Min.Grid(), Max: b.Max.Grid()}
}

// direction parses a name that Validate has already accepted; empty means
// the fallback.
func direction(s string, fallback grid.Direction) grid.Direction {
	if s == "" {
		return fallback
	}
	d, err := grid.ParseDirection(s)
	if err != nil {
		return fallback
	}
	return d
}

// Obstacles expands walls, blocked cells and bounds into an obstacle map.
// A blocked cell blocks all four edges leading into it.
func (sc *Scene) Obstacles() *grid.ObstacleMap {
	om := grid.NewObstacleMap()
	if sc.Bounds != nil {
		om.SetBounds(sc.Bounds.bounds())
	}
	for _, w := range sc.Walls {
		d := direction(w.Dir, grid.North)
		if w.Both {
			om.BlockBoth(w.At.Grid(), d, sc.GridStep)
		} else {
			om.Block(w.At.Grid(), d)
		}
	}
	for _, c := range sc.BlockedCells {
		cell := c.Grid()
		for _, d := range grid.Directions {
			om.Block(cell.Add(d, sc.GridStep), d.Opposite())
		}
	}
	return om
}

// Scripts expands the patrols, unrolling repeat/every shorthand.
func (sc *Scene) Scripts() []*patrol.Script {
	out := make([]*patrol.Script, 0, len(sc.Patrols))
	for _, p := range sc.Patrols {
		var steps []patrol.Step
		for _, st := range p.Steps {
			var facing *grid.Direction
			if st.Facing != "" {
				facing = patrol.Face(direction(st.Facing, grid.North))
			}
			for _, tick := range st.ticks() {
				steps = append(steps, patrol.Step{Tick: tick, DX: st.DX, DY: st.DY, Facing: facing})
			}
		}
		out = append(out, patrol.NewScript(p.Name, steps))
	}
	return out
}

// Setup converts the scene into world construction parameters.
func (sc *Scene) Setup() world.Setup {
	s := world.Setup{
		Step: sc.GridStep,
		Avatar: world.AvatarSetup{
			ID:        world.EntityID(sc.Avatar.ID),
			Start:     sc.Avatar.Start.Grid(),
			Facing:    direction(sc.Avatar.Facing, grid.North),
			Elevation: sc.Avatar.Elevation,
		},
		Obstacles:  sc.Obstacles(),
		Scripts:    sc.Scripts(),
		ClockStart: sc.Clock.Start,
		ClockFloor: sc.ClockFloor(),
	}
	for _, c := range sc.Collectibles {
		triggers := []grid.Position{c.At.Grid()}
		if len(c.Triggers) > 0 {
			triggers = triggers[:0]
			for _, t := range c.Triggers {
				triggers = append(triggers, t.Grid())
			}
		}
		s.Collectibles = append(s.Collectibles, &world.Collectible{
			ID:        world.EntityID(c.ID),
			Position:  c.At.Grid(),
			Elevation: c.Elevation,
			Triggers:  triggers,
		})
	}
	for _, p := range sc.WinZone {
		s.WinZone = append(s.WinZone, p.Grid())
	}
	for _, z := range sc.SoundZones {
		sz := world.SoundZone{Cue: z.Cue}
		for _, p := range z.At {
			sz.Positions = append(sz.Positions, p.Grid())
		}
		s.SoundZones = append(s.SoundZones, sz)
	}
	for _, a := range sc.Adversaries {
		s.Adversaries = append(s.Adversaries, world.AdversarySetup{
			ID:        world.EntityID(a.ID),
			Script:    a.Patrol,
			Origin:    a.Origin.Local(),
			Facing:    direction(a.Facing, grid.North),
			Elevation: a.Elevation,
		})
	}
	return s
}

// Build validates sc and turns it into a fresh world and camera. Each call
// returns independent state, so one scene can seed many sessions.
func Build(sc Scene) (*world.World, camera.Camera, error) {
	cam := camera.New(sc.Camera.Eye.Vec(), sc.Camera.Center.Vec(), sc.Camera.Up.Vec())
	if err := sc.Validate(sc.Name); err != nil {
		return nil, cam, err
	}
	w, err := world.New(sc.Setup())
	if err != nil {
		return nil, cam, &ConfigError{Source: sc.Name, Issues: []error{err}}
	}
	return w, cam, nil
}
