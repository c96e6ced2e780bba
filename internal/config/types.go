package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/AhmedSherif9/HideAndSeek/internal/grid"
	"github.com/AhmedSherif9/HideAndSeek/internal/patrol"
	"github.com/AhmedSherif9/HideAndSeek/internal/vecmath"
)

// Point is a grid position written as [x, z] or {x: .., z: ..}.
type Point struct {
	X int
	Z int
}

// UnmarshalYAML accepts both the sequence and the mapping form.
func (p *Point) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var xs []int
		if err := n.Decode(&xs); err != nil {
			return err
		}
		if len(xs) != 2 {
			return fmt.Errorf("line %d: point needs [x, z], got %d values", n.Line, len(xs))
		}
		p.X, p.Z = xs[0], xs[1]
		return nil
	case yaml.MappingNode:
		var m struct {
			X int `yaml:"x"`
			Z int `yaml:"z"`
		}
		if err := n.Decode(&m); err != nil {
			return err
		}
		p.X, p.Z = m.X, m.Z
		return nil
	default:
		return fmt.Errorf("line %d: point must be [x, z] or {x, z}", n.Line)
	}
}

// MarshalYAML writes the compact sequence form.
func (p Point) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []int{p.X, p.Z} {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(v)})
	}
	return n, nil
}

// Grid converts to a grid position.
func (p Point) Grid() grid.Position {
	return grid.Pos(p.X, p.Z)
}

// Vec3 is a float triple written as [x, y, z].
type Vec3 [3]float64

// UnmarshalYAML decodes a three-element sequence.
func (v *Vec3) UnmarshalYAML(n *yaml.Node) error {
	var xs []float64
	if err := n.Decode(&xs); err != nil {
		return err
	}
	if len(xs) != 3 {
		return fmt.Errorf("line %d: vector needs [x, y, z], got %d values", n.Line, len(xs))
	}
	copy(v[:], xs)
	return nil
}

// MarshalYAML writes the flow sequence form.
func (v Vec3) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range v {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(c)})
	}
	return n, nil
}

// Vec converts to a vecmath vector.
func (v Vec3) Vec() vecmath.Vec3 {
	return vecmath.V3(v[0], v[1], v[2])
}

// Scene is the full description of one walkthrough: geometry the game logic
// cares about plus the knobs of the frontend around it.
type Scene struct {
	Name         string              `yaml:"name"`
	GridStep     int                 `yaml:"grid_step"`
	TickPeriodMS int                 `yaml:"tick_period_ms"`
	Camera       CameraConfig        `yaml:"camera"`
	Avatar       AvatarConfig        `yaml:"avatar"`
	Bounds       *BoundsConfig       `yaml:"bounds,omitempty"`
	Walls        []WallConfig        `yaml:"walls,omitempty"`
	BlockedCells []Point             `yaml:"blocked_cells,omitempty"`
	Collectibles []CollectibleConfig `yaml:"collectibles"`
	WinZone      []Point             `yaml:"win_zone"`
	SoundZones   []SoundZoneConfig   `yaml:"sound_zones,omitempty"`
	Clock        ClockConfig         `yaml:"clock"`
	Patrols      []PatrolConfig      `yaml:"patrols,omitempty"`
	Adversaries  []AdversaryConfig   `yaml:"adversaries,omitempty"`
	Props        []PropConfig        `yaml:"props,omitempty"`
	Session      SessionConfig       `yaml:"session"`
	Audio        AudioConfig         `yaml:"audio"`
}

// CameraConfig holds the start-up view and the per-keypress increments.
type CameraConfig struct {
	Eye        Vec3    `yaml:"eye"`
	Center     Vec3    `yaml:"center"`
	Up         Vec3    `yaml:"up"`
	MoveStep   float64 `yaml:"move_step"`
	RotateStep float64 `yaml:"rotate_step"` // degrees
	FOVY       float64 `yaml:"fovy"`        // degrees
	Near       float64 `yaml:"near"`
	Far        float64 `yaml:"far"`
}

// AvatarConfig places the player.
type AvatarConfig struct {
	ID        string  `yaml:"id"`
	Start     Point   `yaml:"start"`
	Facing    string  `yaml:"facing"`
	Elevation float64 `yaml:"elevation"`
}

// BoundsConfig is the inclusive walkable rectangle.
type BoundsConfig struct {
	Min Point `yaml:"min"`
	Max Point `yaml:"max"`
}

// WallConfig blocks leaving At toward Dir. Both also blocks the way back.
type WallConfig struct {
	At   Point  `yaml:"at"`
	Dir  string `yaml:"dir"`
	Both bool   `yaml:"both"`
}

// CollectibleConfig is one pickup. Triggers default to [At].
type CollectibleConfig struct {
	ID        string  `yaml:"id"`
	At        Point   `yaml:"at"`
	Elevation float64 `yaml:"elevation"`
	Triggers  []Point `yaml:"triggers,omitempty"`
}

// SoundZoneConfig maps positions to a named cue.
type SoundZoneConfig struct {
	Cue string  `yaml:"cue"`
	At  []Point `yaml:"at"`
}

// ClockConfig is the countdown range. A nil Floor means "the lowest scripted tick".
type ClockConfig struct {
	Start int  `yaml:"start"`
	Floor *int `yaml:"floor,omitempty"`
}

// PatrolConfig is a named script.
type PatrolConfig struct {
	Name  string       `yaml:"name"`
	Steps []StepConfig `yaml:"steps"`
}

// StepConfig is one scripted step, optionally repeated every Every ticks.
type StepConfig struct {
	Tick   int    `yaml:"tick"`
	DX     int    `yaml:"dx"`
	DY     int    `yaml:"dy"`
	Facing string `yaml:"facing,omitempty"`
	Repeat int    `yaml:"repeat,omitempty"`
	Every  int    `yaml:"every,omitempty"`
}

// LocalConfig is a patrol-local coordinate.
type LocalConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Local converts to the patrol type.
func (l LocalConfig) Local() patrol.Local {
	return patrol.Local{X: l.X, Y: l.Y}
}

// AdversaryConfig places one patrolling adversary.
type AdversaryConfig struct {
	ID        string      `yaml:"id"`
	Patrol    string      `yaml:"patrol"`
	Origin    LocalConfig `yaml:"origin"`
	Facing    string      `yaml:"facing"`
	Elevation float64     `yaml:"elevation"`
}

// PropConfig is decorative scenery. It has no effect on movement; block its
// cell with blocked_cells if it should.
type PropConfig struct {
	Kind  string  `yaml:"kind"`
	At    Vec3    `yaml:"at"`
	Scale float64 `yaml:"scale"`
	Yaw   float64 `yaml:"yaw"`
}

// SessionConfig holds the policies the integrating session applies.
type SessionConfig struct {
	HaltOnLose bool `yaml:"halt_on_lose"`
}

// AudioConfig controls cue playback.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}
