// Package grid defines the fixed-pitch horizontal grid the avatar and the
// adversaries live on, and the directional obstacle map over it.
package grid

import (
	"fmt"
	"strings"
)

// Step is the default distance between adjacent grid positions, in world units.
const Step = 100

// Position is a grid-aligned horizontal coordinate in world units.
// Both components are multiples of the world's step.
type Position struct {
	X int
	Z int
}

// Pos creates a Position.
func Pos(x, z int) Position {
	return Position{X: x, Z: z}
}

// String formats the position as "(x,z)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Z)
}

// Aligned reports whether both components are multiples of step.
func (p Position) Aligned(step int) bool {
	return step > 0 && p.X%step == 0 && p.Z%step == 0
}

// Add returns p offset by step units in direction d.
func (p Position) Add(d Direction, step int) Position {
	dx, dz := d.Delta()
	return Position{X: p.X + dx*step, Z: p.Z + dz*step}
}

// Direction is one of the four compass headings.
type Direction uint8

const (
	North Direction = iota // +Z
	East                   // +X
	South                  // -Z
	West                   // -X
	directionCount
)

// Directions lists every heading in declaration order.
var Directions = [directionCount]Direction{North, East, South, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d < directionCount
}

// Delta returns the unit grid offset for d.
func (d Direction) Delta() (dx, dz int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return (d + 2) % directionCount
}

// Yaw returns the heading as a yaw angle in degrees.
func (d Direction) Yaw() float64 {
	return float64(d%directionCount) * 90
}

// ParseDirection parses a heading name ("north", "N", "East", ...).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}
