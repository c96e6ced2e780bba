// Package world owns the session's game state: the avatar, the scripted
// adversaries, the collectibles, the obstacle map and the countdown clock.
package world

import (
	"github.com/AhmedSherif9/HideAndSeek/internal/grid"
	"github.com/AhmedSherif9/HideAndSeek/internal/patrol"
)

// EntityID identifies an entity within one world.
type EntityID string

// Kind distinguishes the entity variants.
type Kind uint8

const (
	KindAvatar      Kind = iota // player controlled, exactly one
	KindAdversary               // patrol scripted
	KindCollectible             // inert until picked up
)

func (k Kind) String() string {
	switch k {
	case KindAvatar:
		return "avatar"
	case KindAdversary:
		return "adversary"
	case KindCollectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// Entity is a read-only snapshot of something placed on the grid.
type Entity struct {
	ID        EntityID
	Kind      Kind
	Position  grid.Position
	Facing    grid.Direction
	Elevation float64
}

// Yaw returns the facing as degrees.
func (e Entity) Yaw() float64 {
	return e.Facing.Yaw()
}

// avatar is the mutable player entity.
type avatar struct {
	id        EntityID
	pos       grid.Position
	facing    grid.Direction
	elevation float64
}

func (a *avatar) snapshot() Entity {
	return Entity{ID: a.id, Kind: KindAvatar, Position: a.pos, Facing: a.facing, Elevation: a.elevation}
}

// adversary couples an identifier with the patrol state the engine drives.
type adversary struct {
	id        EntityID
	elevation float64
	walker    *patrol.Walker
}

func (a *adversary) snapshot(step int) Entity {
	return Entity{
		ID:        a.id,
		Kind:      KindAdversary,
		Position:  a.walker.WorldPosition(step),
		Facing:    a.walker.Facing,
		Elevation: a.elevation,
	}
}
