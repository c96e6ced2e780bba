package world

import (
	"errors"
	"fmt"

	"github.com/AhmedSherif9/HideAndSeek/internal/grid"
)

// Collectible is a pickup. Its trigger set need not include the position it
// is drawn at.
type Collectible struct {
	ID        EntityID
	Position  grid.Position
	Elevation float64
	Triggers  []grid.Position
	collected bool
}

// Collected reports whether the item has been picked up. Once true it stays true.
func (c *Collectible) Collected() bool {
	return c.collected
}

func (c *Collectible) triggeredBy(p grid.Position) bool {
	for _, t := range c.Triggers {
		if t == p {
			return true
		}
	}
	return false
}

// CollectedEvent is emitted once per item, when it is picked up.
type CollectedEvent struct {
	ID EntityID
	At grid.Position
}

// Registry tracks every collectible in declaration order.
type Registry struct {
	items []*Collectible
	byID  map[EntityID]*Collectible
}

// NewRegistry builds a registry. IDs must be unique and every item needs at
// least one trigger position.
func NewRegistry(items ...*Collectible) (*Registry, error) {
	r := &Registry{byID: make(map[EntityID]*Collectible, len(items))}
	var errs []error
	for _, c := range items {
		if c == nil {
			continue
		}
		if _, dup := r.byID[c.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate collectible %q", c.ID))
			continue
		}
		if len(c.Triggers) == 0 {
			errs = append(errs, fmt.Errorf("collectible %q has no trigger positions", c.ID))
			continue
		}
		r.items = append(r.items, c)
		r.byID[c.ID] = c
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// CheckPickup collects every uncollected item triggered at p. Revisiting a
// collected item's trigger is a no-op.
func (r *Registry) CheckPickup(p grid.Position) []CollectedEvent {
	if r == nil {
		return nil
	}
	var out []CollectedEvent
	for _, c := range r.items {
		if c.collected || !c.triggeredBy(p) {
			continue
		}
		c.collected = true
		out = append(out, CollectedEvent{ID: c.ID, At: p})
	}
	return out
}

// AllCollected reports whether every item has been picked up.
func (r *Registry) AllCollected() bool {
	if r == nil {
		return false
	}
	for _, c := range r.items {
		if !c.collected {
			return false
		}
	}
	return true
}

// Get returns an item by ID.
func (r *Registry) Get(id EntityID) (*Collectible, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.byID[id]
	return c, ok
}

// Len returns the number of items.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}

// CollectedCount returns how many items have been picked up.
func (r *Registry) CollectedCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, c := range r.items {
		if c.collected {
			n++
		}
	}
	return n
}

// Items returns the collectibles in declaration order.
func (r *Registry) Items() []*Collectible {
	if r == nil {
		return nil
	}
	return append([]*Collectible(nil), r.items...)
}
