package session

import "github.com/AhmedSherif9/HideAndSeek/internal/world"

// Notifier receives fire-and-forget feedback. Implementations must not
// block; the session never waits on them.
type Notifier interface {
	Collected(ev world.CollectedEvent)
	Blocked(mv world.Move)
	Cue(ev world.CueEvent)
	OutcomeChanged(o world.Outcome)
}

// Nop discards every notification.
type Nop struct{}

func (Nop) Collected(world.CollectedEvent) {}
func (Nop) Blocked(world.Move)             {}
func (Nop) Cue(world.CueEvent)             {}
func (Nop) OutcomeChanged(world.Outcome)   {}
