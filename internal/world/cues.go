package world

import "github.com/AhmedSherif9/HideAndSeek/internal/grid"

// SoundZone names a cue played when the avatar steps onto any of its positions.
type SoundZone struct {
	Cue       string
	Positions []grid.Position
}

// CueEvent is emitted when the avatar enters a sound zone position.
type CueEvent struct {
	Cue string
	At  grid.Position
}

// cueMap indexes sound zones by position, keeping declaration order.
type cueMap map[grid.Position][]string

func newCueMap(zones []SoundZone) cueMap {
	m := make(cueMap)
	for _, z := range zones {
		for _, p := range z.Positions {
			m[p] = append(m[p], z.Cue)
		}
	}
	return m
}

func (m cueMap) at(p grid.Position) []CueEvent {
	names := m[p]
	if len(names) == 0 {
		return nil
	}
	out := make([]CueEvent, len(names))
	for i, n := range names {
		out[i] = CueEvent{Cue: n, At: p}
	}
	return out
}
