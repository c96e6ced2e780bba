package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/AhmedSherif9/HideAndSeek/internal/session"
)

const (
	logPanelWidth = 340
	logMaxEntries = 60
	logLineHeight = 14
)

// PanelEntry is a single line in the event panel.
type PanelEntry struct {
	Tick     int
	Actor    string
	Category string
	Message  string
}

// EventPanel is a ring buffer of recent session events rendered on-screen.
type EventPanel struct {
	entries []PanelEntry
	head    int
	count   int
}

// NewEventPanel creates a panel with a fixed capacity.
func NewEventPanel() *EventPanel {
	return &EventPanel{
		entries: make([]PanelEntry, logMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest when full.
func (p *EventPanel) Add(e PanelEntry) {
	p.entries[p.head] = e
	p.head = (p.head + 1) % logMaxEntries
	if p.count < logMaxEntries {
		p.count++
	}
}

// AddSessionEntry converts a session log entry.
func (p *EventPanel) AddSessionEntry(e session.Entry) {
	p.Add(PanelEntry{
		Tick:     e.Tick,
		Actor:    e.Actor,
		Category: e.Category,
		Message:  e.Key + " " + e.Value,
	})
}

// Recent returns entries in chronological order (oldest first).
func (p *EventPanel) Recent() []PanelEntry {
	result := make([]PanelEntry, p.count)
	for i := 0; i < p.count; i++ {
		idx := (p.head - p.count + i + logMaxEntries) % logMaxEntries
		result[i] = p.entries[idx]
	}
	return result
}

// categoryColor tags each row by event kind.
func categoryColor(cat string) color.RGBA {
	switch cat {
	case "pickup":
		return color.RGBA{R: 230, G: 200, B: 60, A: 255}
	case "outcome":
		return color.RGBA{R: 220, G: 70, B: 70, A: 255}
	case "patrol":
		return color.RGBA{R: 200, G: 110, B: 200, A: 255}
	case "cue":
		return color.RGBA{R: 90, G: 190, B: 220, A: 255}
	case "camera":
		return color.RGBA{R: 120, G: 120, B: 120, A: 255}
	default:
		return color.RGBA{R: 90, G: 170, B: 90, A: 255}
	}
}

// Draw renders the panel on the right side of the screen.
func (p *EventPanel) Draw(screen *ebiten.Image, face text.Face, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 10, G: 12, B: 10, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 18, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	drawText(screen, face, "EVENTS", panelX+8, 3, color.White)
	vector.StrokeLine(screen, float32(panelX), 18, float32(panelX+logPanelWidth), 18, 1.0, color.RGBA{R: 50, G: 80, B: 50, A: 200}, false)

	entries := p.Recent()
	maxVisible := (panelH - 24) / logLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	const highlighted = 3

	y := 22
	for i, e := range entries {
		recent := i >= len(entries)-highlighted
		if recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, categoryColor(e.Category), false)

		clr := color.RGBA{R: 170, G: 170, B: 170, A: 255}
		if recent {
			clr = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		line := fmt.Sprintf("%4d %-7.7s %s", e.Tick, e.Actor, e.Message)
		drawText(screen, face, line, panelX+12, y, clr)
		y += logLineHeight
	}
}
