package session

import (
	"fmt"
	"strings"
)

// Entry is one recorded session event.
type Entry struct {
	Tick     int     // ticks since the session started
	Clock    int     // countdown value when the event happened
	Actor    string  // entity id, or "--" for global events
	Category string  // move, pickup, cue, patrol, camera, outcome
	Key      string  // event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value
}

// String formats the entry as one fixed-width line. These lines are what
// TraceDigest hashes, so the layout is part of the trace.
//
//	[T=0042 C=1758] avatar   move      blocked         (0,300) north
func (e Entry) String() string {
	return fmt.Sprintf("[T=%04d C=%04d] %-8s %-9s %-15s %s",
		e.Tick, e.Clock, e.Actor, e.Category, e.Key, e.Value)
}

// matches reports whether e has the category and key. Empty matches all.
func (e Entry) matches(category, key string) bool {
	return (category == "" || e.Category == category) && (key == "" || e.Key == key)
}

// EventLog is the append-only history of a session. The frontend tails it
// with Since, reports and tests query it, and TraceDigest hashes it.
type EventLog struct {
	entries []Entry
}

func NewEventLog() *EventLog {
	return &EventLog{}
}

func (l *EventLog) Add(e Entry) {
	l.entries = append(l.entries, e)
}

// Entries returns the whole history. Callers must not modify it.
func (l *EventLog) Entries() []Entry {
	return l.entries
}

func (l *EventLog) Len() int {
	return len(l.entries)
}

// Since returns what was added after the first n entries, for consumers
// that keep their own cursor.
func (l *EventLog) Since(n int) []Entry {
	n = max(n, 0)
	if n >= len(l.entries) {
		return nil
	}
	return l.entries[n:]
}

// FirstOf returns the earliest entry with the category and key.
func (l *EventLog) FirstOf(category, key string) (Entry, bool) {
	for _, e := range l.entries {
		if e.matches(category, key) {
			return e, true
		}
	}
	return Entry{}, false
}

// LastOf returns the latest entry with the category and key.
func (l *EventLog) LastOf(category, key string) (Entry, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if e := l.entries[i]; e.matches(category, key) {
			return e, true
		}
	}
	return Entry{}, false
}

func (l *EventLog) Count(category, key string) int {
	n := 0
	for _, e := range l.entries {
		if e.matches(category, key) {
			n++
		}
	}
	return n
}

// HasEntry also requires valueSubstr to occur in the entry's Value.
func (l *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range l.entries {
		if e.matches(category, key) && strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Format renders the history one line per entry.
func (l *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
