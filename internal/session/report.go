package session

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Report returns a human-readable summary of the session so far.
func (s *Session) Report() string {
	f := s.Snapshot()
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Session at T=%04d (clock %d/%d) ---\n", f.Tick, f.Clock, f.ClockStart)
	fmt.Fprintf(&sb, "Outcome: %s", f.Outcome)
	if f.Over {
		sb.WriteString(" (over)")
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Avatar: %v facing %v\n", f.Avatar.Position, f.Avatar.Facing)
	fmt.Fprintf(&sb, "Collected: %d/%d", f.Collected, f.Total)
	var missing []string
	for _, it := range f.Items {
		if !it.Collected {
			missing = append(missing, string(it.ID))
		}
	}
	if len(missing) > 0 {
		fmt.Fprintf(&sb, "  missing: %s", strings.Join(missing, ", "))
	}
	sb.WriteByte('\n')
	for _, a := range f.Adversaries {
		fmt.Fprintf(&sb, "Adversary %s: %v facing %v\n", a.ID, a.Position, a.Facing)
	}
	st := s.stats
	fmt.Fprintf(&sb, "Moves: %d (blocked %d)  caught: %d  wraps: %d  camera rejects: %d\n",
		st.Moves, st.Blocked, st.Caught, st.Wraps, st.CameraRejects)
	fmt.Fprintf(&sb, "Trace: %s\n", s.TraceDigest()[:16])
	return sb.String()
}

// TraceDigest hashes the event log, ignoring camera entries. Two sessions
// built from the same scene and fed the same moves and ticks produce the
// same digest.
func (s *Session) TraceDigest() string {
	h, _ := blake2b.New256(nil) // only fails for oversized keys
	for _, e := range s.events.Entries() {
		if e.Category == "camera" {
			continue
		}
		fmt.Fprintln(h, e.String())
	}
	return hex.EncodeToString(h.Sum(nil))
}
