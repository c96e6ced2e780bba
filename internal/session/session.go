// Package session integrates the world, the camera and the feedback
// channels into one single-threaded game session. Every input, timer tick
// and frame request runs to completion before the next one starts.
package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/AhmedSherif9/HideAndSeek/internal/camera"
	"github.com/AhmedSherif9/HideAndSeek/internal/grid"
	"github.com/AhmedSherif9/HideAndSeek/internal/patrol"
	"github.com/AhmedSherif9/HideAndSeek/internal/world"
)

var (
	// ErrOver is returned by Move once the session has been won, or lost
	// under the halt-on-lose policy.
	ErrOver = errors.New("session: over")
	// ErrNoWorld is returned by New without a world.
	ErrNoWorld = errors.New("session: no world")
	// ErrUnknownAxis is returned for a camera axis the operation lacks.
	ErrUnknownAxis = errors.New("session: unknown axis")
)

// Axis selects a camera axis. X pans right and pitches, Y pans up and
// yaws, Z dollies forward.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithNotifier routes pickup, blocked, cue and outcome feedback to n.
func WithNotifier(n Notifier) Option {
	return func(s *Session) {
		if n != nil {
			s.notify = n
		}
	}
}

// WithLogger sets the structured logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHaltOnLose ends the session the first time the avatar is caught.
// Without it being caught is reported but play continues.
func WithHaltOnLose(halt bool) Option {
	return func(s *Session) {
		s.haltOnLose = halt
	}
}

// WithEventLog records into an existing log.
func WithEventLog(l *EventLog) Option {
	return func(s *Session) {
		if l != nil {
			s.events = l
		}
	}
}

// Stats are running counters for reports.
type Stats struct {
	Ticks         int
	Moves         int
	Blocked       int
	Caught        int // times the avatar was newly caught
	Wraps         int
	CameraRejects int
}

// Session owns one playthrough.
type Session struct {
	world      *world.World
	cam        camera.Camera
	events     *EventLog
	notify     Notifier
	logger     *slog.Logger
	haltOnLose bool

	state world.GameState
	over  bool
	stats Stats
}

// New starts a session on w viewed through cam and evaluates the initial
// state.
func New(w *world.World, cam camera.Camera, opts ...Option) (*Session, error) {
	if w == nil {
		return nil, ErrNoWorld
	}
	if err := cam.Validate(); err != nil {
		return nil, fmt.Errorf("session camera: %w", err)
	}
	s := &Session{
		world:  w,
		cam:    cam,
		events: NewEventLog(),
		notify: Nop{},
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	s.evaluate()
	return s, nil
}

func (s *Session) record(actor, category, key, value string, num float64) {
	s.events.Add(Entry{
		Tick:     s.stats.Ticks,
		Clock:    s.world.Clock().Value(),
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   num,
	})
}

// Move steps the avatar one cell. A blocked move is a normal result. After
// an accepted move the pickup check, sound zones and win/lose evaluation
// all complete before Move returns.
func (s *Session) Move(dir grid.Direction) (world.Move, error) {
	if s.over {
		return world.Move{}, ErrOver
	}
	id := s.world.AvatarID()
	mv, err := s.world.TryMove(id, dir)
	if err != nil {
		return mv, err
	}
	s.stats.Moves++

	if mv.Result == world.Blocked {
		s.stats.Blocked++
		s.record(string(id), "move", "blocked", fmt.Sprintf("%v %v", mv.From, dir), 0)
		s.logger.Debug("move blocked", "from", mv.From, "dir", dir)
		s.notify.Blocked(mv)
		return mv, nil
	}

	s.record(string(id), "move", "moved", fmt.Sprintf("%v -> %v", mv.From, mv.To), 0)
	s.logger.Debug("moved", "from", mv.From, "to", mv.To)

	reg := s.world.Registry()
	for _, ev := range s.world.CheckPickup() {
		n := reg.CollectedCount()
		s.record(string(ev.ID), "pickup", "collected", fmt.Sprintf("at %v (%d/%d)", ev.At, n, reg.Len()), float64(n))
		s.logger.Info("collected", "item", ev.ID, "at", ev.At, "count", n, "total", reg.Len())
		s.notify.Collected(ev)
	}
	for _, ev := range s.world.CuesAt() {
		s.record(string(id), "cue", ev.Cue, ev.At.String(), 0)
		s.notify.Cue(ev)
	}
	s.evaluate()
	return mv, nil
}

// Tick advances the countdown clock and the patrols by one tick, then
// re-evaluates. It does nothing once the session is over.
func (s *Session) Tick() patrol.Advance {
	clock := s.world.Clock()
	if s.over {
		return patrol.Advance{Clock: clock.Value()}
	}
	before := s.world.Adversaries()
	s.stats.Ticks++
	adv := s.world.Tick()

	if adv.Wrapped {
		s.stats.Wraps++
		s.record("--", "patrol", "wrapped", fmt.Sprintf("clock reset to %d", adv.Clock), float64(s.stats.Wraps))
		s.logger.Debug("patrol clock wrapped", "clock", adv.Clock, "wraps", s.stats.Wraps)
	}
	for i, e := range s.world.Adversaries() {
		if e.Position == before[i].Position && e.Facing == before[i].Facing {
			continue
		}
		s.record(string(e.ID), "patrol", "step", fmt.Sprintf("%v %v", e.Position, e.Facing), 0)
	}
	s.evaluate()
	return adv
}

// evaluate recomputes the game state and reacts to changes.
func (s *Session) evaluate() {
	prev := s.state
	s.state = s.world.State()

	if s.state.Lost && !prev.Lost {
		s.stats.Caught++
		pos := s.world.Avatar().Position
		s.record(string(s.world.AvatarID()), "outcome", "caught", pos.String(), float64(s.stats.Caught))
		s.logger.Info("avatar caught", "at", pos, "times", s.stats.Caught)
	}
	if o := s.state.Outcome(); o != prev.Outcome() {
		s.record("--", "outcome", "changed", fmt.Sprintf("%v -> %v", prev.Outcome(), o), 0)
		s.notify.OutcomeChanged(o)
	}
	if s.state.Won || (s.state.Lost && s.haltOnLose) {
		s.over = true
		s.record("--", "outcome", "over", s.state.Outcome().String(), 0)
		s.logger.Info("session over", "outcome", s.state.Outcome(), "ticks", s.stats.Ticks, "moves", s.stats.Moves)
	}
}

// Pan translates the camera rigidly: X right, Y up, Z forward.
func (s *Session) Pan(axis Axis, d float64) error {
	var err error
	switch axis {
	case AxisX:
		err = s.cam.MoveRight(d)
	case AxisY:
		err = s.cam.MoveUp(d)
	case AxisZ:
		err = s.cam.MoveForward(d)
	default:
		return fmt.Errorf("%w: pan %v", ErrUnknownAxis, axis)
	}
	return s.cameraResult("pan", axis, d, err)
}

// Rotate turns the camera about its eye: X pitches, Y yaws. Angles are in
// degrees. A rotation that would leave a degenerate frame is rejected and
// the camera keeps its previous orientation.
func (s *Session) Rotate(axis Axis, a float64) error {
	var err error
	switch axis {
	case AxisX:
		err = s.cam.RotatePitch(a)
	case AxisY:
		err = s.cam.RotateYaw(a)
	default:
		return fmt.Errorf("%w: rotate %v", ErrUnknownAxis, axis)
	}
	return s.cameraResult("rotate", axis, a, err)
}

func (s *Session) cameraResult(op string, axis Axis, amount float64, err error) error {
	if err == nil {
		return nil
	}
	s.stats.CameraRejects++
	s.record("camera", "camera", "rejected", fmt.Sprintf("%s %v %.2f: %v", op, axis, amount, err), amount)
	s.logger.Debug("camera operation rejected", "op", op, "axis", axis, "amount", amount, "err", err)
	return err
}

// ResetCamera replaces the camera when c is a valid frame.
func (s *Session) ResetCamera(c camera.Camera) error {
	if err := c.Validate(); err != nil {
		return s.cameraResult("reset", AxisX, 0, err)
	}
	s.cam = c
	return nil
}

// Camera returns a copy of the current camera.
func (s *Session) Camera() camera.Camera {
	return s.cam
}

// State returns the last evaluated game state. A nil session is neither
// won nor lost.
func (s *Session) State() world.GameState {
	if s == nil {
		return world.GameState{}
	}
	return s.state
}

// Outcome collapses State into one value.
func (s *Session) Outcome() world.Outcome {
	return s.State().Outcome()
}

// Over reports whether the session stopped accepting moves and ticks.
func (s *Session) Over() bool {
	return s.over
}

// Stats returns the running counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// Events returns the session's event log.
func (s *Session) Events() *EventLog {
	return s.events
}

// Avatar returns a snapshot of the player.
func (s *Session) Avatar() world.Entity {
	return s.world.Avatar()
}

// Adversaries returns adversary snapshots in world coordinates.
func (s *Session) Adversaries() []world.Entity {
	return s.world.Adversaries()
}
