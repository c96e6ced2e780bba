package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedSherif9/HideAndSeek/internal/grid"
	"github.com/AhmedSherif9/HideAndSeek/internal/patrol"
)

func TestBlockedThenMovedScenario(t *testing.T) {
	w := NewTestWorld(WithAvatarAt(0, 0), WithWall(0, 0, grid.North))
	id := w.AvatarID()

	m, err := w.TryMove(id, grid.North)
	require.NoError(t, err)
	assert.Equal(t, Blocked, m.Result)
	pos, _ := w.PositionOf(id)
	assert.Equal(t, grid.Pos(0, 0), pos)
	assert.Equal(t, grid.North, w.Avatar().Facing, "facing unchanged when blocked")

	m, err = w.TryMove(id, grid.East)
	require.NoError(t, err)
	assert.Equal(t, Moved, m.Result)
	pos, _ = w.PositionOf(id)
	assert.Equal(t, grid.Pos(100, 0), pos)
	assert.Equal(t, grid.East, w.Avatar().Facing)
}

func TestMovedLandsOneStepAway(t *testing.T) {
	w := NewTestWorld(
		WithBounds(-300, -300, 300, 300),
		WithWall(100, 0, grid.East),
		WithWall(0, 100, grid.South),
	)
	id := w.AvatarID()
	rng := rand.New(rand.NewSource(7)) // #nosec G404 -- test only
	for i := 0; i < 2000; i++ {
		from, _ := w.PositionOf(id)
		dir := grid.Directions[rng.Intn(len(grid.Directions))]
		m, err := w.TryMove(id, dir)
		require.NoError(t, err)
		to, _ := w.PositionOf(id)

		switch m.Result {
		case Moved:
			assert.Equal(t, from.Add(dir, grid.Step), to)
		case Blocked:
			assert.Equal(t, from, to)
			// the map is static: retrying gives the same answer
			again, err := w.TryMove(id, dir)
			require.NoError(t, err)
			assert.Equal(t, Blocked, again.Result)
		}
		require.True(t, to.Aligned(grid.Step), "position %v off grid", to)
		b, _ := w.Obstacles().Bounds()
		require.True(t, b.Contains(to))
	}
}

func TestPickupScenario(t *testing.T) {
	opts := []TestOption{
		WithCollectible("C1", grid.Pos(0, 600)),
		WithWinZone(grid.Pos(0, 600)),
	}
	for i := 2; i <= 7; i++ {
		opts = append(opts, WithCollectible("C"+string(rune('0'+i)), grid.Pos(i*100, -500)))
	}
	w := NewTestWorld(opts...)
	id := w.AvatarID()

	for i := 0; i < 6; i++ {
		_, err := w.TryMove(id, grid.North)
		require.NoError(t, err)
	}
	events := w.CheckPickup()
	require.Len(t, events, 1)
	assert.Equal(t, EntityID("C1"), events[0].ID)

	c1, ok := w.Registry().Get("C1")
	require.True(t, ok)
	assert.True(t, c1.Collected())
	assert.True(t, w.WinZone().Contains(grid.Pos(0, 600)))
	assert.False(t, w.State().Won, "C2..C7 still outstanding")
	assert.Equal(t, 1, w.Registry().CollectedCount())
}

func TestPickupIsIdempotent(t *testing.T) {
	w := NewTestWorld(
		WithCollectible("apple", grid.Pos(100, 0), grid.Pos(0, 100)),
		WithCollectible("coin", grid.Pos(100, 0)),
	)
	id := w.AvatarID()
	_, err := w.TryMove(id, grid.East)
	require.NoError(t, err)

	first := w.CheckPickup()
	assert.Len(t, first, 2)
	assert.Empty(t, w.CheckPickup())

	// the second trigger of an already collected item does nothing
	_, _ = w.TryMove(id, grid.West)
	_, _ = w.TryMove(id, grid.North)
	assert.Empty(t, w.CheckPickup())
	for _, c := range w.Registry().Items() {
		assert.True(t, c.Collected())
	}
}

func TestWinRequiresEverything(t *testing.T) {
	w := NewTestWorld(
		WithCollectible("a", grid.Pos(100, 0)),
		WithCollectible("b", grid.Pos(200, 0)),
		WithWinZone(grid.Pos(0, 0), grid.Pos(100, 0)),
	)
	reg := w.Registry()
	for x := -500; x <= 500; x += 100 {
		for z := -500; z <= 500; z += 100 {
			assert.False(t, EvaluateWin(grid.Pos(x, z), w.WinZone(), reg))
		}
	}
	reg.CheckPickup(grid.Pos(100, 0))
	assert.False(t, EvaluateWin(grid.Pos(0, 0), w.WinZone(), reg))
	reg.CheckPickup(grid.Pos(200, 0))
	assert.True(t, EvaluateWin(grid.Pos(0, 0), w.WinZone(), reg))
	assert.False(t, EvaluateWin(grid.Pos(200, 0), w.WinZone(), reg), "outside the win zone")
}

func TestFullRunWins(t *testing.T) {
	w := NewTestWorld(
		WithCollectible("a", grid.Pos(100, 0)),
		WithWinZone(grid.Pos(0, 0)),
	)
	id := w.AvatarID()
	_, _ = w.TryMove(id, grid.East)
	w.CheckPickup()
	assert.False(t, w.State().Won)
	_, _ = w.TryMove(id, grid.West)
	assert.True(t, w.State().Won)
	assert.Equal(t, OutcomeWon, w.State().Outcome())
}

func TestLoseWhenOnAdversarySquare(t *testing.T) {
	w := NewTestWorld(
		WithClock(1800, 1790),
		WithScript("step", patrol.Step{Tick: 1799, DY: 1}),
		WithAdversary("guard", "step", patrol.Local{X: 0, Y: 0}),
	)
	// guard starts on the avatar's square
	assert.True(t, w.State().Lost)

	id := w.AvatarID()
	_, _ = w.TryMove(id, grid.North)
	assert.False(t, w.State().Lost)

	w.Tick()
	guard, ok := w.PositionOf("guard")
	require.True(t, ok)
	assert.Equal(t, grid.Pos(100, 0), guard, "local Y maps to world X")

	_, _ = w.TryMove(id, grid.South)
	_, _ = w.TryMove(id, grid.East)
	assert.True(t, w.State().Lost)
	assert.Equal(t, OutcomeCaught, w.State().Outcome())
}

func TestEvaluateBeforeInitialisation(t *testing.T) {
	var w *World
	assert.Equal(t, GameState{}, w.State())
	assert.False(t, EvaluateWin(grid.Pos(0, 0), nil, nil))
	assert.False(t, EvaluateLose(grid.Pos(0, 0), nil))

	var reg *Registry
	assert.Empty(t, reg.CheckPickup(grid.Pos(0, 0)))
	assert.False(t, reg.AllCollected())
}

func TestSoundCues(t *testing.T) {
	w := NewTestWorld(
		WithSoundZone("creak", grid.Pos(0, 100)),
		WithSoundZone("bell", grid.Pos(0, 100), grid.Pos(0, 200)),
	)
	assert.Empty(t, w.CuesAt())
	_, _ = w.TryMove(w.AvatarID(), grid.North)
	cues := w.CuesAt()
	require.Len(t, cues, 2)
	assert.Equal(t, "creak", cues[0].Cue)
	assert.Equal(t, "bell", cues[1].Cue)
}

func TestTryMoveErrors(t *testing.T) {
	w := NewTestWorld(
		WithCollectible("apple", grid.Pos(100, 0)),
		WithScript("idle"),
		WithAdversary("guard", "idle", patrol.Local{X: 3}),
	)
	_, err := w.TryMove("ghost", grid.North)
	assert.ErrorIs(t, err, ErrUnknownEntity)
	_, err = w.TryMove("guard", grid.North)
	assert.ErrorIs(t, err, ErrNotMovable)
	_, err = w.TryMove("apple", grid.North)
	assert.ErrorIs(t, err, ErrNotMovable)
	_, err = w.TryMove(w.AvatarID(), grid.Direction(9))
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestNewRejectsBadSetup(t *testing.T) {
	tests := []struct {
		name string
		opts []TestOption
	}{
		{"unaligned start", []TestOption{WithAvatarAt(50, 0)}},
		{"start outside bounds", []TestOption{WithBounds(100, 100, 200, 200)}},
		{"duplicate collectible", []TestOption{
			WithCollectible("a", grid.Pos(100, 0)),
			WithCollectible("a", grid.Pos(200, 0)),
		}},
		{"collectible without triggers", []TestOption{WithCollectible("a")}},
		{"unaligned trigger", []TestOption{WithCollectible("a", grid.Pos(10, 0))}},
		{"unknown script", []TestOption{WithAdversary("g", "nope", patrol.Local{})}},
		{"step outside clock", []TestOption{
			WithClock(100, 50),
			WithScript("s", patrol.Step{Tick: 10}),
		}},
		{"adversary id clash", []TestOption{
			WithCollectible("a", grid.Pos(100, 0)),
			WithScript("s"),
			WithAdversary("a", "s", patrol.Local{}),
		}},
		{"bad step", []TestOption{WithStep(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(TestSetup(tt.opts...))
			assert.ErrorIs(t, err, ErrInvalidSetup)
		})
	}
}
