package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedSherif9/HideAndSeek/internal/config"
	"github.com/AhmedSherif9/HideAndSeek/internal/grid"
	"github.com/AhmedSherif9/HideAndSeek/internal/session"
	"github.com/AhmedSherif9/HideAndSeek/internal/world"
)

// oneAppleScene has a single apple one step east of the start, which is
// also the win square.
func oneAppleScene() config.Scene {
	sc := config.Base()
	sc.Name = "one-apple"
	sc.Collectibles = []config.CollectibleConfig{{ID: "apple", At: config.Point{X: 100, Z: 0}}}
	sc.WinZone = []config.Point{{X: 100, Z: 0}}
	return sc
}

func TestParseMoves(t *testing.T) {
	steps, err := parseMoves("N e. S,w")
	require.NoError(t, err)
	require.Len(t, steps, 5)
	assert.Equal(t, grid.North, steps[0].dir)
	assert.Equal(t, grid.East, steps[1].dir)
	assert.True(t, steps[2].wait)
	assert.Equal(t, grid.South, steps[3].dir)
	assert.Equal(t, grid.West, steps[4].dir)

	_, err = parseMoves("NX")
	assert.Error(t, err)
}

func TestRunOnce_WinsOnFirstMove(t *testing.T) {
	steps, err := parseMoves("E")
	require.NoError(t, err)

	rs, err := runOnce(context.Background(), 1, oneAppleScene(), plan{ticks: 50, moves: steps, moveEvery: 1})
	require.NoError(t, err)
	assert.Equal(t, world.OutcomeWon, rs.outcome)
	assert.True(t, rs.over)
	assert.Equal(t, 1, rs.collected)
	assert.Equal(t, 1, rs.total)
	assert.Equal(t, 0, rs.firstPickupTick)
	assert.Equal(t, 0, rs.overTick)
	assert.Equal(t, 0, rs.ticks, "no ticks after the session is over")
	assert.Equal(t, -1, rs.firstCaughtTick)
}

func TestRunOnce_WaitsAndBlockedMovesCount(t *testing.T) {
	sc := oneAppleScene()
	sc.Walls = []config.WallConfig{{At: config.Point{X: 0, Z: 0}, Dir: "north"}}
	steps, err := parseMoves("N.N")
	require.NoError(t, err)

	rs, err := runOnce(context.Background(), 1, sc, plan{ticks: 10, moves: steps, moveEvery: 2})
	require.NoError(t, err)
	assert.Equal(t, world.OutcomeInProgress, rs.outcome)
	assert.Equal(t, 2, rs.moves)
	assert.Equal(t, 2, rs.blocked)
	assert.Equal(t, 10, rs.ticks)
}

func TestRunAll_DefaultSceneIsDeterministic(t *testing.T) {
	steps, err := parseMoves("NNEESSWW..NESW")
	require.NoError(t, err)
	p := plan{ticks: 400, moves: steps, moveEvery: 3}

	all, err := runAll(context.Background(), config.DefaultScene(), p, 6, 3)
	require.NoError(t, err)
	require.Len(t, all, 6)
	for i, rs := range all {
		assert.Equal(t, i+1, rs.runIndex)
	}
	assert.True(t, deterministic(all))
	assert.Greater(t, all[0].wraps, 0, "400 ticks pass the default patrol's floor")
}

func TestRunAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runAll(ctx, config.DefaultScene(), plan{ticks: 10, moveEvery: 1}, 2, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFirstTick(t *testing.T) {
	log := session.NewEventLog()
	log.Add(session.Entry{Tick: 3, Category: "pickup", Key: "collected"})
	log.Add(session.Entry{Tick: 8, Category: "pickup", Key: "collected"})

	assert.Equal(t, 3, firstTick(log, "pickup", "collected"))
	assert.Equal(t, -1, firstTick(log, "outcome", "over"))
}

func TestDeterministic_DetectsDivergence(t *testing.T) {
	assert.True(t, deterministic(nil))
	assert.True(t, deterministic([]runStats{{digest: "a"}, {digest: "a"}}))
	assert.False(t, deterministic([]runStats{{digest: "a"}, {digest: "b"}}))
}

func TestPrintAggregate(t *testing.T) {
	all := []runStats{
		{runIndex: 1, outcome: world.OutcomeWon, collected: 7, digest: "x"},
		{runIndex: 2, outcome: world.OutcomeCaught, collected: 3, caught: 1, digest: "y"},
	}
	var buf bytes.Buffer
	printAggregate(&buf, all)
	out := buf.String()
	assert.Contains(t, out, "runs=2")
	assert.Contains(t, out, "caught=1 won=1")
	assert.Contains(t, out, "collected=5.0")
	assert.Contains(t, out, "DIVERGED (2 distinct)")
}
