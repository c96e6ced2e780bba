package patrol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedSherif9/HideAndSeek/internal/grid"
)

func scenarioScript() *Script {
	return NewScript("yard", []Step{
		{Tick: 1798, DY: -1},
		{Tick: 1774, DX: -1, Facing: Face(grid.West)},
	})
}

func newRig(t *testing.T, scripts ...*Script) (*Engine, *Clock) {
	t.Helper()
	e, err := NewEngine(scripts...)
	require.NoError(t, err)
	floor := DefaultStart - 100
	for _, s := range scripts {
		if low, ok := s.LowestTick(); ok && low > floor {
			floor = low
		}
	}
	c, err := NewClock(DefaultStart, floor)
	require.NoError(t, err)
	return e, c
}

func TestScriptedScenario(t *testing.T) {
	s := scenarioScript()
	e, err := NewEngine(s)
	require.NoError(t, err)
	c, err := NewClock(1800, 1774)
	require.NoError(t, err)
	w := NewWalker("yard", Local{}, grid.North)

	e.Tick(c, []*Walker{w})
	assert.Equal(t, 1799, c.Value())
	assert.Equal(t, Local{}, w.Local)

	e.Tick(c, []*Walker{w})
	assert.Equal(t, 1798, c.Value())
	assert.Equal(t, Local{X: 0, Y: -1}, w.Local)
	assert.Equal(t, grid.North, w.Facing)

	for i := 0; i < 24; i++ {
		e.Tick(c, []*Walker{w})
	}
	assert.Equal(t, 1774, c.Value())
	assert.Equal(t, Local{X: -1, Y: -1}, w.Local)
	assert.Equal(t, grid.West, w.Facing)
}

func TestClockWrapsAfterFloorAndPatrolLoops(t *testing.T) {
	e, err := NewEngine(scenarioScript())
	require.NoError(t, err)
	c, err := NewClock(1800, 1774)
	require.NoError(t, err)
	w := NewWalker("yard", Local{X: 2, Y: 3}, grid.South)

	for i := 0; i < 26; i++ {
		e.Tick(c, []*Walker{w})
	}
	adv := e.Tick(c, []*Walker{w})
	assert.True(t, adv.Wrapped)
	assert.Equal(t, 1800, c.Value())
	assert.Equal(t, Local{X: 2, Y: 3}, w.Local, "walker returns to origin on wrap")
	assert.Equal(t, grid.South, w.Facing)
	assert.Equal(t, 27, c.Period())

	// second lap repeats the first
	for i := 0; i < 2; i++ {
		e.Tick(c, []*Walker{w})
	}
	assert.Equal(t, Local{X: 2, Y: 2}, w.Local)
}

func TestCollidingStepsApplyInDeclaredOrder(t *testing.T) {
	s := NewScript("twice", []Step{
		{Tick: 1799, DX: 1, Facing: Face(grid.East)},
		{Tick: 1799, DY: 2, Facing: Face(grid.South)},
	})
	e, c := newRig(t, s)
	w := NewWalker("twice", Local{}, grid.North)

	adv := e.Tick(c, []*Walker{w})
	assert.Equal(t, 2, adv.Applied)
	assert.Equal(t, Local{X: 1, Y: 2}, w.Local)
	assert.Equal(t, grid.South, w.Facing, "last declared facing wins")
}

func TestPatrolIsDeterministic(t *testing.T) {
	steps := []Step{}
	for tick := 1799; tick > 1700; tick -= 3 {
		steps = append(steps, Step{Tick: tick, DX: tick % 2, DY: -(tick % 3)})
	}
	run := func() []grid.Position {
		s := NewScript("loop", steps)
		e, c := newRig(t, s)
		a := NewWalker("loop", Local{X: 1}, grid.East)
		b := NewWalker("loop", Local{Y: -4}, grid.West)
		var trace []grid.Position
		for i := 0; i < 500; i++ {
			e.Tick(c, []*Walker{a, b})
			trace = append(trace, a.WorldPosition(grid.Step), b.WorldPosition(grid.Step))
		}
		return trace
	}
	assert.Equal(t, run(), run())
}

func TestLocalToWorldTransform(t *testing.T) {
	assert.Equal(t, grid.Pos(300, -200), Local{X: 2, Y: 3}.World(grid.Step))
	assert.Equal(t, grid.Pos(-100, 100), Local{X: -1, Y: -1}.World(grid.Step))
	assert.True(t, Local{X: 7, Y: -5}.World(grid.Step).Aligned(grid.Step))
}

func TestEngineValidate(t *testing.T) {
	s := NewScript("bad", []Step{{Tick: 1800}, {Tick: 1500}})
	e, err := NewEngine(s)
	require.NoError(t, err)
	c, err := NewClock(1800, 1600)
	require.NoError(t, err)

	err = e.Validate(c, []*Walker{NewWalker("missing", Local{}, grid.North)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tick 1800")
	assert.Contains(t, err.Error(), "tick 1500")
	assert.Contains(t, err.Error(), `unknown script "missing"`)
}

func TestDuplicateScriptNames(t *testing.T) {
	_, err := NewEngine(NewScript("a", nil), NewScript("a", nil))
	assert.Error(t, err)
}

func TestNewClockRejectsInvertedRange(t *testing.T) {
	_, err := NewClock(10, 10)
	assert.Error(t, err)
}

func TestUnknownScriptWalkerStaysPut(t *testing.T) {
	e, c := newRig(t, scenarioScript())
	w := NewWalker("nope", Local{X: 1, Y: 1}, grid.North)
	for i := 0; i < 10; i++ {
		e.Tick(c, []*Walker{w})
	}
	assert.Equal(t, Local{X: 1, Y: 1}, w.Local)
}
