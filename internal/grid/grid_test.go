package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionDeltas(t *testing.T) {
	origin := Pos(0, 0)
	assert.Equal(t, Pos(0, 100), origin.Add(North, Step))
	assert.Equal(t, Pos(100, 0), origin.Add(East, Step))
	assert.Equal(t, Pos(0, -100), origin.Add(South, Step))
	assert.Equal(t, Pos(-100, 0), origin.Add(West, Step))
}

func TestDirectionOppositeAndYaw(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())
		p := Pos(300, -200)
		assert.Equal(t, p, p.Add(d, Step).Add(d.Opposite(), Step))
	}
	assert.Equal(t, 0.0, North.Yaw())
	assert.Equal(t, 90.0, East.Yaw())
	assert.Equal(t, 180.0, South.Yaw())
	assert.Equal(t, 270.0, West.Yaw())
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"north", North},
		{"E", East},
		{" South ", South},
		{"w", West},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
	_, err := ParseDirection("up")
	assert.Error(t, err)
}

func TestPositionAligned(t *testing.T) {
	assert.True(t, Pos(-300, 600).Aligned(Step))
	assert.False(t, Pos(150, 0).Aligned(Step))
	assert.False(t, Pos(0, 0).Aligned(0))
}

func TestObstacleMapIsDirectional(t *testing.T) {
	om := NewObstacleMap()
	om.Block(Pos(0, 0), North)

	assert.True(t, om.Blocked(Pos(0, 0), North, Pos(0, 100)))
	assert.False(t, om.Blocked(Pos(0, 100), South, Pos(0, 0)), "reverse edge stays open")
	assert.False(t, om.Blocked(Pos(0, 0), East, Pos(100, 0)))
	assert.Len(t, om.Edges(), 1)
}

func TestObstacleMapBlockBoth(t *testing.T) {
	om := NewObstacleMap()
	om.BlockBoth(Pos(0, 0), East, Step)

	assert.True(t, om.Blocked(Pos(0, 0), East, Pos(100, 0)))
	assert.True(t, om.Blocked(Pos(100, 0), West, Pos(0, 0)))
	assert.Len(t, om.Edges(), 2)
}

func TestObstacleMapBounds(t *testing.T) {
	om := NewObstacleMap()
	om.SetBounds(Bounds{Min: Pos(-100, -100), Max: Pos(100, 100)})

	assert.False(t, om.Blocked(Pos(0, 0), East, Pos(100, 0)))
	assert.True(t, om.Blocked(Pos(100, 0), East, Pos(200, 0)))
	b, ok := om.Bounds()
	require.True(t, ok)
	assert.True(t, b.Contains(Pos(-100, 100)))
}

func TestNilObstacleMapBlocksNothing(t *testing.T) {
	var om *ObstacleMap
	assert.False(t, om.Blocked(Pos(0, 0), North, Pos(0, 100)))
}
