package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedSherif9/HideAndSeek/internal/camera"
	"github.com/AhmedSherif9/HideAndSeek/internal/vecmath"
)

var testLens = lens{fovy: 90, near: 0.1, far: 1000}

// levelProjector looks from (0,0,10) toward the origin along -Z.
func levelProjector(t *testing.T) projector {
	t.Helper()
	cam := camera.New(vecmath.V3(0, 0, 10), vecmath.V3(0, 0, 0), vecmath.V3(0, 1, 0))
	view, err := cam.LookAt()
	require.NoError(t, err)
	return newProjector(view, testLens, 200, 100)
}

func TestProjector_CenterMapsToMiddle(t *testing.T) {
	p := levelProjector(t)
	x, y, ok := p.point(vecmath.V3(0, 0, 0))
	require.True(t, ok)
	assert.InDelta(t, 100, x, 1e-3)
	assert.InDelta(t, 50, y, 1e-3)
}

func TestProjector_AxesOnScreen(t *testing.T) {
	p := levelProjector(t)
	// fovy 90 at distance 10: y=10 sits on the top edge.
	_, y, ok := p.point(vecmath.V3(0, 10, 0))
	require.True(t, ok)
	assert.InDelta(t, 0, y, 1e-3)

	x, _, ok := p.point(vecmath.V3(5, 0, 0))
	require.True(t, ok)
	assert.Greater(t, x, float32(100), "+X is to the right when looking down -Z")
}

func TestProjector_BehindEyeIsRejected(t *testing.T) {
	p := levelProjector(t)
	_, _, ok := p.point(vecmath.V3(0, 0, 20))
	assert.False(t, ok)
	assert.Zero(t, p.scale(vecmath.V3(0, 0, 20), 1))
}

func TestProjector_SegmentClipsAtEye(t *testing.T) {
	p := levelProjector(t)
	_, _, _, _, ok := p.segment(vecmath.V3(0, 0, 20), vecmath.V3(1, 0, 30))
	assert.False(t, ok, "fully behind")

	x0, y0, x1, y1, ok := p.segment(vecmath.V3(0, 0, 0), vecmath.V3(0, 0, 20))
	require.True(t, ok)
	assert.InDelta(t, 100, x0, 1e-3)
	assert.InDelta(t, 50, y0, 1e-3)
	assert.InDelta(t, 100, x1, 1e-3, "clipped end stays on the view axis")
	assert.InDelta(t, 50, y1, 1e-3)
}

func TestProjector_ScaleShrinksWithDistance(t *testing.T) {
	p := levelProjector(t)
	near := p.scale(vecmath.V3(0, 0, 5), 1)
	far := p.scale(vecmath.V3(0, 0, -90), 1)
	assert.Greater(t, near, far)
	// at distance 10 a unit length covers 1/10 of the half height
	assert.InDelta(t, 5, p.scale(vecmath.V3(0, 0, 0), 1), 1e-3)
}
