package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	assert.Equal(t, V3(5, -3, 9), a.Add(b))
	assert.Equal(t, V3(-3, 7, -3), a.Sub(b))
	assert.Equal(t, V3(2, 4, 6), a.Scale(2))
	assert.Equal(t, 12.0, a.Dot(b))

	// operands are untouched
	assert.Equal(t, V3(1, 2, 3), a)
}

func TestVec3Divide(t *testing.T) {
	v, err := V3(2, 4, 8).Divide(2)
	require.NoError(t, err)
	assert.Equal(t, V3(1, 2, 4), v)

	_, err = V3(1, 1, 1).Divide(0)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestVec3Cross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	z := V3(0, 0, 1)

	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, Vec3{}, x.Cross(x), "parallel vectors have zero cross product")
}

func TestVec3Normalize(t *testing.T) {
	n, err := V3(3, 0, 4).Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
	assert.True(t, n.ApproxEqual(V3(0.6, 0, 0.8), 1e-12))

	_, err = Vec3{}.Normalize()
	assert.ErrorIs(t, err, ErrDegenerateVector)

	_, err = V3(math.NaN(), 0, 0).Normalize()
	assert.ErrorIs(t, err, ErrDegenerateVector)
}

func TestLookAtMapsCenterOntoNegativeZ(t *testing.T) {
	eye := V3(0, 0, 10)
	m, err := LookAt(eye, V3(0, 0, 0), V3(0, 1, 0))
	require.NoError(t, err)

	x, y, z, w := m.Transform(V3(0, 0, 0))
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)
	assert.InDelta(t, -10, z, 1e-12)
	assert.InDelta(t, 1, w, 1e-12)

	x, _, _, _ = m.Transform(V3(1, 0, 0))
	assert.InDelta(t, 1, x, 1e-12, "world +X stays to the right when looking down -Z")
}

func TestLookAtDegenerate(t *testing.T) {
	_, err := LookAt(V3(0, 0, 0), V3(0, 10, 0), V3(0, 1, 0))
	assert.ErrorIs(t, err, ErrDegenerateVector)
}

func TestPerspectiveCentersAxis(t *testing.T) {
	p := Perspective(45, 16.0/9.0, 0.1, 4800)
	x, y, _, w := p.Transform(V3(0, 0, -100))
	assert.InDelta(t, 0, x/w, 1e-12)
	assert.InDelta(t, 0, y/w, 1e-12)
	assert.InDelta(t, 100, w, 1e-9)
}

func TestMat4MulIdentity(t *testing.T) {
	p := Perspective(60, 1, 1, 100)
	assert.Equal(t, p, Identity().Mul(p))
	assert.Equal(t, p, p.Mul(Identity()))
}
