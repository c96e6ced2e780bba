// Package vecmath provides the small amount of 3D vector algebra the camera
// rig and the frontend projection need.
package vecmath

import (
	"errors"
	"math"
)

var (
	// ErrDivideByZero is returned by Divide when the divisor is zero.
	ErrDivideByZero = errors.New("vecmath: divide by zero")
	// ErrDegenerateVector is returned by Normalize for a zero-length vector.
	ErrDegenerateVector = errors.New("vecmath: degenerate vector")
)

// Epsilon is the tolerance used by ApproxEqual and the degeneracy checks.
const Epsilon = 1e-9

// Vec3 is an immutable 3D vector. Every operation returns a new value.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * n.
func (v Vec3) Scale(n float64) Vec3 { return Vec3{v.X * n, v.Y * n, v.Z * n} }

// Divide returns v / n, or ErrDivideByZero when n is zero.
func (v Vec3) Divide(n float64) (Vec3, error) {
	if n == 0 {
		return Vec3{}, ErrDivideByZero
	}
	return Vec3{v.X / n, v.Y / n, v.Z / n}, nil
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSq returns the squared magnitude.
func (v Vec3) LengthSq() float64 { return v.Dot(v) }

// Length returns the Euclidean magnitude.
func (v Vec3) Length() float64 { return math.Sqrt(v.LengthSq()) }

// Normalize returns the unit vector pointing along v.
// A zero-length (or non-finite) vector yields ErrDegenerateVector.
func (v Vec3) Normalize() (Vec3, error) {
	mag := v.Length()
	if mag < Epsilon || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return Vec3{}, ErrDegenerateVector
	}
	return v.Divide(mag)
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether every component of v and o differs by at most tol.
func (v Vec3) ApproxEqual(o Vec3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol && math.Abs(v.Z-o.Z) <= tol
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(a float64) float64 { return a * math.Pi / 180 }
