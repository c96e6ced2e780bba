// Package camera implements the free-roaming view rig: an eye, a look-at
// center and an up vector, moved and turned relative to the current frame.
package camera

import (
	"errors"
	"math"

	"github.com/AhmedSherif9/HideAndSeek/internal/vecmath"
)

// ErrDegenerateOrientation is returned when up and the view direction are
// (nearly) parallel, leaving no usable right vector. The camera is unchanged.
var ErrDegenerateOrientation = errors.New("camera: degenerate orientation")

// ErrNonFinite is returned for a NaN or infinite translation amount.
var ErrNonFinite = errors.New("camera: non-finite amount")

// minRightLength is the smallest |up × view| accepted as a valid frame.
const minRightLength = 1e-6

// Camera is the view rig. The zero value is not usable; start from Default or New.
type Camera struct {
	Eye    vecmath.Vec3
	Center vecmath.Vec3
	Up     vecmath.Vec3
}

// Default returns the start-up camera: high above the scene looking down at the origin.
func Default() Camera {
	return New(
		vecmath.V3(65, 2500, 105),
		vecmath.V3(0, 0, 0),
		vecmath.V3(0, 1, 0),
	)
}

// New creates a camera from explicit vectors.
func New(eye, center, up vecmath.Vec3) Camera {
	return Camera{Eye: eye, Center: center, Up: up}
}

// Validate reports ErrDegenerateOrientation when the frame has no right vector.
func (c *Camera) Validate() error {
	_, _, err := c.frame()
	return err
}

// frame returns the unit view and right vectors.
func (c *Camera) frame() (view, right vecmath.Vec3, err error) {
	view, err = c.Center.Sub(c.Eye).Normalize()
	if err != nil {
		return view, right, ErrDegenerateOrientation
	}
	r := c.Up.Cross(view)
	if r.Length() < minRightLength {
		return view, right, ErrDegenerateOrientation
	}
	right, err = r.Normalize()
	if err != nil {
		return view, right, ErrDegenerateOrientation
	}
	return view, right, nil
}

// translate moves eye and center together by dir*d.
func (c *Camera) translate(dir vecmath.Vec3, d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return ErrNonFinite
	}
	off := dir.Scale(d)
	c.Eye = c.Eye.Add(off)
	c.Center = c.Center.Add(off)
	return nil
}

// MoveRight slides the camera sideways along up × view.
func (c *Camera) MoveRight(d float64) error {
	_, right, err := c.frame()
	if err != nil {
		return err
	}
	return c.translate(right, d)
}

// MoveUp slides the camera along its up vector.
func (c *Camera) MoveUp(d float64) error {
	up, err := c.Up.Normalize()
	if err != nil {
		return ErrDegenerateOrientation
	}
	return c.translate(up, d)
}

// MoveForward dollies the camera along the view direction.
func (c *Camera) MoveForward(d float64) error {
	view, err := c.Center.Sub(c.Eye).Normalize()
	if err != nil {
		return ErrDegenerateOrientation
	}
	return c.translate(view, d)
}

// RotatePitch tilts the view toward up by a degrees and re-derives up.
// The eye stays put; center becomes eye + unit view.
func (c *Camera) RotatePitch(a float64) error {
	view, right, err := c.frame()
	if err != nil {
		return err
	}
	rad := vecmath.Deg2Rad(a)
	nv, err := view.Scale(math.Cos(rad)).Add(c.Up.Scale(math.Sin(rad))).Normalize()
	if err != nil {
		return ErrDegenerateOrientation
	}
	nu := nv.Cross(right)
	return c.commit(nv, nu)
}

// RotateYaw turns the view toward right by a degrees. Up is unchanged.
func (c *Camera) RotateYaw(a float64) error {
	view, right, err := c.frame()
	if err != nil {
		return err
	}
	rad := vecmath.Deg2Rad(a)
	nv, err := view.Scale(math.Cos(rad)).Add(right.Scale(math.Sin(rad))).Normalize()
	if err != nil {
		return ErrDegenerateOrientation
	}
	return c.commit(nv, c.Up)
}

// commit installs a rotated frame only if it is still well formed.
func (c *Camera) commit(view, up vecmath.Vec3) error {
	if !view.IsFinite() || !up.IsFinite() || up.Cross(view).Length() < minRightLength {
		return ErrDegenerateOrientation
	}
	c.Center = c.Eye.Add(view)
	c.Up = up
	return nil
}

// LookAt returns the view transform for the renderer. It never mutates c.
func (c Camera) LookAt() (vecmath.Mat4, error) {
	m, err := vecmath.LookAt(c.Eye, c.Center, c.Up)
	if err != nil {
		return m, ErrDegenerateOrientation
	}
	return m, nil
}

// Distance returns |center - eye|.
func (c Camera) Distance() float64 {
	return c.Center.Sub(c.Eye).Length()
}
