package game

import (
	"math"

	"github.com/AhmedSherif9/HideAndSeek/internal/vecmath"
)

// minClipW keeps projected points strictly in front of the eye.
const minClipW = 1e-3

// lens is the perspective frustum, gluPerspective style.
type lens struct {
	fovy float64 // degrees
	near float64
	far  float64
}

// projector maps world points to screen pixels through one combined
// view-projection matrix.
type projector struct {
	vp     vecmath.Mat4
	focal  float64 // 1/tan(fovy/2)
	width  float64
	height float64
}

func newProjector(view vecmath.Mat4, l lens, width, height int) projector {
	aspect := float64(width) / float64(max(height, 1))
	proj := vecmath.Perspective(l.fovy, aspect, l.near, l.far)
	return projector{
		vp:     proj.Mul(view),
		focal:  1 / math.Tan(vecmath.Deg2Rad(l.fovy)/2),
		width:  float64(width),
		height: float64(height),
	}
}

type clipPoint struct{ x, y, z, w float64 }

func (p projector) clip(v vecmath.Vec3) clipPoint {
	x, y, z, w := p.vp.Transform(v)
	return clipPoint{x, y, z, w}
}

func (p projector) toScreen(c clipPoint) (float32, float32) {
	nx, ny := c.x/c.w, c.y/c.w
	return float32((nx + 1) / 2 * p.width), float32((1 - ny) / 2 * p.height)
}

// point projects v. ok is false when v is behind the eye.
func (p projector) point(v vecmath.Vec3) (x, y float32, ok bool) {
	c := p.clip(v)
	if c.w < minClipW {
		return 0, 0, false
	}
	x, y = p.toScreen(c)
	return x, y, true
}

// segment projects the part of a-b that lies in front of the eye.
func (p projector) segment(a, b vecmath.Vec3) (x0, y0, x1, y1 float32, ok bool) {
	ca, cb := p.clip(a), p.clip(b)
	if ca.w < minClipW && cb.w < minClipW {
		return 0, 0, 0, 0, false
	}
	if ca.w < minClipW {
		ca = lerpClip(ca, cb, (minClipW-ca.w)/(cb.w-ca.w))
	} else if cb.w < minClipW {
		cb = lerpClip(cb, ca, (minClipW-cb.w)/(ca.w-cb.w))
	}
	x0, y0 = p.toScreen(ca)
	x1, y1 = p.toScreen(cb)
	return x0, y0, x1, y1, true
}

func lerpClip(a, b clipPoint, t float64) clipPoint {
	return clipPoint{
		x: a.x + (b.x-a.x)*t,
		y: a.y + (b.y-a.y)*t,
		z: a.z + (b.z-a.z)*t,
		w: a.w + (b.w-a.w)*t,
	}
}

// scale returns the on-screen size of a world length r at v, for sizing
// markers. Points behind the eye get zero.
func (p projector) scale(v vecmath.Vec3, r float64) float32 {
	c := p.clip(v)
	if c.w < minClipW {
		return 0
	}
	return float32(r * p.focal / c.w * p.height / 2)
}
