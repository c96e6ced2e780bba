package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/AhmedSherif9/HideAndSeek/internal/config"
	"github.com/AhmedSherif9/HideAndSeek/internal/grid"
	"github.com/AhmedSherif9/HideAndSeek/internal/session"
	"github.com/AhmedSherif9/HideAndSeek/internal/vecmath"
	"github.com/AhmedSherif9/HideAndSeek/internal/world"
)

// defaultExtent is the half-width of the ground when the scene has no bounds.
const defaultExtent = 2500

const (
	wallHeight  = 80
	actorHeight = 180
	itemRadius  = 30
)

var (
	colSky       = color.RGBA{R: 24, G: 30, B: 40, A: 255}
	colGround    = color.RGBA{R: 60, G: 90, B: 55, A: 255}
	colGridMajor = color.RGBA{R: 90, G: 130, B: 80, A: 255}
	colGridMinor = color.RGBA{R: 70, G: 105, B: 65, A: 160}
	colWinZone   = color.RGBA{R: 80, G: 200, B: 90, A: 140}
	colWall      = color.RGBA{R: 150, G: 110, B: 70, A: 230}
	colApple     = color.RGBA{R: 210, G: 40, B: 40, A: 255}
	colTaken     = color.RGBA{R: 120, G: 120, B: 120, A: 120}
	colAvatar    = color.RGBA{R: 70, G: 130, B: 230, A: 255}
	colGuard     = color.RGBA{R: 190, G: 80, B: 200, A: 255}
	colCaught    = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	colTrunk     = color.RGBA{R: 110, G: 80, B: 50, A: 255}
	colLeaves    = color.RGBA{R: 40, G: 140, B: 60, A: 200}
	colFurniture = color.RGBA{R: 170, G: 140, B: 100, A: 220}
	colCoin      = color.RGBA{R: 240, G: 200, B: 40, A: 255}
)

// painter draws world-space primitives into one viewport.
type painter struct {
	dst  *ebiten.Image
	p    projector
	fill bool
}

func (pt painter) line(a, b vecmath.Vec3, width float32, clr color.Color) {
	x0, y0, x1, y1, ok := pt.p.segment(a, b)
	if !ok {
		return
	}
	vector.StrokeLine(pt.dst, x0, y0, x1, y1, width, clr, true)
}

// quad draws a planar four-sided polygon, filled in fill mode.
func (pt painter) quad(q [4]vecmath.Vec3, clr color.RGBA) {
	if !pt.fill {
		for i := range q {
			pt.line(q[i], q[(i+1)%4], 1, clr)
		}
		return
	}
	var path vector.Path
	for i, v := range q {
		x, y, ok := pt.p.point(v)
		if !ok {
			return
		}
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(pt.dst, &path, &vector.FillOptions{}, op)
}

// disc draws a screen-facing marker of world radius r.
func (pt painter) disc(c vecmath.Vec3, r float64, clr color.RGBA) {
	x, y, ok := pt.p.point(c)
	if !ok {
		return
	}
	rad := max(pt.p.scale(c, r), 1.5)
	if pt.fill {
		vector.FillCircle(pt.dst, x, y, rad, clr, true)
		return
	}
	vector.StrokeCircle(pt.dst, x, y, rad, 1, clr, true)
}

// box draws an axis-aligned box standing on the ground.
func (pt painter) box(center vecmath.Vec3, hx, hz, h float64, clr color.RGBA) {
	x0, x1 := center.X-hx, center.X+hx
	z0, z1 := center.Z-hz, center.Z+hz
	y0, y1 := center.Y, center.Y+h
	pt.quad([4]vecmath.Vec3{{X: x0, Y: y1, Z: z0}, {X: x1, Y: y1, Z: z0}, {X: x1, Y: y1, Z: z1}, {X: x0, Y: y1, Z: z1}}, clr)
	for _, c := range [][2]float64{{x0, z0}, {x1, z0}, {x1, z1}, {x0, z1}} {
		pt.line(vecmath.V3(c[0], y0, c[1]), vecmath.V3(c[0], y1, c[1]), 1, clr)
	}
}

func ground(p grid.Position, y float64) vecmath.Vec3 {
	return vecmath.V3(float64(p.X), y, float64(p.Z))
}

// cellQuad returns the square of side step centred on p.
func cellQuad(p grid.Position, step int, y float64) [4]vecmath.Vec3 {
	h := float64(step) / 2
	c := ground(p, y)
	return [4]vecmath.Vec3{
		{X: c.X - h, Y: y, Z: c.Z - h},
		{X: c.X + h, Y: y, Z: c.Z - h},
		{X: c.X + h, Y: y, Z: c.Z + h},
		{X: c.X - h, Y: y, Z: c.Z + h},
	}
}

// wallQuad is the fence panel on the border crossed by e.
func wallQuad(e grid.Edge, step int) [4]vecmath.Vec3 {
	dx, dz := e.Dir.Delta()
	h := float64(step) / 2
	mid := ground(e.From, 0).Add(vecmath.V3(float64(dx)*h, 0, float64(dz)*h))
	perp := vecmath.V3(float64(-dz)*h, 0, float64(dx)*h)
	a, b := mid.Sub(perp), mid.Add(perp)
	up := vecmath.V3(0, wallHeight, 0)
	return [4]vecmath.Vec3{a, b, b.Add(up), a.Add(up)}
}

func (g *Game) drawScene(screen *ebiten.Image, f session.Frame) {
	pt := painter{dst: screen, p: newProjector(f.View, g.lens, g.viewW, g.height), fill: !g.wireframe}
	step := f.Step

	// Ground plane and grid.
	minX, minZ := -defaultExtent-step/2, -defaultExtent-step/2
	maxX, maxZ := defaultExtent+step/2, defaultExtent+step/2
	if f.Bounded {
		minX, minZ = f.Bounds.Min.X-step/2, f.Bounds.Min.Z-step/2
		maxX, maxZ = f.Bounds.Max.X+step/2, f.Bounds.Max.Z+step/2
	}
	pt.quad([4]vecmath.Vec3{
		vecmath.V3(float64(minX), 0, float64(minZ)),
		vecmath.V3(float64(maxX), 0, float64(minZ)),
		vecmath.V3(float64(maxX), 0, float64(maxZ)),
		vecmath.V3(float64(minX), 0, float64(maxZ)),
	}, colGround)
	major := 5 * step
	for x := minX; x <= maxX; x += step {
		clr, w := colGridMinor, float32(1)
		if (x+step/2)%major == 0 {
			clr, w = colGridMajor, 1.5
		}
		pt.line(vecmath.V3(float64(x), 0, float64(minZ)), vecmath.V3(float64(x), 0, float64(maxZ)), w, clr)
	}
	for z := minZ; z <= maxZ; z += step {
		clr, w := colGridMinor, float32(1)
		if (z+step/2)%major == 0 {
			clr, w = colGridMajor, 1.5
		}
		pt.line(vecmath.V3(float64(minX), 0, float64(z)), vecmath.V3(float64(maxX), 0, float64(z)), w, clr)
	}

	for _, p := range f.WinZone {
		pt.quad(cellQuad(p, step, 1), colWinZone)
	}
	for _, e := range f.Walls {
		pt.quad(wallQuad(e, step), colWall)
	}
	for _, pr := range g.props {
		drawProp(pt, pr)
	}
	for _, it := range f.Items {
		c := ground(it.Position, it.Elevation+itemRadius)
		if it.Collected {
			pt.line(ground(it.Position, 0), ground(it.Position, 10), 1, colTaken)
			continue
		}
		pt.disc(c, itemRadius, colApple)
	}
	caught := f.State.Lost
	for _, a := range f.Adversaries {
		clr := colGuard
		if caught && a.Position == f.Avatar.Position {
			clr = colCaught
		}
		drawActor(pt, a, step, clr)
	}
	drawActor(pt, f.Avatar, step, colAvatar)
}

// drawActor draws a post with a head and a facing arrow on the ground.
func drawActor(pt painter, e world.Entity, step int, clr color.RGBA) {
	base := ground(e.Position, e.Elevation)
	top := base.Add(vecmath.V3(0, actorHeight, 0))
	pt.line(base, top, 3, clr)
	pt.disc(top, 25, clr)

	dx, dz := e.Facing.Delta()
	reach := float64(step) * 0.45
	tip := base.Add(vecmath.V3(float64(dx)*reach, 1, float64(dz)*reach))
	pt.line(base.Add(vecmath.V3(0, 1, 0)), tip, 2, clr)
}

// drawProp renders scenery by kind. Sizes are in world units.
func drawProp(pt painter, pr config.PropConfig) {
	at := pr.At.Vec()
	switch pr.Kind {
	case "tree", "palm":
		top := at.Add(vecmath.V3(0, 300, 0))
		pt.line(at, top, 4, colTrunk)
		pt.disc(top, 120, colLeaves)
	case "table":
		pt.box(at, 60, 40, 70, colFurniture)
	case "chair":
		pt.box(at, 25, 25, 45, colFurniture)
	case "wardrobe":
		pt.box(at, 50, 30, 200, colFurniture)
	case "coin":
		pt.disc(at, 15, colCoin)
	default:
		pt.box(at, 30, 30, 30, colFurniture)
	}
}
