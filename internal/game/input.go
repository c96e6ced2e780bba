package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/AhmedSherif9/HideAndSeek/internal/camera"
	"github.com/AhmedSherif9/HideAndSeek/internal/grid"
	"github.com/AhmedSherif9/HideAndSeek/internal/session"
)

// Key repeat for held movement keys, in frames.
const (
	repeatDelay    = 15
	repeatInterval = 3
)

// walkKeys moves the avatar one grid step per press.
var walkKeys = []struct {
	key ebiten.Key
	dir grid.Direction
}{
	{ebiten.KeyI, grid.North},
	{ebiten.KeyK, grid.South},
	{ebiten.KeyJ, grid.West},
	{ebiten.KeyL, grid.East},
}

// axisKey binds a held key to a camera axis and sign.
type axisKey struct {
	key  ebiten.Key
	axis session.Axis
	sign float64
}

// panKeys: a moves along up x view, which points to the viewer's left.
var panKeys = []axisKey{
	{ebiten.KeyW, session.AxisY, 1},
	{ebiten.KeyS, session.AxisY, -1},
	{ebiten.KeyA, session.AxisX, 1},
	{ebiten.KeyD, session.AxisX, -1},
	{ebiten.KeyQ, session.AxisZ, 1},
	{ebiten.KeyE, session.AxisZ, -1},
}

var turnKeys = []axisKey{
	{ebiten.KeyArrowUp, session.AxisX, 1},
	{ebiten.KeyArrowDown, session.AxisX, -1},
	{ebiten.KeyArrowLeft, session.AxisY, 1},
	{ebiten.KeyArrowRight, session.AxisY, -1},
}

var speeds = []float64{0, 0.5, 1, 2, 4}

// repeats reports whether a held key fires this frame: on the first frame
// and then every repeatInterval frames after repeatDelay.
func repeats(heldFrames int) bool {
	if heldFrames == 1 {
		return true
	}
	return heldFrames > repeatDelay && (heldFrames-repeatDelay)%repeatInterval == 0
}

// slower and faster step through the speed ladder.
func slower(cur float64) float64 {
	for i := len(speeds) - 1; i >= 0; i-- {
		if speeds[i] < cur {
			return speeds[i]
		}
	}
	return speeds[0]
}

func faster(cur float64) float64 {
	for _, s := range speeds {
		if s > cur {
			return s
		}
	}
	return speeds[len(speeds)-1]
}

// cameraStatus reports a refused camera command on the status line. The
// session has already logged it.
func (g *Game) cameraStatus(err error) {
	switch {
	case err == nil:
	case errors.Is(err, camera.ErrDegenerateOrientation):
		g.setStatus("rotation refused: view would align with up")
	default:
		g.setStatus("%v", err)
	}
}

// handleInput polls the keyboard and wheel. Toggles are edge-triggered;
// movement keys auto-repeat while held.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}
	heldFire := func(k ebiten.Key) bool {
		if !ebiten.IsKeyPressed(k) {
			g.held[k] = 0
			return false
		}
		g.held[k]++
		return repeats(g.held[k])
	}

	if pressed(ebiten.KeyEscape) {
		g.quit = true
		return
	}

	// Avatar.
	for _, wk := range walkKeys {
		if !heldFire(wk.key) {
			continue
		}
		if _, err := g.sess.Move(wk.dir); err != nil && !errors.Is(err, session.ErrOver) {
			g.logger.Warn("move failed", "dir", wk.dir, "err", err)
		}
	}

	// Camera.
	step := g.scene.Camera.MoveStep
	for _, pk := range panKeys {
		if heldFire(pk.key) {
			g.cameraStatus(g.sess.Pan(pk.axis, pk.sign*step))
		}
	}
	turn := g.scene.Camera.RotateStep
	for _, tk := range turnKeys {
		if heldFire(tk.key) {
			g.cameraStatus(g.sess.Rotate(tk.axis, tk.sign*turn))
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.cameraStatus(g.sess.Pan(session.AxisZ, wy*step*5))
	}
	if pressed(ebiten.KeyHome) {
		if err := g.sess.ResetCamera(g.homeCam); err == nil {
			g.setStatus("view reset")
		}
	}

	// Render mode.
	if pressed(ebiten.KeyR) {
		g.wireframe = true
	}
	if pressed(ebiten.KeyT) {
		g.wireframe = false
	}

	if pressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if pressed(ebiten.KeyC) {
		g.copyReport()
	}

	// Clock speed: P=pause/resume, ,=slower, .=faster.
	if pressed(ebiten.KeyP) {
		if g.simSpeed > 0 {
			g.simSpeed = 0
		} else {
			g.simSpeed = 1
		}
	}
	if pressed(ebiten.KeyComma) {
		g.simSpeed = slower(g.simSpeed)
	}
	if pressed(ebiten.KeyPeriod) {
		g.simSpeed = faster(g.simSpeed)
	}

	g.prevKeys = currentKeys
}
