// Package game is the interactive frontend: an ebiten window that feeds
// keyboard input and timer ticks into a session and draws its frames.
package game

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/AhmedSherif9/HideAndSeek/internal/camera"
	"github.com/AhmedSherif9/HideAndSeek/internal/config"
	"github.com/AhmedSherif9/HideAndSeek/internal/session"
)

// viewWidth and viewHeight size the 3D viewport; the event panel sits to
// its right.
const (
	viewWidth  = 1280
	viewHeight = 800
)

// statusFrames is how long a status message stays up (~2s at 60TPS).
const statusFrames = 120

// Game implements ebiten.Game around one session.
type Game struct {
	sess   *session.Session
	scene  config.Scene
	logger *slog.Logger

	width   int
	height  int
	viewW   int
	lens    lens
	props   []config.PropConfig
	homeCam camera.Camera

	face  text.Face
	panel *EventPanel
	seen  int // session log entries already copied into the panel

	showHUD   bool
	wireframe bool
	prevKeys  map[ebiten.Key]bool
	held      map[ebiten.Key]int

	// Clock speed control.
	simSpeed      float64 // multiplier: 0=paused, 0.5, 1, 2, 4
	tickAccum     float64 // fractional clock ticks owed
	framesPerTick float64 // frames per clock tick at 1x

	frame       int
	status      string
	statusUntil int
	quit        bool
}

// New builds the frontend for sess. The scene supplies the lens, the
// camera increments, the props and the clock period.
func New(sc config.Scene, sess *session.Session, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		sess:     sess,
		scene:    sc,
		logger:   logger,
		width:    viewWidth + logPanelWidth,
		height:   viewHeight,
		viewW:    viewWidth,
		lens:     lens{fovy: sc.Camera.FOVY, near: sc.Camera.Near, far: sc.Camera.Far},
		props:    sc.Props,
		homeCam:  sess.Camera(),
		face:     newFace(),
		panel:    NewEventPanel(),
		showHUD:  true,
		prevKeys: make(map[ebiten.Key]bool),
		held:     make(map[ebiten.Key]int),
		simSpeed: 1,
	}
	g.framesPerTick = framesPerTick(ebiten.TPS(), sc.TickPeriodMS)
	g.syncPanel()
	return g
}

// framesPerTick converts the clock period into update frames.
func framesPerTick(tps, periodMS int) float64 {
	return max(float64(tps)*float64(periodMS)/1000, 1)
}

// Size returns the window size.
func (g *Game) Size() (int, int) {
	return g.width, g.height
}

func (g *Game) Update() error {
	g.frame++
	g.handleInput()
	if g.quit {
		g.logger.Info("quit requested", "outcome", g.sess.Outcome(), "ticks", g.sess.Stats().Ticks)
		return ebiten.Termination
	}

	if g.simSpeed > 0 {
		g.tickAccum += g.simSpeed / g.framesPerTick
		for g.tickAccum >= 1.0 {
			g.tickAccum -= 1.0
			g.sess.Tick()
		}
	}
	g.syncPanel()
	return nil
}

// syncPanel forwards new session log entries to the on-screen panel.
func (g *Game) syncPanel() {
	log := g.sess.Events()
	for _, e := range log.Since(g.seen) {
		g.panel.AddSessionEntry(e)
	}
	g.seen = log.Len()
}

func (g *Game) setStatus(format string, args ...any) {
	g.status = fmt.Sprintf(format, args...)
	g.statusUntil = g.frame + statusFrames
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colSky)
	f := g.sess.Snapshot()

	view := screen.SubImage(image.Rect(0, 0, g.viewW, g.height)).(*ebiten.Image)
	g.drawScene(view, f)
	g.drawBanner(view, f)
	g.drawHUD(view, f)
	g.panel.Draw(screen, g.face, g.viewW, g.height)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// copyReport puts the session report on the system clipboard.
func (g *Game) copyReport() {
	if err := writeClipboard(g.sess.Report()); err != nil {
		if errors.Is(err, errNoClipboard) {
			g.setStatus("clipboard unavailable")
		} else {
			g.setStatus("copy failed: %v", err)
		}
		g.logger.Warn("copying report", "err", err)
		return
	}
	g.setStatus("report copied")
}
