package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/AhmedSherif9/HideAndSeek/internal/session"
	"github.com/AhmedSherif9/HideAndSeek/internal/world"
)

// hudLineHeight matches the 7x13 face with one pixel of leading.
const hudLineHeight = 14

func newFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

func drawText(dst *ebiten.Image, face text.Face, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = hudLineHeight
	text.Draw(dst, s, face, op)
}

func speedLabel(speed float64) string {
	switch speed {
	case 0:
		return "PAUSED"
	case 1:
		return "1x"
	case 2:
		return "2x"
	case 4:
		return "4x"
	default:
		return fmt.Sprintf("%.1fx", speed)
	}
}

// hudLines builds the status block. Split out from drawing for tests.
func hudLines(f session.Frame, speed float64, wireframe, showKeys bool) []string {
	mode := "fill"
	if wireframe {
		mode = "wireframe"
	}
	lines := []string{
		fmt.Sprintf("CLOCK %4d   tick %d   %s", f.Clock, f.Tick, speedLabel(speed)),
		fmt.Sprintf("APPLES %d/%d   caught %d", f.Collected, f.Total, f.CaughtCount),
		fmt.Sprintf("AVATAR %v facing %v", f.Avatar.Position, f.Avatar.Facing),
		fmt.Sprintf("STATE %s   render %s", f.Outcome, mode),
	}
	if showKeys {
		lines = append(lines,
			"",
			"I/J/K/L walk   W/S up/down   A/D side   Q/E fwd/back",
			"arrows turn   wheel dolly   Home reset view",
			"R wireframe   T fill   P pause   ,/. speed",
			"C copy report   H hide keys   Esc quit",
		)
	}
	return lines
}

func (g *Game) drawHUD(screen *ebiten.Image, f session.Frame) {
	lines := hudLines(f, g.simSpeed, g.wireframe, g.showHUD)
	const padX, padY = 6, 5
	const charW = 7

	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*hudLineHeight + padY*2)
	bx, by := float32(8), float32(g.height)-boxH-8

	vector.FillRect(screen, bx, by, boxW, boxH, color.RGBA{R: 6, G: 10, B: 6, A: 210}, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH, 1.0, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)
	drawText(screen, g.face, strings.Join(lines, "\n"), int(bx)+padX, int(by)+padY, color.White)

	if g.status != "" && g.frame < g.statusUntil {
		drawText(screen, g.face, g.status, 12, 12, color.RGBA{R: 240, G: 220, B: 120, A: 255})
	}
}

// drawBanner announces the end of the session across the viewport.
func (g *Game) drawBanner(screen *ebiten.Image, f session.Frame) {
	var msg string
	var clr color.RGBA
	switch {
	case f.Outcome == world.OutcomeWon:
		msg, clr = "ALL APPLES HOME - YOU WIN", color.RGBA{R: 80, G: 200, B: 90, A: 255}
	case f.Over && f.Outcome == world.OutcomeCaught:
		msg, clr = "CAUGHT - GAME OVER", color.RGBA{R: 220, G: 70, B: 70, A: 255}
	case f.Outcome == world.OutcomeCaught:
		msg, clr = "CAUGHT!", color.RGBA{R: 220, G: 150, B: 70, A: 255}
	default:
		return
	}
	w := len(msg)*7 + 24
	x := (g.viewW - w) / 2
	y := g.height/2 - 20
	vector.FillRect(screen, float32(x), float32(y), float32(w), 30, color.RGBA{R: 0, G: 0, B: 0, A: 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), 30, 2, clr, false)
	drawText(screen, g.face, msg, x+12, y+8, clr)
}
