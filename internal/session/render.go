package session

import (
	"fmt"

	"github.com/vovakirdan/tui-hoppy/internal/core"
	"github.com/vovakirdan/tui-hoppy/internal/hoppy"
)

// Visual characters for rendering
const (
	BarrierChar      = '█'
	BarrierCapTop    = '▄'
	BarrierCapBottom = '▀'
	GroundChar       = '▒'
	GroundTopChar    = '▀'
	PlayerChar       = '●'
)

// flapFrames are the wing glyphs drawn left of the player, one per
// animation frame.
var flapFrames = []rune{'⌃', '─', '⌄'}

// Render draws the current run into dst, scaling the world to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	vp := core.Viewport{
		WorldW: g.cfg.Viewport.Width,
		WorldH: g.cfg.Viewport.Height,
		Cols:   dst.Width(),
		Rows:   dst.Height(),
	}

	for _, o := range g.loop.Obstacles().Obstacles() {
		g.drawObstacle(dst, vp, o)
	}

	background := g.loop.Background()
	for _, tile := range background.Tiles() {
		pos := background.ViewportPos(tile)
		r := vp.Box(pos.X, pos.Y, tile.Size.X, tile.Size.Y)
		dst.FillRect(r, GroundChar, core.ColorGreen)
		dst.FillRect(core.NewRect(r.X, r.Y, r.W, 1), GroundTopChar, core.ColorBrightGreen)
	}

	g.drawPlayer(dst, vp)

	// Draw HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorBrightWhite)
	if g.best > 0 {
		best := fmt.Sprintf(" Best: %d ", g.best)
		dst.DrawText(dst.Width()-len(best)-2, 0, best, core.ColorGray)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	}
	if g.restartAvailable {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score), core.ColorRed)
	}
}

// drawObstacle renders both barriers of an obstacle. The goal sensor is
// invisible.
func (g *Game) drawObstacle(dst *core.Screen, vp core.Viewport, o *hoppy.Obstacle) {
	for _, piece := range []*hoppy.Entity{o.Top, o.Bottom} {
		pos := o.PieceViewportPos(piece)
		r := vp.Box(pos.X, pos.Y, piece.Size.X, piece.Size.Y)
		dst.FillRect(r, BarrierChar, core.ColorGreen)

		// Cap the edge facing the gap
		capY, capChar := r.Bottom()-1, BarrierCapTop
		if piece == o.Bottom {
			capY, capChar = r.Y, BarrierCapBottom
		}
		dst.FillRect(core.NewRect(r.X, capY, r.W, 1), capChar, core.ColorBrightGreen)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, vp core.Viewport) {
	e := g.player.Entity()
	x, y := vp.Cell(e.Pos.X, e.Pos.Y)

	color := core.ColorYellow
	if g.loop.State() == hoppy.StateGameOver {
		color = core.ColorOrange
	}
	wing := flapFrames[g.player.Animation().Frame()%len(flapFrames)]
	dst.SetColored(x-1, y, wing, color)
	dst.SetColored(x, y, PlayerChar, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorBrightWhite)
}
