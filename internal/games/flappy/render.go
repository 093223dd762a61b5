package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Visual characters for rendering
const (
	ActorChar   = '█'
	WallChar    = '█'
	GhostChar   = '·'
	MarkerChar  = '◆'
	TrailFaint  = '·'
	TrailMedium = '∙'
	TrailStrong = '•'
)

// cellMapper scales world boxes onto the character grid.
type cellMapper struct {
	sx, sy float64
}

func newCellMapper(f Frame, dst *core.Screen) cellMapper {
	return cellMapper{
		sx: float64(dst.Width()) / f.ViewW,
		sy: float64(dst.Height()) / f.ViewH,
	}
}

// rect covers every cell the box touches.
func (m cellMapper) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.Left() * m.sx))
	y0 := int(math.Floor(b.Top() * m.sy))
	x1 := int(math.Ceil(b.Right() * m.sx))
	y1 := int(math.Ceil(b.Bottom() * m.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderFrame(g.Frame(), dst)
}

// RenderFrame draws a frame onto a character screen.
func RenderFrame(f Frame, dst *core.Screen) {
	dst.Clear()
	if f.ViewW <= 0 || f.ViewH <= 0 {
		return
	}
	m := newCellMapper(f, dst)

	for _, o := range f.Obstacles {
		drawObstacle(dst, m, o)
	}

	for _, t := range f.Trail {
		r := m.rect(t.Box)
		glyph := TrailFaint
		switch {
		case t.Scale > 0.7:
			glyph = TrailStrong
		case t.Scale > 0.4:
			glyph = TrailMedium
		}
		dst.SetColored(r.X+r.W/2, r.Y+r.H/2, glyph, core.ColorYellow)
	}

	dst.DrawRect(m.rect(f.Actor), ActorChar, core.ColorBrightYellow)

	drawHUD(dst, f)

	if len(f.Overlay) > 0 {
		drawCenteredMessage(dst, f.Overlay)
	}
}

func drawObstacle(dst *core.Screen, m cellMapper, o ObstacleFrame) {
	for _, b := range []core.Box{o.Upper, o.Lower} {
		if b.Empty() {
			continue
		}
		r := m.rect(b)
		if o.Solid {
			dst.DrawRect(r, WallChar, core.ColorGreen)
		} else {
			dst.DrawOutline(r, GhostChar, core.ColorDarkGray)
		}
	}
	if o.HasMarker {
		r := m.rect(o.Marker)
		dst.SetColored(r.X+r.W/2, r.Y+r.H/2, MarkerChar, core.ColorBrightBlue)
	}
}

func drawHUD(dst *core.Screen, f Frame) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", f.Score), core.ColorBrightWhite)

	if f.PowerUp != "" {
		text := fmt.Sprintf(" %s %.1fs ", f.PowerUp, f.Remaining.Seconds())
		dst.DrawTextColored(dst.Width()-len([]rune(text))-1, 0, text, core.ColorCyan)
	}
}

// drawCenteredMessage draws the overlay lines in a box in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	for i, l := range lines {
		color := core.ColorWhite
		if l == TextGameOver {
			color = core.ColorRed
		}
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, boxY+1+i*2, l, color)
	}
}
