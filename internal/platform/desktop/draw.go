package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

var (
	skyColor     = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	pipeColor    = color.RGBA{R: 83, G: 160, B: 53, A: 255}
	pipeEdge     = color.RGBA{R: 44, G: 96, B: 28, A: 255}
	ghostColor   = color.RGBA{R: 255, G: 255, B: 255, A: 90}
	birdColor    = color.RGBA{R: 250, G: 204, B: 21, A: 255}
	markerColor  = color.RGBA{R: 236, G: 72, B: 153, A: 255}
	overlayShade = color.RGBA{A: 140}
)

// trailColor is the bird color faded to the point's opacity.
func trailColor(opacity float64) color.RGBA {
	a := core.ClampF(opacity, 0, 1) * 0.5
	return color.RGBA{
		R: uint8(float64(birdColor.R) * a),
		G: uint8(float64(birdColor.G) * a),
		B: uint8(float64(birdColor.B) * a),
		A: uint8(255 * a),
	}
}

// scaledBox shrinks b around its centre by scale.
func scaledBox(b core.Box, scale float64) core.Box {
	w, h := b.W*scale, b.H*scale
	return core.NewBox(b.X+(b.W-w)/2, b.Y+(b.H-h)/2, w, h)
}

func fillBox(dst *ebiten.Image, b core.Box, c color.Color) {
	if b.Empty() {
		return
	}
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

func strokeBox(dst *ebiten.Image, b core.Box, c color.Color) {
	if b.Empty() {
		return
	}
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, c, false)
}

// DrawFrame paints f in world coordinates; Layout maps them to the window.
func DrawFrame(dst *ebiten.Image, f flappy.Frame, best int) {
	dst.Fill(skyColor)

	for _, o := range f.Obstacles {
		if o.Solid {
			fillBox(dst, o.Upper, pipeColor)
			fillBox(dst, o.Lower, pipeColor)
			strokeBox(dst, o.Upper, pipeEdge)
			strokeBox(dst, o.Lower, pipeEdge)
		} else {
			strokeBox(dst, o.Upper, ghostColor)
			strokeBox(dst, o.Lower, ghostColor)
		}
		if o.HasMarker {
			cx, cy := o.Marker.X+o.Marker.W/2, o.Marker.Y+o.Marker.H/2
			vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(o.Marker.W/2), markerColor, true)
		}
	}

	for _, p := range f.Trail {
		fillBox(dst, scaledBox(p.Box, p.Scale), trailColor(p.Opacity))
	}
	fillBox(dst, f.Actor, birdColor)

	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score: %d  Best: %d", f.Score, max(best, f.Score)), 8, 8)
	if f.PowerUp != "" {
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%s %.1fs", f.PowerUp, f.Remaining.Seconds()), 8, 24)
	}

	if len(f.Overlay) > 0 {
		fillBox(dst, core.NewBox(0, f.ViewH/2-40, f.ViewW, 80), overlayShade)
		for i, line := range f.Overlay {
			// debug font glyphs are 6x16
			x := int(f.ViewW/2) - len(line)*3
			y := int(f.ViewH/2) - 20 + i*20
			ebitenutil.DebugPrintAt(dst, line, x, y)
		}
	}
}
