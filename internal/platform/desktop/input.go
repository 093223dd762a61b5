package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// pointerState is the per-frame edge summary of keyboard, mouse and touch.
type pointerState struct {
	pressed  bool
	released bool
	pause    bool
	restart  bool
	mute     bool
	quit     bool
}

var flapKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}

// readPointer polls ebiten for this frame's input edges.
func readPointer() pointerState {
	var p pointerState
	for _, k := range flapKeys {
		if inpututil.IsKeyJustPressed(k) {
			p.pressed = true
		}
		if inpututil.IsKeyJustReleased(k) {
			p.released = true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.released = true
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		p.pressed = true
	}
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		p.released = true
	}

	p.pause = inpututil.IsKeyJustPressed(ebiten.KeyP)
	p.restart = inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	p.mute = inpututil.IsKeyJustPressed(ebiten.KeyM)
	p.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return p
}

// frame converts the edges to game actions. A quick tap presses and
// releases inside one frame; the release is carried to the next frame.
func (p pointerState) frame(carry bool) (in core.InputFrame, carryNext bool) {
	in = core.NewInputFrame()
	if carry && !p.pressed {
		in.Set(core.ActionRelease)
	}
	if p.pressed {
		in.Set(core.ActionPress)
		if p.released {
			carryNext = true
		}
	} else if p.released {
		in.Set(core.ActionRelease)
	}
	if p.pause {
		in.Set(core.ActionPause)
	}
	if p.restart {
		in.Set(core.ActionRestart)
	}
	return in, carryNext
}
