package render

import (
	"geometry-explorer/internal/controls"
	"geometry-explorer/internal/terminal"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ReadPointer samples the mouse for this frame.
func ReadPointer() controls.PointerState {
	pos := rl.GetMousePosition()
	return controls.PointerState{
		X:     pos.X,
		Y:     pos.Y,
		Down:  rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Wheel: rl.GetMouseWheelMove(),
	}
}

// Clicked reports a primary button press this frame and where it happened.
func Clicked() (x, y float32, ok bool) {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return 0, 0, false
	}
	pos := rl.GetMousePosition()
	return pos.X, pos.Y, true
}

// PixelRatio is the window's content scale, the analogue of a browser's devicePixelRatio.
func PixelRatio() float32 {
	scale := rl.GetWindowScaleDPI()
	if scale.X <= 0 {
		return 1
	}
	return scale.X
}

// ReadKeys samples the keyboard for the console. Paste is Ctrl+V, or Cmd+V on macOS.
func ReadKeys() terminal.Keys {
	k := terminal.Keys{
		Toggle:    rl.IsKeyPressed(rl.KeyEscape),
		Enter:     rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter),
		Backspace: rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace),
		Up:        rl.IsKeyPressed(rl.KeyUp),
		Down:      rl.IsKeyPressed(rl.KeyDown),
	}
	modifier := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	if modifier && rl.IsKeyPressed(rl.KeyV) {
		k.Paste = rl.GetClipboardText()
		return k
	}
	for {
		c := rl.GetCharPressed()
		if c == 0 {
			break
		}
		k.Chars = append(k.Chars, rune(c))
	}
	return k
}
