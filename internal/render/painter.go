package render

import (
	"image/color"

	"geometry-explorer/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Painter draws ui primitives with raylib. With a font loaded, text uses DrawTextEx;
// otherwise raylib's default pixel font.
type Painter struct {
	font rl.Font
}

// LoadFont loads a TTF/OTF font for text. Call after the window exists. On failure the
// default font stays in use.
func (p *Painter) LoadFont(path string) bool {
	f := rl.LoadFontEx(path, 64, nil, 0)
	if f.Texture.ID == 0 {
		return false
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	p.Unload()
	p.font = f
	return true
}

// Font returns the loaded font; its texture ID is zero when none is loaded.
func (p *Painter) Font() rl.Font {
	return p.font
}

// Unload frees the loaded font.
func (p *Painter) Unload() {
	if p.font.Texture.ID != 0 {
		rl.UnloadFont(p.font)
		p.font = rl.Font{}
	}
}

// FillRect implements ui.Painter.
func (p *Painter) FillRect(r ui.Rect, c color.RGBA) {
	rl.DrawRectangleRec(rl.NewRectangle(r.X, r.Y, r.W, r.H), c)
}

// StrokeRect implements ui.Painter.
func (p *Painter) StrokeRect(r ui.Rect, c color.RGBA) {
	rl.DrawRectangleLinesEx(rl.NewRectangle(r.X, r.Y, r.W, r.H), 1, c)
}

// Text implements ui.Painter.
func (p *Painter) Text(s string, x, y, size float32, c color.RGBA) {
	if p.font.Texture.ID != 0 {
		rl.DrawTextEx(p.font, s, rl.NewVector2(x, y), size, 1, c)
		return
	}
	rl.DrawText(s, int32(x), int32(y), int32(size), c)
}

// MeasureText implements ui.Painter.
func (p *Painter) MeasureText(s string, size float32) float32 {
	if p.font.Texture.ID != 0 {
		return rl.MeasureTextEx(p.font, s, size, 1).X
	}
	return float32(rl.MeasureText(s, int32(size)))
}
