package panel

import (
	"errors"
	"fmt"

	"geometry-explorer/internal/scene"
	"geometry-explorer/internal/shapes"
	"geometry-explorer/internal/viewer"

	"github.com/chewxy/math32"
)

// ErrInvalidColor is returned by PickColor for values that are not hex colours.
var ErrInvalidColor = errors.New("panel: invalid colour")

// Control labels.
const (
	ShapeLabel  = "Shape"
	ColorLabel  = "Color"
	PauseLabel  = "Pause Rotation"
	ResumeLabel = "Resume Rotation"
)

// stepsPerUnit is exact, so snapped values divide back without float drift.
const stepsPerUnit = 1 / viewer.ScaleStep

// Sink receives one update per control change. *viewer.Session implements it.
type Sink interface {
	OnShapeChange(kind shapes.Kind) error
	OnColorChange(hex string) error
	OnScaleChange(scale float32) error
	OnAutoRotateChange(enabled bool) error
}

// Option is one entry of the shape selector.
type Option struct {
	Value string
	Label string
}

// Panel owns the viewer state and forwards each change to the bound sink. The state
// survives rebinding, so a remounted session starts from what the user last chose.
type Panel struct {
	state viewer.State
	sink  Sink
}

// New returns a panel showing st with no sink bound.
func New(st viewer.State) *Panel {
	return &Panel{state: st}
}

// Bind sets the sink that receives changes. Pass nil to detach.
func (p *Panel) Bind(sink Sink) {
	p.sink = sink
}

// State returns the current viewer state.
func (p *Panel) State() viewer.State {
	return p.state
}

// Options lists the shape selector entries.
func (p *Panel) Options() []Option {
	var out []Option
	for _, k := range shapes.Kinds() {
		name := k.String()
		out = append(out, Option{Value: name, Label: string(name[0]-'a'+'A') + name[1:]})
	}
	return out
}

// SelectShape handles the shape selector.
func (p *Panel) SelectShape(value string) error {
	kind, err := shapes.ParseKind(value)
	if err != nil {
		return fmt.Errorf("panel: %w", err)
	}
	p.state.Shape = kind
	if p.sink == nil {
		return nil
	}
	return p.sink.OnShapeChange(kind)
}

// PickColor handles the colour picker.
func (p *Panel) PickColor(value string) error {
	c, err := scene.ParseHex(value)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	p.state.Color = scene.Hex(c)
	if p.sink == nil {
		return nil
	}
	return p.sink.OnColorChange(p.state.Color)
}

// SlideScale handles the scale slider. Like a native range input, the value is
// clamped to [MinScale, MaxScale] and snapped to ScaleStep. It returns the applied value.
func (p *Panel) SlideScale(value float32) (float32, error) {
	v := SnapScale(value)
	p.state.Scale = v
	if p.sink == nil {
		return v, nil
	}
	return v, p.sink.OnScaleChange(v)
}

// ToggleRotation handles the rotation button.
func (p *Panel) ToggleRotation() error {
	p.state.AutoRotate = !p.state.AutoRotate
	if p.sink == nil {
		return nil
	}
	return p.sink.OnAutoRotateChange(p.state.AutoRotate)
}

// ShapeValue is the selector's current value.
func (p *Panel) ShapeValue() string {
	return p.state.Shape.String()
}

// ColorValue is the colour picker's current value.
func (p *Panel) ColorValue() string {
	return p.state.Color
}

// ScaleLabel is the slider caption, e.g. "Scale: 1.0".
func (p *Panel) ScaleLabel() string {
	return fmt.Sprintf("Scale: %.1f", p.state.Scale)
}

// RotationLabel is the toggle button caption.
func (p *Panel) RotationLabel() string {
	if p.state.AutoRotate {
		return PauseLabel
	}
	return ResumeLabel
}

// RotationPressed is the toggle's pressed state.
func (p *Panel) RotationPressed() bool {
	return p.state.AutoRotate
}

// SnapScale clamps v to the slider range and rounds it to the nearest step.
func SnapScale(v float32) float32 {
	if math32.IsNaN(v) {
		return viewer.MinScale
	}
	v = math32.Max(viewer.MinScale, math32.Min(viewer.MaxScale, v))
	steps := math32.Floor(v*stepsPerUnit + 0.5)
	return steps / stepsPerUnit
}

// ScaleFraction maps a scale to 0..1 along the slider track.
func ScaleFraction(v float32) float32 {
	return (SnapScale(v) - viewer.MinScale) / (viewer.MaxScale - viewer.MinScale)
}

// ScaleAt maps a 0..1 track position to a snapped scale.
func ScaleAt(fraction float32) float32 {
	return SnapScale(viewer.MinScale + fraction*(viewer.MaxScale-viewer.MinScale))
}
