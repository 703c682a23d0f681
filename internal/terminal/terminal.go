package terminal

import (
	"image/color"
	"unicode/utf8"

	"geometry-explorer/internal/commands"
	"geometry-explorer/internal/logger"
	"geometry-explorer/internal/ui"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLen       = 200
	maxHistory       = 50
)

var (
	barColor    = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	lineColor   = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	chatBgColor = color.RGBA{R: 24, G: 24, B: 24, A: 240}
	logColor    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	inputColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Keys is one frame of keyboard input for the console.
type Keys struct {
	Toggle    bool // ESC
	Enter     bool
	Backspace bool
	Up        bool
	Down      bool
	Chars     []rune
	Paste     string
}

// Terminal is the console bar at the bottom of the screen, shown and hidden with ESC.
// Every submitted line is logged and run through the command registry; errors are logged.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	history  []string
	recall   int // index into history while browsing with Up/Down; len(history) when not
}

// New returns a closed terminal that logs lines and runs them through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing keys.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetOpen shows or hides the console.
func (t *Terminal) SetOpen(open bool) {
	t.open = open
}

// Input returns the line being typed.
func (t *Terminal) Input() string {
	return t.inputBuf
}

// Update applies one frame of keys. Call once per frame.
func (t *Terminal) Update(k Keys) {
	if k.Toggle {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	if k.Paste != "" {
		t.inputBuf += k.Paste
	}
	for _, c := range k.Chars {
		t.inputBuf += string(c)
	}
	if k.Backspace && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if k.Up && t.recall > 0 {
		t.recall--
		t.inputBuf = t.history[t.recall]
	}
	if k.Down && t.recall < len(t.history) {
		t.recall++
		if t.recall == len(t.history) {
			t.inputBuf = ""
		} else {
			t.inputBuf = t.history[t.recall]
		}
	}
	if k.Enter && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// Submit logs line and executes it as a command.
func (t *Terminal) Submit(line string) {
	t.log.Log(prompt + line)
	t.history = append(t.history, line)
	if len(t.history) > maxHistory {
		t.history = t.history[len(t.history)-maxHistory:]
	}
	t.recall = len(t.history)

	args, ok := commands.Parse(line)
	if !ok {
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// Top returns the y where the open console starts on a screen of height screenH,
// or screenH while closed.
func (t *Terminal) Top(screenH float32) float32 {
	if !t.open {
		return screenH
	}
	top := screenH - BarHeight - maxLinesOnScreen*lineHeight
	if top < 0 {
		return 0
	}
	return top
}

// Draw draws the input bar at the bottom of a screenW x screenH window and the recent
// log lines above it. Nothing is drawn while closed.
func (t *Terminal) Draw(p ui.Painter, screenW, screenH float32) {
	if !t.open {
		return
	}
	barY := screenH - BarHeight

	chatHeight := float32(maxLinesOnScreen * lineHeight)
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		p.FillRect(ui.Rect{X: 0, Y: chatY, W: screenW, H: chatHeight}, chatBgColor)
	}
	lines := t.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := chatY + float32((i-start)*lineHeight+padding)
		line := lines[i]
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		p.Text(line, padding, y, fontSize, logColor)
	}

	p.FillRect(ui.Rect{X: 0, Y: barY, W: screenW, H: BarHeight}, barColor)
	p.FillRect(ui.Rect{X: 0, Y: barY, W: screenW, H: 1}, lineColor)
	p.Text(prompt+t.inputBuf+"|", padding, barY+padding, fontSize, inputColor)
}
