package terminal

import (
	"strings"
	"testing"

	"geometry-explorer/internal/commands"
	"geometry-explorer/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTerminal(t *testing.T) (*Terminal, *logger.Logger, *[]string) {
	t.Helper()
	log := logger.New("-")
	reg := commands.NewRegistry()
	var ran []string
	reg.Register("shape", "<name>", nil, func(args []string) error {
		ran = append(ran, strings.Join(args, ","))
		return nil
	})
	return New(log, reg), log, &ran
}

func TestClosedTerminalIgnoresTyping(t *testing.T) {
	term, _, _ := newTerminal(t)
	term.Update(Keys{Chars: []rune("abc")})
	assert.Equal(t, "", term.Input())

	term.Update(Keys{Toggle: true, Chars: []rune("ab")})
	assert.True(t, term.IsOpen())
	assert.Equal(t, "ab", term.Input())
}

func TestTypingAndSubmit(t *testing.T) {
	term, log, ran := newTerminal(t)
	term.SetOpen(true)
	term.Update(Keys{Chars: []rune("shape spheré")})
	term.Update(Keys{Backspace: true})
	term.Update(Keys{Chars: []rune("e")})
	term.Update(Keys{Enter: true})

	assert.Equal(t, "", term.Input())
	assert.Equal(t, []string{"sphere"}, *ran)

	term.Update(Keys{Paste: "bogus", Enter: true})
	lines := log.Lines()
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "> shape sphere"))
	assert.True(t, strings.HasSuffix(lines[2], "unknown command: bogus"))
}

func TestHistoryRecall(t *testing.T) {
	term, _, _ := newTerminal(t)
	term.SetOpen(true)
	term.Submit("shape cube")
	term.Submit("shape cylinder")

	term.Update(Keys{Up: true})
	assert.Equal(t, "shape cylinder", term.Input())
	term.Update(Keys{Up: true})
	term.Update(Keys{Up: true})
	assert.Equal(t, "shape cube", term.Input())
	term.Update(Keys{Down: true})
	assert.Equal(t, "shape cylinder", term.Input())
	term.Update(Keys{Down: true})
	assert.Equal(t, "", term.Input())
}

func TestTop(t *testing.T) {
	term, _, _ := newTerminal(t)
	assert.Equal(t, float32(720), term.Top(720))
	term.SetOpen(true)
	assert.Equal(t, float32(720-BarHeight-maxLinesOnScreen*lineHeight), term.Top(720))
	assert.Equal(t, float32(0), term.Top(100))
}
