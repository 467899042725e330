// Package tui renders the sandbox to a terminal and reads single key presses.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"kickdoor/pkg/engine/input"
	"kickdoor/pkg/engine/terminal"
	"kickdoor/pkg/game/i18n"
	"kickdoor/pkg/game/renderer"
	"kickdoor/pkg/game/state"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows    = 7
	ViewportMinCols    = 15
	ViewportSideMargin = 10
	// Title, blanks, messages pane (header + 5 messages + footer) and prompt
	ViewportTopMargin = 13
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	keys *input.KeyReader
	out  io.Writer

	colorAction      color.Style
	colorActionShort color.Style
	colorSubtle      color.Style
	styles           map[renderer.TextStyle]color.Style
}

// New creates a TUI renderer on stdin and stdout
func New() *TUIRenderer {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO creates a TUI renderer reading keys from in and drawing to out
func NewWithIO(in io.Reader, out io.Writer) *TUIRenderer {
	t := &TUIRenderer{
		keys: input.NewKeyReaderFrom(in),
		out:  out,
	}
	t.Init()
	return t
}

// Init initializes the color styles
func (t *TUIRenderer) Init() {
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleFloor:    {color.FgGray},
		renderer.StyleWall:     t.colorSubtle,
		renderer.StyleDoor:     {color.FgYellow, color.OpBold},
		renderer.StyleDoorOpen: {color.FgGreen},
		renderer.StyleDenied:   {color.FgRed, color.OpBold},
		renderer.StyleFixture:  {color.FgBlue},
		renderer.StylePlayer:   {color.FgGreen, color.BgBlack, color.OpBold},
		renderer.StyleXP:       {color.FgCyan, color.OpBold},
		renderer.StyleSubtle:   t.colorSubtle,
	}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if style == renderer.StyleAction {
		if text == "" {
			return text
		}
		r := []rune(text)
		return t.colorActionShort.Sprint(string(r[:1])) + t.colorAction.Sprint(string(r[1:]))
	}
	if s, ok := t.styles[style]; ok {
		return s.Sprint(text)
	}
	return text
}

// FormatText expands markup in an already formatted message
func (t *TUIRenderer) FormatText(msg string) string {
	return renderer.FormatString(msg, t.StyleText)
}

// Run draws a frame, reads a key and hands its intent to h until the game
// quits or input runs out.
func (t *TUIRenderer) Run(h renderer.Host) error {
	for !h.Game().Quit {
		t.RenderFrame(h.Game())

		raw, err := t.keys.ReadKey()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		h.ProcessIntent(input.MapToIntent(input.NewDebouncedInput(raw)))
	}
	t.RenderFrame(h.Game())
	fmt.Fprintln(t.out, i18n.T("GOODBYE"))
	return nil
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.SizeOf(t.out)

	cols = max(termWidth-(ViewportSideMargin*2), ViewportMinCols)
	rows = max(termHeight-ViewportTopMargin, ViewportMinRows)

	// Keep both odd so the player sits in the middle
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}
	return rows, cols
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	terminal.Clear(t.out)

	fmt.Fprintf(t.out, "%s  %s\n\n", t.colorAction.Sprint(g.Name), t.colorSubtle.Sprint(renderer.Status(g)))
	t.printMap(g)
	t.printMessagesPane(g)
	fmt.Fprint(t.out, "\n> ")
}

func (t *TUIRenderer) printMap(g *state.Game) {
	if g.Grid == nil || g.Player == nil {
		return
	}
	rows, cols := t.GetViewportSize()
	pos := g.Player.Position()
	startY := pos.Y - rows/2
	startX := pos.X - cols/2
	indent := strings.Repeat(" ", ViewportSideMargin)

	var sb strings.Builder
	for vy := range rows {
		sb.WriteString(indent)
		for vx := range cols {
			icon, style := renderer.Glyph(g, g.Grid.GetCell(startX+vx, startY+vy, pos.Z))
			sb.WriteString(t.StyleText(icon, style))
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(t.out, sb.String())
}

func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width, _ := terminal.SizeOf(t.out)

	label := " " + i18n.T("MESSAGES") + " "
	labelLen := len([]rune(label))
	sideLen := max((width-labelLen)/2, 1)
	rightLen := max(width-sideLen-labelLen, 1)

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))
	for _, msg := range g.Messages {
		fmt.Fprintf(t.out, "  %s\n", t.FormatText(msg))
	}
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
