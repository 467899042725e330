// Package ebiten renders the sandbox in a window using Ebitengine.
// Ebiten is a 2D game library for Go: https://ebiten.org/
package ebiten

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"kickdoor/pkg/engine/input"
	"kickdoor/pkg/game/renderer"
)

const (
	DefaultTileSize = 24
	minScreenWidth  = 320
	lineHeight      = 16
	statusLines     = 7 // status + up to five messages + padding
)

var (
	colorBackground = color.RGBA{0x10, 0x10, 0x14, 0xff}

	palette = map[renderer.TextStyle]color.RGBA{
		renderer.StyleFloor:    {0x3a, 0x3a, 0x40, 0xff},
		renderer.StyleWall:     {0x6b, 0x6b, 0x75, 0xff},
		renderer.StyleDoor:     {0xd8, 0xb0, 0x30, 0xff},
		renderer.StyleDoorOpen: {0x4c, 0xaf, 0x50, 0xff},
		renderer.StyleDenied:   {0xc6, 0x28, 0x28, 0xff},
		renderer.StyleFixture:  {0x42, 0x6e, 0xb4, 0xff},
		renderer.StylePlayer:   {0x9c, 0xff, 0x57, 0xff},
		renderer.StyleSubtle:   {0x55, 0x4a, 0x40, 0xff},
	}
)

// EbitenRenderer runs the game in a window. Every Ebitengine update is one
// game tick.
type EbitenRenderer struct {
	tileSize int
	logger   *slog.Logger
}

// New creates a window renderer
func New(logger *slog.Logger) *EbitenRenderer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EbitenRenderer{tileSize: DefaultTileSize, logger: logger}
}

// Run opens the window and blocks until the player quits or closes it
func (e *EbitenRenderer) Run(h renderer.Host) error {
	g := &game{host: h, tileSize: e.tileSize, logger: e.logger}
	w, ht := g.Layout(0, 0)
	ebiten.SetWindowSize(w, ht)
	ebiten.SetWindowTitle(h.Game().Name)
	e.logger.Info("window opened", "width", w, "height", ht)
	return ebiten.RunGame(g)
}

// game implements ebiten.Game
type game struct {
	host     renderer.Host
	tileSize int
	logger   *slog.Logger
}

func (g *game) Update() error {
	if g.host.Game().Quit {
		return ebiten.Termination
	}
	if intent := pollIntent(); intent.Action != input.ActionNone {
		att := g.host.ProcessIntent(intent)
		g.logger.Debug("intent", "action", input.ActionName(intent.Action), "outcome", att.Outcome.String())
		return nil
	}
	g.host.Tick()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	gs := g.host.Game()
	if gs.Grid == nil || gs.Player == nil {
		return
	}
	z := gs.Player.Position().Z
	tile := float32(g.tileSize)
	for y := range gs.Grid.Height() {
		for x := range gs.Grid.Width() {
			_, style := renderer.Glyph(gs, gs.Grid.GetCell(x, y, z))
			clr, ok := palette[style]
			if !ok {
				continue
			}
			vector.DrawFilledRect(screen, float32(x)*tile+1, float32(y)*tile+1, tile-2, tile-2, clr, false)
		}
	}

	top := gs.Grid.Height()*g.tileSize + 4
	ebitenutil.DebugPrintAt(screen, gs.Name+"  "+renderer.Status(gs), 4, top)
	for i, msg := range gs.Messages {
		ebitenutil.DebugPrintAt(screen, renderer.Plain(msg), 4, top+(i+1)*lineHeight+4)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	grid := g.host.Game().Grid
	if grid == nil {
		return minScreenWidth, statusLines * lineHeight
	}
	return max(grid.Width()*g.tileSize, minScreenWidth), grid.Height()*g.tileSize + statusLines*lineHeight
}
