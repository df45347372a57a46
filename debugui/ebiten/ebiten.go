// Package ebiten hosts the debug overlay on ebiten's frame loop through the
// Dear ImGui ebiten backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/pyre/debugui"
)

// Backend owns the Dear ImGui ebiten backend for one window.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the backend and its window. The imgui.ini layout file is
// disabled; panel placement is not worth persisting for a debug tool.
func NewBackend(title string, width, height int) *Backend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Backend{EbitenBackend: b}
}

// Game sandwiches the wrapped game's update between ImGui frame boundaries
// and draws the overlay on top of the game's own rendering. Pass it to
// ebiten.RunGame in place of the wrapped game.
type Game struct {
	ebiten.Game

	backend *Backend
	overlay *debugui.Overlay
}

// Wrap attaches the overlay to a game.
func Wrap(inner ebiten.Game, backend *Backend, overlay *debugui.Overlay) *Game {
	return &Game{Game: inner, backend: backend, overlay: overlay}
}

func (g *Game) Update() error {
	g.backend.BeginFrame()

	err := g.Game.Update()
	g.overlay.Render()

	g.backend.EndFrame()
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Game.Draw(screen)

	// Overlay on top of game content.
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return g.Game.Layout(outsideWidth, outsideHeight)
}
