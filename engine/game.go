package engine

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// MaxDeltaTime is the upper clamp applied to frame deltas before they reach
// the simulation, equivalent to a 20 FPS floor. A single pathologically long
// frame (tab switch, GC pause) must not produce a huge unstable integration
// step; no sub-stepping is performed beyond this clamp.
const MaxDeltaTime = 1.0 / 20.0

// ClampDelta limits a frame delta to [0, MaxDeltaTime].
func ClampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > MaxDeltaTime {
		return MaxDeltaTime
	}
	return dt
}

// Game adapts the scene stack to ebiten's frame loop. It owns the scene
// manager and service registry, measures and clamps the wall-clock delta, and
// hands drawing off to the Renderer callback: the simulation exposes plain
// transform records and does not know how they are drawn.
type Game struct {
	Scenes   *SceneManager
	Services *Services

	// Renderer draws the current frame. Reads of entity and particle state
	// from it are safe because ebiten calls Draw only after Update returns.
	Renderer func(screen *ebiten.Image)

	// Width and Height fix the logical layout size.
	Width, Height int

	last time.Time
}

// NewGame creates a game with an empty scene stack and service registry.
func NewGame(width, height int) *Game {
	return &Game{
		Scenes:   NewSceneManager(),
		Services: NewServices(),
		Width:    width,
		Height:   height,
	}
}

// Update implements ebiten.Game. It advances the current scene by the
// clamped wall-clock delta.
func (g *Game) Update() error {
	now := time.Now()
	var dt float64
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	g.Scenes.Update(ClampDelta(dt))
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.Renderer != nil {
		g.Renderer(screen)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}

// Run drives the scene stack headlessly at the given interval until the
// context is cancelled. Tools and stress tests use this in place of ebiten's
// loop.
func (g *Game) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			g.Scenes.Update(ClampDelta(dt))
		}
	}
}
