package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shroomydoomy/config"
	"github.com/milk9111/shroomydoomy/engine"
	"github.com/milk9111/shroomydoomy/input"
	"github.com/milk9111/shroomydoomy/render/screen"
)

// Game adapts the engine to ebiten's Game interface.
type Game struct {
	engine   *engine.Engine
	renderer *screen.Renderer
	input    *input.Poller
	cfg      *config.Config
}

func NewGame(eng *engine.Engine, renderer *screen.Renderer, cfg *config.Config) *Game {
	return &Game{
		engine:   eng,
		renderer: renderer,
		input:    input.NewPoller(),
		cfg:      cfg,
	}
}

func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	err := g.engine.Update(dt, g.input.Poll())
	if errors.Is(err, engine.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (g *Game) Draw(screenImg *ebiten.Image) {
	g.renderer.SetTarget(screenImg)
	g.engine.Draw()

	if g.cfg.Debug.Physics {
		ps := g.engine.Physics()
		screen.DrawPhysicsDebug(ps.Space(), ps.Bodies(), screenImg)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
