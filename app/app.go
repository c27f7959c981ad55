// Package app wires the reward screen into an ebiten.Game for the desktop
// and mobile entry points.
package app

import (
	"fmt"

	"github.com/automoto/streakdrawer/assets/layout"
	"github.com/automoto/streakdrawer/config"
	"github.com/automoto/streakdrawer/fonts"
	"github.com/automoto/streakdrawer/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// NewGame loads fonts and the screen layout. Config must be final by now:
// the layout is resolved against config.C when the scene starts.
func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	l, err := layout.LoadDefault()
	if err != nil {
		return nil, err
	}

	return &Game{
		scene: scenes.NewRewardScene(l),
	}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}
