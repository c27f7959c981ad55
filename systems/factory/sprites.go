package factory

import (
	"github.com/automoto/streakdrawer/archetypes"
	"github.com/automoto/streakdrawer/assets"
	"github.com/automoto/streakdrawer/assets/layout"
	"github.com/automoto/streakdrawer/components"
	cfg "github.com/automoto/streakdrawer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSprites spawns the scene art in draw order: background, drawer
// panel, token, badge.
func CreateSprites(ecs *ecs.ECS, screen layout.Screen) {
	w, h := int(screen.Width), int(screen.Height)

	background := layout.Rect{X: 0, Y: cfg.Render.BackgroundOffsetY, W: screen.Width, H: screen.Height}
	spawnSprite(archetypes.Background.Spawn(ecs), background, assets.NewBackground(w, h))

	top := screen.Height * cfg.Render.DrawerTopRatio
	panel := layout.Rect{X: 0, Y: top, W: screen.Width, H: screen.Height - top}
	spawnSprite(archetypes.Panel.Spawn(ecs), panel, assets.NewPanel(w, int(panel.H)))

	spawnSprite(archetypes.Token.Spawn(ecs), screen.Token, assets.NewToken(int(screen.Token.W)))
	spawnSprite(archetypes.Badge.Spawn(ecs), screen.Badge, assets.NewBadge(int(screen.Badge.W)))
}

func spawnSprite(entry *donburi.Entry, rect layout.Rect, img *ebiten.Image) {
	b := img.Bounds()
	components.Sprite.SetValue(entry, components.SpriteData{
		Image:  img,
		PivotX: float64(b.Dx()) / 2,
		PivotY: float64(b.Dy()) / 2,
		Scale:  1,
		Alpha:  1,
	})
	components.Object.Set(entry, &components.ObjectData{
		Object: resolv.NewObject(rect.X, rect.Y, rect.W, rect.H),
	})
}
