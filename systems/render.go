package systems

import (
	"image/color"

	"github.com/automoto/streakdrawer/components"
	cfg "github.com/automoto/streakdrawer/config"
	"github.com/automoto/streakdrawer/shared/reward"
	"github.com/automoto/streakdrawer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable draw options to avoid per-frame allocations
var drawOp = &ebiten.DrawImageOptions{}

func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Background.Each(ecs.World, func(e *donburi.Entry) {
		drawSprite(screen, e)
	})
}

// DrawLightBox dims everything behind the drawer.
func DrawLightBox(ecs *ecs.ECS, screen *ebiten.Image) {
	rewardData := GetReward(ecs)
	if rewardData == nil {
		return
	}
	alpha := lightBoxOpacity(rewardData)
	if alpha <= 0 {
		return
	}
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), scaleAlpha(cfg.Render.LightBoxColor, alpha), false)
}

func DrawPanel(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Panel.Each(ecs.World, func(e *donburi.Entry) {
		drawSprite(screen, e)
	})
}

// DrawRewardArt draws the token and the badge over it.
func DrawRewardArt(ecs *ecs.ECS, screen *ebiten.Image) {
	for _, art := range reward.ArtOrder() {
		tag := tags.Token
		if art == reward.ArtBadge {
			tag = tags.Badge
		}
		if e, ok := tag.First(ecs.World); ok {
			drawSprite(screen, e)
		}
	}
}

// drawSprite places the sprite's pivot on the centre of its object, then
// applies scale, rotation and the frame's offset.
func drawSprite(screen *ebiten.Image, e *donburi.Entry) {
	sprite := components.Sprite.Get(e)
	if sprite.Image == nil || sprite.Alpha <= 0 {
		return
	}
	o := components.Object.Get(e)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	drawOp.GeoM.Translate(-sprite.PivotX, -sprite.PivotY)
	drawOp.GeoM.Scale(sprite.Scale, sprite.Scale)
	drawOp.GeoM.Rotate(sprite.Rotation)

	centerX := o.X + o.W/2
	centerY := o.Y + o.H/2
	drawOp.GeoM.Translate(centerX+sprite.OffsetX, centerY+sprite.OffsetY)

	drawOp.ColorScale.ScaleAlpha(float32(sprite.Alpha))
	drawOp.Filter = ebiten.FilterLinear

	screen.DrawImage(sprite.Image, drawOp)
}

// scaleAlpha returns c with every premultiplied channel scaled by a.
func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
