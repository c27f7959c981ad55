package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is an image drawn about its pivot. The pivot is placed at the
// centre of the entity's Object, shifted by OffsetX/OffsetY.
type SpriteData struct {
	Image    *ebiten.Image
	Rotation float64
	PivotX   float64
	PivotY   float64

	Scale   float64
	Alpha   float64
	OffsetX float64
	OffsetY float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
