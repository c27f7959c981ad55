package reward

import (
	"math"

	"github.com/automoto/streakdrawer/shared/timeline"
)

// TokenStyle is the token's opacity and transform. The transform is applied
// about the token centre: translate X, translate Y, then scale.
type TokenStyle struct {
	Opacity    float64
	TranslateX float64
	TranslateY float64
	Scale      float64
}

// BadgeStyle is the badge's opacity and rotation about its centre.
type BadgeStyle struct {
	Opacity float64
	Degrees float64
}

// Radians converts the rotation for GeoM.Rotate. The angle is not wrapped.
func (b BadgeStyle) Radians() float64 {
	return b.Degrees * math.Pi / 180
}

type DrawerStyle struct {
	OffsetY float64
}

type LightBoxStyle struct {
	Opacity float64
}

func TokenStyleOf(r timeline.Reader) TokenStyle {
	return TokenStyle{
		Opacity:    clampOpacity(r.Value(timeline.TokenOpacity)),
		TranslateX: float64(r.Value(timeline.TranslateX)),
		TranslateY: float64(r.Value(timeline.TranslateY)),
		Scale:      float64(r.Value(timeline.Scale)),
	}
}

func BadgeStyleOf(r timeline.Reader) BadgeStyle {
	return BadgeStyle{
		Opacity: clampOpacity(r.Value(timeline.BadgeOpacity)),
		Degrees: float64(r.Value(timeline.BadgeRotation)),
	}
}

func DrawerStyleOf(r timeline.Reader) DrawerStyle {
	return DrawerStyle{OffsetY: float64(r.Value(timeline.DrawerY))}
}

func LightBoxStyleOf(r timeline.Reader) LightBoxStyle {
	return LightBoxStyle{Opacity: clampOpacity(r.Value(timeline.LightBoxOpacity))}
}

// clampOpacity keeps alpha in [0,1] whatever easing produced it.
func clampOpacity(v float32) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return float64(v)
}

// Art is one of the two images the claim sequence animates.
type Art int

const (
	ArtToken Art = iota
	ArtBadge
)

// ArtOrder lists the art back to front. The badge covers the token until it
// spins away.
func ArtOrder() []Art {
	return []Art{ArtToken, ArtBadge}
}
