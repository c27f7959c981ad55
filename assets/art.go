package assets

import (
	"image"
	"image/color"
	"math"

	cfg "github.com/automoto/streakdrawer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// The reward screen art is drawn once at mount from the render config.

// NewBackground returns a screen sized vertical gradient.
func NewBackground(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	top, bottom := cfg.Render.BackgroundTop, cfg.Render.BackgroundBottom

	if GradientShader == nil {
		img.Fill(bottom)
		return img
	}

	img.DrawRectShader(w, h, GradientShader, &ebiten.DrawRectShaderOptions{
		Uniforms: map[string]any{
			"Top":    rgba(top),
			"Bottom": rgba(bottom),
			"Height": float32(h),
		},
	})
	return img
}

// NewPanel returns the drawer body: a panel with rounded top corners.
func NewPanel(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	r := float32(cfg.Render.DrawerRadius)
	fw, fh := float32(w), float32(h)

	fillRoundedTop(img, 0, 0, fw, fh, r, cfg.Render.DrawerEdgeColor)
	fillRoundedTop(img, 2, 2, fw-4, fh-2, r-2, cfg.Render.DrawerColor)
	return img
}

// NewToken returns the streak token: a silver coin with a star.
func NewToken(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2

	fillCircle(img, c, c, c, cfg.Render.TokenBorder)
	fillCircle(img, c, c, c*0.88, cfg.Render.TokenFill)
	vector.StrokeCircle(img, c, c, c*0.72, 3, cfg.Render.TokenBorder, true)
	fillStar(img, c, c, c*0.5, c*0.22, cfg.Render.TokenShine)
	fillCircle(img, c*0.62, c*0.55, c*0.1, cfg.Render.TokenShine)
	return img
}

// NewBadge returns the badge drawn over the token. Its rays make the spin visible.
func NewBadge(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2

	const rays = 12
	for i := 0; i < rays; i++ {
		a := float64(i) * 2 * math.Pi / rays
		x := c + float32(math.Cos(a))*c*0.98
		y := c + float32(math.Sin(a))*c*0.98
		vector.StrokeLine(img, c, c, x, y, 10, cfg.Render.BadgeRing, true)
	}
	fillCircle(img, c, c, c*0.86, cfg.Render.BadgeFill)
	vector.StrokeCircle(img, c, c, c*0.86, 6, cfg.Render.BadgeRing, true)
	vector.StrokeCircle(img, c, c, c*0.7, 2, cfg.Render.BadgeAccent, true)
	return img
}

func fillRoundedTop(dst *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	r = min(r, w/2, h)
	vector.FillRect(dst, x+r, y, w-2*r, r, clr, false)
	vector.FillRect(dst, x, y+r, w, h-r, clr, false)
	fillCircle(dst, x+r, y+r, r, clr)
	fillCircle(dst, x+w-r, y+r, r, clr)
}

func fillCircle(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, r, clr, true) //nolint:staticcheck // TODO: migrate to vector.FillPath
}

// fillStar draws a five pointed star as a triangle fan around its centre.
func fillStar(dst *ebiten.Image, cx, cy, outer, inner float32, clr color.Color) {
	cr, cg, cb, ca := clr.RGBA()
	vertex := func(x, y float32) ebiten.Vertex {
		return ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(cr) / 0xffff,
			ColorG: float32(cg) / 0xffff,
			ColorB: float32(cb) / 0xffff,
			ColorA: float32(ca) / 0xffff,
		}
	}

	const points = 10
	vs := []ebiten.Vertex{vertex(cx, cy)}
	is := make([]uint16, 0, points*3)
	for i := 0; i < points; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		vs = append(vs, vertex(cx+r*float32(math.Cos(a)), cy+r*float32(math.Sin(a))))
		is = append(is, 0, uint16(i+1), uint16((i+1)%points+1))
	}
	dst.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var whiteImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}

func rgba(c color.RGBA) []float32 {
	return []float32{
		float32(c.R) / 0xff,
		float32(c.G) / 0xff,
		float32(c.B) / 0xff,
		float32(c.A) / 0xff,
	}
}
