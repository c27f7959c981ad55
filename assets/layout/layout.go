// Package layout loads the static geometry of the reward screen from a Tiled
// map and resolves it against the real screen size.
package layout

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

//go:embed reward.tmx
var layoutFS embed.FS

// DefaultPath is the embedded reward screen layout.
const DefaultPath = "reward.tmx"

const objectGroupName = "layout"

// Object names the screen expects.
const (
	ResetButton = "reset_button"
	ClaimRegion = "claim_region"
	Token       = "token"
	Badge       = "badge"
)

// Anchor says how an object keeps its place when the screen differs from the
// reference canvas.
type Anchor string

const (
	// AnchorTopLeft keeps the distance to the top and left edges.
	AnchorTopLeft Anchor = "top-left"
	// AnchorCenter keeps the offset of the object's centre from the screen centre.
	AnchorCenter Anchor = "center"
	// AnchorBottomStretch keeps the left, right and bottom margins and the height.
	AnchorBottomStretch Anchor = "bottom-stretch"
)

// Rect is an axis-aligned box in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether the point lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Element is one named object of the layout in reference coordinates.
type Element struct {
	Name   string
	Anchor Anchor
	Rect   Rect
}

// Layout is the parsed map: the reference canvas and its elements.
type Layout struct {
	RefWidth  float64
	RefHeight float64
	Elements  map[string]Element
}

// Screen is a layout resolved for one screen size.
type Screen struct {
	Width, Height float64

	ResetButton Rect
	ClaimRegion Rect
	Token       Rect
	Badge       Rect
}

// LoadDefault parses the embedded layout.
func LoadDefault() (*Layout, error) {
	return Load(layoutFS, DefaultPath)
}

// Load parses a TMX layout from fsys.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", tmxPath, err)
	}

	l := &Layout{
		RefWidth:  float64(m.Width * m.TileWidth),
		RefHeight: float64(m.Height * m.TileHeight),
		Elements:  map[string]Element{},
	}

	for _, og := range m.ObjectGroups {
		if og.Name != objectGroupName {
			continue
		}
		for _, o := range og.Objects {
			anchor := Anchor(o.Properties.GetString("anchor"))
			switch anchor {
			case AnchorTopLeft, AnchorCenter, AnchorBottomStretch:
			case "":
				anchor = AnchorTopLeft
			default:
				return nil, fmt.Errorf("layout object %q: unknown anchor %q", o.Name, anchor)
			}
			l.Elements[o.Name] = Element{
				Name:   o.Name,
				Anchor: anchor,
				Rect:   Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
			}
		}
	}

	for _, name := range []string{ResetButton, ClaimRegion, Token, Badge} {
		if _, ok := l.Elements[name]; !ok {
			return nil, fmt.Errorf("layout %s: missing object %q", tmxPath, name)
		}
	}

	return l, nil
}

// Resolve places every element on a screen of the given size.
func (l *Layout) Resolve(width, height float64) Screen {
	return Screen{
		Width:       width,
		Height:      height,
		ResetButton: l.place(ResetButton, width, height),
		ClaimRegion: l.place(ClaimRegion, width, height),
		Token:       l.place(Token, width, height),
		Badge:       l.place(Badge, width, height),
	}
}

func (l *Layout) place(name string, width, height float64) Rect {
	e := l.Elements[name]
	r := e.Rect

	switch e.Anchor {
	case AnchorCenter:
		dx := r.CenterX() - l.RefWidth/2
		dy := r.CenterY() - l.RefHeight/2
		return Rect{
			X: width/2 + dx - r.W/2,
			Y: height/2 + dy - r.H/2,
			W: r.W,
			H: r.H,
		}
	case AnchorBottomStretch:
		right := l.RefWidth - (r.X + r.W)
		bottom := l.RefHeight - (r.Y + r.H)
		return Rect{
			X: r.X,
			Y: height - bottom - r.H,
			W: width - r.X - right,
			H: r.H,
		}
	}
	return r
}
