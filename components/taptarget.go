package components

import (
	"github.com/automoto/streakdrawer/assets/layout"
	"github.com/yohamta/donburi"
)

// TapKind is what a tap on a target does.
type TapKind int

const (
	TapClaim TapKind = iota
	TapReset
)

func (k TapKind) String() string {
	if k == TapReset {
		return "reset"
	}
	return "claim"
}

// TapTargetData is a tappable region. Rest is its position with the drawer
// at offset zero; FollowsDrawer targets move with the drawer.
type TapTargetData struct {
	Kind          TapKind
	Rest          layout.Rect
	FollowsDrawer bool

	// Mouse clicks on this target are handled elsewhere (ebitenui).
	TouchOnly bool
}

var TapTarget = donburi.NewComponentType[TapTargetData]()
