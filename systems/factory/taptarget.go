package factory

import (
	"github.com/automoto/streakdrawer/archetypes"
	"github.com/automoto/streakdrawer/assets/layout"
	"github.com/automoto/streakdrawer/components"
	"github.com/automoto/streakdrawer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTapTarget adds a tappable region to the space. The resolv object
// carries the entry in Data so hits resolve back to the target.
func CreateTapTarget(ecs *ecs.ECS, space *resolv.Space, target components.TapTargetData) *donburi.Entry {
	entry := archetypes.TapTarget.Spawn(ecs)
	components.TapTarget.SetValue(entry, target)

	r := target.Rest
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, resolvTag(target.Kind))
	obj.Data = entry
	space.Add(obj)
	components.Object.Set(entry, &components.ObjectData{Object: obj})
	return entry
}

// CreateClaimRegion is the drawer's claim area. It moves with the drawer.
func CreateClaimRegion(ecs *ecs.ECS, space *resolv.Space, rect layout.Rect) *donburi.Entry {
	return CreateTapTarget(ecs, space, components.TapTargetData{
		Kind:          components.TapClaim,
		Rest:          rect,
		FollowsDrawer: true,
	})
}

// CreateResetRegion mirrors the Reset button for touches, which the button
// itself does not receive.
func CreateResetRegion(ecs *ecs.ECS, space *resolv.Space, rect layout.Rect) *donburi.Entry {
	return CreateTapTarget(ecs, space, components.TapTargetData{
		Kind:      components.TapReset,
		Rest:      rect,
		TouchOnly: true,
	})
}

func resolvTag(kind components.TapKind) string {
	if kind == components.TapReset {
		return tags.ResolvReset
	}
	return tags.ResolvClaim
}
