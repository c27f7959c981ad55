package systems

import (
	"github.com/automoto/streakdrawer/components"
	"github.com/automoto/streakdrawer/shared/tapspace"
	"github.com/automoto/streakdrawer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTaps moves tap targets with the drawer and applies this frame's taps.
// Must run after UpdateInput.
func UpdateTaps(ecs *ecs.ECS) {
	rewardData := GetReward(ecs)
	spaceEntry, ok := components.Space.First(ecs.World)
	if rewardData == nil || !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	syncTapTargets(ecs, rewardData)

	input := getOrCreateInput(ecs)
	for _, tap := range input.Taps {
		target := HitTest(space, tap.X, tap.Y)
		if target == nil {
			continue
		}
		data := components.TapTarget.Get(target)
		if data.TouchOnly && !tap.Touch {
			continue
		}
		applyTap(rewardData, data.Kind)
	}
}

func applyTap(rewardData *components.RewardData, kind components.TapKind) {
	switch kind {
	case components.TapClaim:
		rewardData.Drawer.Claim()
	case components.TapReset:
		rewardData.Drawer.Reset()
	}
}

// syncTapTargets keeps drawer-bound targets under the drawer.
func syncTapTargets(ecs *ecs.ECS, rewardData *components.RewardData) {
	offset := drawerOffset(rewardData)
	tags.TapTarget.Each(ecs.World, func(e *donburi.Entry) {
		target := components.TapTarget.Get(e)
		if !target.FollowsDrawer {
			return
		}
		tapspace.Place(components.Object.Get(e).Object, target.Rest, offset)
	})
}

// HitTest returns the tap target under the point, or nil.
func HitTest(space *resolv.Space, x, y float64) *donburi.Entry {
	obj := tapspace.HitTest(space, x, y, tags.ResolvClaim, tags.ResolvReset)
	if obj == nil {
		return nil
	}
	if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() {
		return entry
	}
	return nil
}
