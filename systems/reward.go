package systems

import (
	"os"
	"time"

	"github.com/automoto/streakdrawer/components"
	cfg "github.com/automoto/streakdrawer/config"
	"github.com/automoto/streakdrawer/shared/reward"
	"github.com/automoto/streakdrawer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetReward returns the reward singleton, or nil before the scene spawned it.
func GetReward(ecs *ecs.ECS) *components.RewardData {
	entry, ok := tags.Reward.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Reward.Get(entry)
}

// UpdateRewardControls maps keyboard and gamepad actions onto the drawer.
func UpdateRewardControls(ecs *ecs.ECS) {
	rewardData := GetReward(ecs)
	if rewardData == nil {
		return
	}
	input := getOrCreateInput(ecs)
	d := rewardData.Drawer

	if GetAction(input, cfg.ActionClaim).JustPressed {
		d.Claim()
	}
	if GetAction(input, cfg.ActionReset).JustPressed {
		d.Reset()
	}
	if GetAction(input, cfg.ActionRemount).JustPressed {
		d.Remount()
	}
	if GetAction(input, cfg.ActionQuit).JustPressed && cfg.Debug.AllowQuit {
		os.Exit(0)
	}
}

// UpdateReward advances the drawer by one tick and reacts to its cues.
func UpdateReward(ecs *ecs.ECS) {
	rewardData := GetReward(ecs)
	if rewardData == nil {
		return
	}

	rewardData.Drawer.Update(tickDuration())
	for _, cue := range rewardData.Drawer.DrainCues() {
		handleCue(ecs, rewardData, cue)
	}
}

func handleCue(ecs *ecs.ECS, rewardData *components.RewardData, cue string) {
	switch cue {
	case reward.CueTokenLanded:
		PlaySFX(ecs, cfg.SoundTokenLanded)
	case reward.CueClaimed:
		PlaySFX(ecs, cfg.SoundClaimed)
		rewardData.Stats.Record(time.Now())
		rewardData.Saver.MarkDirty()
	}
}

// UpdateSprites copies the current styles into the scene's sprites.
func UpdateSprites(ecs *ecs.ECS) {
	rewardData := GetReward(ecs)
	if rewardData == nil {
		return
	}
	values := rewardData.Drawer.Values()
	offset := drawerOffset(rewardData)

	if e, ok := tags.Panel.First(ecs.World); ok {
		components.Sprite.Get(e).OffsetY = offset
	}

	if e, ok := tags.Badge.First(ecs.World); ok {
		style := reward.BadgeStyleOf(values)
		sprite := components.Sprite.Get(e)
		sprite.Rotation = style.Radians()
		sprite.Alpha = style.Opacity
		sprite.OffsetY = offset
	}

	if e, ok := tags.Token.First(ecs.World); ok {
		style := reward.TokenStyleOf(values)
		sprite := components.Sprite.Get(e)
		sprite.Scale = style.Scale
		sprite.Alpha = style.Opacity
		sprite.OffsetX = style.TranslateX
		sprite.OffsetY = style.TranslateY + offset
	}
}

func drawerOffset(rewardData *components.RewardData) float64 {
	return reward.DrawerStyleOf(rewardData.Drawer.Values()).OffsetY
}

// lightBoxOpacity is the overlay alpha between background and drawer.
func lightBoxOpacity(rewardData *components.RewardData) float64 {
	return reward.LightBoxStyleOf(rewardData.Drawer.Values()).Opacity
}

func tickDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}
