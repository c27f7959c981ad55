package systems

import (
	"fmt"

	"github.com/automoto/streakdrawer/components"
	cfg "github.com/automoto/streakdrawer/config"
	"github.com/automoto/streakdrawer/fonts"
	"github.com/automoto/streakdrawer/shared/timeline"
	"github.com/automoto/streakdrawer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateDebug returns the singleton Debug component, creating if needed
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{ShowOverlay: cfg.Debug.ShowOverlay})
	}
	return components.Debug.Get(entry)
}

// UpdateDebug toggles the overlay.
func UpdateDebug(ecs *ecs.ECS) {
	debug := GetOrCreateDebug(ecs)
	if GetAction(getOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		debug.ShowOverlay = !debug.ShowOverlay
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).ShowOverlay {
		return
	}

	// Outline tap regions where resolv currently has them
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		c := cfg.Render.HitRegionColor
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			if !obj.HasTags(tags.ResolvClaim, tags.ResolvReset) {
				continue
			}
			x, y, w, h := float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	rewardData := GetReward(ecs)
	if rewardData == nil {
		return
	}
	d := rewardData.Drawer
	input := getOrCreateInput(ecs)

	lines := []string{
		fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("phase %s  entering %t  claiming %t", d.Phase(), d.Entering(), d.Claiming()),
		fmt.Sprintf("reentry %s  input %s", d.Tuning().Reentry, input.LastInputMethod),
		fmt.Sprintf("claims %d  streak %d", rewardData.Stats.TotalClaims, rewardData.Stats.Streak),
	}
	values := d.Values()
	for ch := timeline.Channel(0); ch < timeline.ChannelCount; ch++ {
		lines = append(lines, fmt.Sprintf("%-22s %8.3f", ch, values.Value(ch)))
	}

	face := fonts.Mono.Get()
	lineHeight := face.Metrics().Height.Ceil()
	x, y := 110, 24
	for _, line := range lines {
		text.Draw(screen, line, face, x, y, cfg.White)
		y += lineHeight
	}
}
