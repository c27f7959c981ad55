package factory

import (
	"github.com/automoto/streakdrawer/archetypes"
	"github.com/automoto/streakdrawer/assets/layout"
	"github.com/automoto/streakdrawer/components"
	"github.com/automoto/streakdrawer/shared/reward"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Ticks between attempts to save claim stats after a failed write.
const saveRetryTicks = 180

// CreateReward spawns the reward singleton with a hidden drawer.
func CreateReward(ecs *ecs.ECS, screen layout.Screen, tuning reward.Tuning, stats reward.Stats) *donburi.Entry {
	entry := archetypes.Reward.Spawn(ecs)
	geom := reward.Geometry{Width: screen.Width, Height: screen.Height}
	components.Reward.SetValue(entry, components.RewardData{
		Drawer: reward.NewDrawer(geom, tuning),
		Screen: screen,
		Stats:  stats,
		Saver:  reward.Saver{RetryTicks: saveRetryTicks},
	})
	return entry
}
