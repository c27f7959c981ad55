package components

import (
	"github.com/automoto/streakdrawer/assets/layout"
	"github.com/automoto/streakdrawer/shared/reward"
	"github.com/yohamta/donburi"
)

// RewardData is the singleton state of the reward screen.
type RewardData struct {
	Drawer *reward.Drawer
	Screen layout.Screen
	Stats  reward.Stats
	Saver  reward.Saver
}

var Reward = donburi.NewComponentType[RewardData]()
