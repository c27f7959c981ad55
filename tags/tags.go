package tags

import "github.com/yohamta/donburi"

var (
	Reward     = donburi.NewTag().SetName("Reward")
	Background = donburi.NewTag().SetName("Background")
	Panel      = donburi.NewTag().SetName("Panel")
	Token      = donburi.NewTag().SetName("Token")
	Badge      = donburi.NewTag().SetName("Badge")
	TapTarget  = donburi.NewTag().SetName("TapTarget")
)

// Resolv tags for tap hit-testing
const (
	ResolvClaim = "claim"
	ResolvReset = "reset"
)
