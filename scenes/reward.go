package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/streakdrawer/assets"
	"github.com/automoto/streakdrawer/assets/layout"
	"github.com/automoto/streakdrawer/components"
	cfg "github.com/automoto/streakdrawer/config"
	"github.com/automoto/streakdrawer/systems"
	"github.com/automoto/streakdrawer/systems/factory"
	"github.com/automoto/streakdrawer/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const spaceCellSize = 16

// RewardScene shows the streak reward drawer.
type RewardScene struct {
	ecs      *ecs.ECS
	layout   *layout.Layout
	rewardUI *ui.RewardUI
	once     sync.Once
}

// NewRewardScene creates the reward scene. It is built on the first Update.
func NewRewardScene(l *layout.Layout) *RewardScene {
	return &RewardScene{layout: l}
}

func (rs *RewardScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	if rewardData := systems.GetReward(rs.ecs); rewardData != nil {
		rs.rewardUI.SetStats(rewardData.Stats)
	}
	rs.rewardUI.Update()
}

func (rs *RewardScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.DrawLayer(cfg.Default, screen)
	rs.rewardUI.Draw(screen)
	rs.ecs.DrawLayer(cfg.Overlay, screen)
}

func (rs *RewardScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders, using flat background: %v", err)
	}
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, plays what the previous frame queued)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateRewardControls)
	ecs.AddSystem(systems.UpdateTaps)
	ecs.AddSystem(systems.UpdateReward)
	ecs.AddSystem(systems.UpdateSprites)
	ecs.AddSystem(systems.UpdatePersistence)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawLightBox)
	ecs.AddRenderer(cfg.Default, systems.DrawPanel)
	ecs.AddRenderer(cfg.Default, systems.DrawRewardArt)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	rs.ecs = ecs

	screen := rs.layout.Resolve(float64(cfg.C.Width), float64(cfg.C.Height))

	spaceEntry := factory.CreateSpace(ecs, cfg.C.Width, cfg.C.Height, spaceCellSize)
	space := components.Space.Get(spaceEntry)
	factory.CreateSprites(ecs, screen)
	factory.CreateClaimRegion(ecs, space, screen.ClaimRegion)
	factory.CreateResetRegion(ecs, space, screen.ResetButton)

	rewardEntry := factory.CreateReward(ecs, screen, cfg.Reward, systems.LoadStats())
	rewardData := components.Reward.Get(rewardEntry)
	rewardData.Drawer.Mount()

	rewardUI, err := ui.NewRewardUI(screen, func() {
		rewardData.Drawer.Reset()
	})
	if err != nil {
		panic("failed to build reward UI: " + err.Error())
	}
	rs.rewardUI = rewardUI
}
