package main

import (
	"flag"
	"log"

	"github.com/automoto/streakdrawer/app"
	"github.com/automoto/streakdrawer/config"
	"github.com/automoto/streakdrawer/shared/reward"
	"github.com/automoto/streakdrawer/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in settings")
	width := flag.Int("width", 0, "Logical screen width (0 = config value)")
	height := flag.Int("height", 0, "Logical screen height (0 = config value)")
	debug := flag.Bool("debug", false, "Show the debug overlay on start")
	reentry := flag.String("reentry", "", "Claim while claiming: restart or ignore (empty = config value)")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *width > 0 {
		config.C.Width = *width
	}
	if *height > 0 {
		config.C.Height = *height
	}
	if *debug {
		config.Debug.ShowOverlay = true
	}
	if *reentry != "" {
		policy, err := reward.ParseReentryPolicy(*reentry)
		if err != nil {
			log.Fatalf("Invalid -reentry: %v", err)
		}
		config.Reward.Reentry = policy
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game, err := app.NewGame()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Streak reward")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
