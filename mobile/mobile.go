//go:build mobile

// Package mobile is the ebitenmobile binding entry point.
//
// Build with:
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.automoto.streakdrawer -o build/android/streakdrawer.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/StreakDrawer.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/automoto/streakdrawer/app"
	"github.com/automoto/streakdrawer/config"
	"github.com/automoto/streakdrawer/systems"
	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	// Escape has no meaning on a phone
	config.Debug.AllowQuit = false

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game, err := app.NewGame()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	mobile.SetGame(game)
}

// Dummy is exported so ebitenmobile recognises the package.
func Dummy() {}
