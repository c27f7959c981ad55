package components

import "github.com/yohamta/donburi"

// DebugData toggles the on-screen overlay.
type DebugData struct {
	ShowOverlay bool
}

var Debug = donburi.NewComponentType[DebugData]()
