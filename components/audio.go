package components

import (
	cfg "github.com/automoto/streakdrawer/config"
	"github.com/yohamta/donburi"
)

// AudioData stores sounds queued by systems this frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
