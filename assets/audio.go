package assets

import (
	"bytes"
	"fmt"
	"time"

	cfg "github.com/automoto/streakdrawer/config"
	"github.com/automoto/streakdrawer/shared/chime"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader handles synthesis and caching of chime sounds
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache rendered PCM per sound
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound and caches it without creating a player.
// Call this at startup to avoid a hitch on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	notes, ok := notesFor(id)
	if !ok {
		return fmt.Errorf("unknown sound %d", id)
	}

	pcm := chime.Render(l.context.SampleRate(), notes, time.Duration(cfg.Audio.NoteMillis)*time.Millisecond, 1)
	if len(pcm) == 0 {
		return fmt.Errorf("sound %d rendered empty", id)
	}
	l.sfxCache[id] = pcm
	return nil
}

// LoadSFX returns a new player for the sound each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

func notesFor(id cfg.SoundID) ([]float64, bool) {
	switch id {
	case cfg.SoundTokenLanded:
		return cfg.Audio.LandedHz, true
	case cfg.SoundClaimed:
		return cfg.Audio.ClaimedHz, true
	}
	return nil, false
}
