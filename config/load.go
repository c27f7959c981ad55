package config

import (
	"fmt"
	"os"
	"time"

	"github.com/automoto/streakdrawer/shared/reward"
	"gopkg.in/yaml.v3"
)

// File is the on-disk override format. Every field is optional; durations
// are in milliseconds.
type File struct {
	Screen *struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"screen"`

	Drawer *struct {
		RestY           *float64 `yaml:"restY"`
		LightBoxOpacity *float64 `yaml:"lightBoxOpacity"`
		EnterMs         *int     `yaml:"enterMs"`
	} `yaml:"drawer"`

	Claim *struct {
		SpinDegrees      *float64 `yaml:"spinDegrees"`
		SpinMs           *int     `yaml:"spinMs"`
		PauseAfterSpinMs *int     `yaml:"pauseAfterSpinMs"`
		MoveMs           *int     `yaml:"moveMs"`
		EndScale         *float64 `yaml:"endScale"`
		TargetXFactor    *float64 `yaml:"targetXFactor"`
		TargetXOffset    *float64 `yaml:"targetXOffset"`
		TargetYFactor    *float64 `yaml:"targetYFactor"`
		TargetYOffset    *float64 `yaml:"targetYOffset"`
		PauseAfterMoveMs *int     `yaml:"pauseAfterMoveMs"`
		FadeMs           *int     `yaml:"fadeMs"`
		Reentry          *string  `yaml:"reentry"`
	} `yaml:"claim"`

	Audio *struct {
		Volume *float64 `yaml:"volume"`
	} `yaml:"audio"`

	Persistence *struct {
		Enabled *bool   `yaml:"enabled"`
		AppName *string `yaml:"appName"`
	} `yaml:"persistence"`

	Debug *struct {
		ShowOverlay *bool `yaml:"showOverlay"`
		AllowQuit   *bool `yaml:"allowQuit"`
	} `yaml:"debug"`
}

// Load reads a YAML override file and applies it on top of the current values.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply parses YAML overrides and applies them. Nothing is changed when the
// document is invalid.
func Apply(data []byte) error {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	tuning := Reward
	if err := f.applyReward(&tuning); err != nil {
		return err
	}

	if f.Screen != nil {
		if f.Screen.Width <= 0 || f.Screen.Height <= 0 {
			return fmt.Errorf("screen size must be positive, got %dx%d", f.Screen.Width, f.Screen.Height)
		}
		C = &Config{Width: f.Screen.Width, Height: f.Screen.Height}
	}
	Reward = tuning

	if f.Audio != nil && f.Audio.Volume != nil {
		Audio.Volume = clamp01(*f.Audio.Volume)
	}
	if f.Persistence != nil {
		setBool(&Persistence.Enabled, f.Persistence.Enabled)
		if f.Persistence.AppName != nil && *f.Persistence.AppName != "" {
			Persistence.AppName = *f.Persistence.AppName
		}
	}
	if f.Debug != nil {
		setBool(&Debug.ShowOverlay, f.Debug.ShowOverlay)
		setBool(&Debug.AllowQuit, f.Debug.AllowQuit)
	}
	return nil
}

func (f *File) applyReward(t *reward.Tuning) error {
	if d := f.Drawer; d != nil {
		setFloat(&t.DrawerRestY, d.RestY)
		setFloat(&t.LightBoxOpacity, d.LightBoxOpacity)
		setMillis(&t.DrawerEnterTime, d.EnterMs)
		if t.LightBoxOpacity < 0 || t.LightBoxOpacity > 1 {
			return fmt.Errorf("drawer.lightBoxOpacity must be within [0,1], got %v", t.LightBoxOpacity)
		}
	}

	c := f.Claim
	if c == nil {
		return nil
	}
	setFloat(&t.BadgeSpinDegrees, c.SpinDegrees)
	setMillis(&t.BadgeSpinTime, c.SpinMs)
	setMillis(&t.PauseAfterSpin, c.PauseAfterSpinMs)
	setMillis(&t.TokenMoveTime, c.MoveMs)
	setFloat(&t.TokenEndScale, c.EndScale)
	setFloat(&t.TargetXFactor, c.TargetXFactor)
	setFloat(&t.TargetXOffset, c.TargetXOffset)
	setFloat(&t.TargetYFactor, c.TargetYFactor)
	setFloat(&t.TargetYOffset, c.TargetYOffset)
	setMillis(&t.PauseAfterMove, c.PauseAfterMoveMs)
	setMillis(&t.FadeTime, c.FadeMs)
	if c.Reentry != nil {
		p, err := reward.ParseReentryPolicy(*c.Reentry)
		if err != nil {
			return fmt.Errorf("claim.reentry: %w", err)
		}
		t.Reentry = p
	}
	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setMillis(dst *time.Duration, ms *int) {
	if ms != nil && *ms >= 0 {
		*dst = time.Duration(*ms) * time.Millisecond
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
