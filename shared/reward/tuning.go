package reward

import (
	"fmt"
	"time"
)

// ReentryPolicy decides what a claim does while a previous claim is still playing.
type ReentryPolicy int

const (
	// ReentryRestart cancels the running sequence and starts over.
	ReentryRestart ReentryPolicy = iota
	// ReentryIgnore rejects the claim until the running sequence ends.
	ReentryIgnore
)

func (p ReentryPolicy) String() string {
	switch p {
	case ReentryIgnore:
		return "ignore"
	default:
		return "restart"
	}
}

// ParseReentryPolicy accepts "restart" or "ignore".
func ParseReentryPolicy(s string) (ReentryPolicy, error) {
	switch s {
	case "restart", "":
		return ReentryRestart, nil
	case "ignore":
		return ReentryIgnore, nil
	}
	return ReentryRestart, fmt.Errorf("unknown reentry policy %q", s)
}

// Tuning holds every timing and geometry constant of the reward sequence.
type Tuning struct {
	// Drawer intro
	DrawerRestY     float64       // drawer offset once fully shown
	LightBoxOpacity float64       // overlay opacity once fully shown
	DrawerEnterTime time.Duration // slide and fade duration

	// Badge spin (stage 1)
	BadgeSpinDegrees float64
	BadgeSpinTime    time.Duration
	PauseAfterSpin   time.Duration

	// Token flight (stage 2)
	TokenMoveTime  time.Duration
	TokenEndScale  float64
	TargetXFactor  float64 // fraction of screen width
	TargetXOffset  float64 // pixels added after the width fraction
	TargetYFactor  float64 // fraction of screen height
	TargetYOffset  float64 // pixels added after the height fraction (upwards)
	PauseAfterMove time.Duration

	// Swap back (stage 3)
	FadeTime time.Duration

	Reentry ReentryPolicy
}

// DefaultTuning returns the production timings.
func DefaultTuning() Tuning {
	return Tuning{
		DrawerRestY:     10,
		LightBoxOpacity: 0.5,
		DrawerEnterTime: 700 * time.Millisecond,

		BadgeSpinDegrees: 260,
		BadgeSpinTime:    700 * time.Millisecond,
		PauseAfterSpin:   1500 * time.Millisecond,

		TokenMoveTime:  700 * time.Millisecond,
		TokenEndScale:  0.16,
		TargetXFactor:  0.35,
		TargetXOffset:  23,
		TargetYFactor:  0.35,
		TargetYOffset:  35,
		PauseAfterMove: 1000 * time.Millisecond,

		FadeTime: 300 * time.Millisecond,

		Reentry: ReentryRestart,
	}
}

// TokenTarget is where the token flies to for a screen of the given size.
func (t Tuning) TokenTarget(g Geometry) (x, y float64) {
	x = g.Width*t.TargetXFactor + t.TargetXOffset
	y = -(g.Height*t.TargetYFactor + t.TargetYOffset)
	return x, y
}

// FlightStart is the offset at which the token starts moving.
func (t Tuning) FlightStart() time.Duration {
	return t.BadgeSpinTime + t.PauseAfterSpin
}

// SwapStart is the offset at which the token fades and the badge returns.
func (t Tuning) SwapStart() time.Duration {
	return t.FlightStart() + t.PauseAfterMove
}
