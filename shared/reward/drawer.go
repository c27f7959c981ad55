// Package reward models the streak reward drawer: the animatable values,
// the claim sequence that drives them and the styles derived from them.
package reward

import (
	"time"

	"github.com/automoto/streakdrawer/shared/timeline"
	"github.com/tanema/gween/ease"
)

// Cue names fired by the drawer timelines.
const (
	CueDrawerShown = "drawer-shown"
	CueBadgeSpin   = "badge-spin"
	CueTokenFlight = "token-flight"
	CueTokenLanded = "token-landed"
	CueClaimed     = "claimed"
)

// Geometry is the screen size read once at mount.
type Geometry struct {
	Width  float64
	Height float64
}

// Phase is the visible state of the drawer.
type Phase int

const (
	PhaseHidden Phase = iota
	PhaseIdle
	PhaseClaiming
	PhaseClaimed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseClaiming:
		return "claiming"
	case PhaseClaimed:
		return "claimed"
	default:
		return "hidden"
	}
}

// claimChannels are the values the claim sequence and Reset touch.
var claimChannels = []timeline.Channel{
	timeline.TranslateX,
	timeline.TranslateY,
	timeline.Scale,
	timeline.BadgeRotation,
	timeline.BadgeOpacity,
	timeline.TokenOpacity,
}

// Drawer owns the animation cells and the two timelines writing to them.
type Drawer struct {
	geom   Geometry
	tuning Tuning

	cells *timeline.Cells
	intro *timeline.Timeline
	claim *timeline.Timeline

	phase Phase
	cues  []string
}

// NewDrawer creates a hidden drawer for a screen of the given size.
func NewDrawer(geom Geometry, tuning Tuning) *Drawer {
	d := &Drawer{
		geom:   geom,
		tuning: tuning,
		cells:  timeline.NewCells(Baseline(geom)),
	}
	d.intro = timeline.New(d.cells, IntroSteps(geom, tuning)...)
	d.claim = timeline.New(d.cells, ClaimSteps(geom, tuning)...)
	return d
}

// Baseline is the resting value of every channel before the drawer is shown.
func Baseline(geom Geometry) [timeline.ChannelCount]float32 {
	return [timeline.ChannelCount]float32{
		timeline.TranslateX:      0,
		timeline.TranslateY:      0,
		timeline.Scale:           1,
		timeline.DrawerY:         float32(geom.Height),
		timeline.LightBoxOpacity: 0,
		timeline.BadgeRotation:   0,
		timeline.BadgeOpacity:    1,
		timeline.TokenOpacity:    1,
	}
}

// IntroSteps slides the drawer up while the overlay fades in.
func IntroSteps(geom Geometry, t Tuning) []timeline.Step {
	return []timeline.Step{
		timeline.Snap(0, timeline.DrawerY, float32(geom.Height)),
		timeline.Snap(0, timeline.LightBoxOpacity, 0),
		timeline.Tween(0, timeline.LightBoxOpacity, float32(t.LightBoxOpacity), t.DrawerEnterTime, ease.InOutQuad),
		timeline.Tween(0, timeline.DrawerY, float32(t.DrawerRestY), t.DrawerEnterTime, ease.InOutQuad),
		timeline.Cue(t.DrawerEnterTime, CueDrawerShown),
	}
}

// ClaimSteps is the three stage claim sequence.
func ClaimSteps(geom Geometry, t Tuning) []timeline.Step {
	base := Baseline(geom)
	steps := make([]timeline.Step, 0, 16)
	for _, ch := range claimChannels {
		steps = append(steps, timeline.Snap(0, ch, base[ch]))
	}

	spin := []timeline.Step{
		timeline.Cue(0, CueBadgeSpin),
		timeline.Tween(0, timeline.BadgeRotation, float32(t.BadgeSpinDegrees), t.BadgeSpinTime, ease.InOutQuad),
		timeline.Tween(0, timeline.BadgeOpacity, 0, t.BadgeSpinTime, ease.InOutQuad),
	}

	flightAt := t.FlightStart()
	targetX, targetY := t.TokenTarget(geom)
	flight := []timeline.Step{
		timeline.Cue(flightAt, CueTokenFlight),
		timeline.Tween(flightAt, timeline.TranslateX, float32(targetX), t.TokenMoveTime, ease.InOutQuad),
		timeline.Tween(flightAt, timeline.TranslateY, float32(targetY), t.TokenMoveTime, ease.InOutQuad),
		timeline.Tween(flightAt, timeline.Scale, float32(t.TokenEndScale), t.TokenMoveTime, ease.InOutQuad),
		timeline.Cue(flightAt+t.TokenMoveTime, CueTokenLanded),
	}

	swapAt := t.SwapStart()
	swap := []timeline.Step{
		timeline.Tween(swapAt, timeline.TokenOpacity, 0, t.FadeTime, ease.InOutQuad),
		timeline.Snap(swapAt, timeline.BadgeRotation, 0),
		timeline.Tween(swapAt, timeline.BadgeOpacity, 1, t.FadeTime, ease.InOutQuad),
		timeline.Cue(swapAt+t.FadeTime, CueClaimed),
	}

	steps = append(steps, spin...)
	steps = append(steps, flight...)
	return append(steps, swap...)
}

// Mount shows the drawer. Calling it again replays the intro.
func (d *Drawer) Mount() {
	d.intro.Play()
	if d.phase == PhaseHidden {
		d.phase = PhaseIdle
	}
	d.collect(d.intro)
}

// Claim starts the claim sequence and reports whether it started. A hidden
// drawer cannot be claimed.
func (d *Drawer) Claim() bool {
	if d.phase == PhaseHidden {
		return false
	}
	if d.claim.Running() && d.tuning.Reentry == ReentryIgnore {
		return false
	}
	d.claim.Play()
	d.phase = PhaseClaiming
	d.collect(d.claim)
	return true
}

// Reset stops the claim sequence and snaps the token and badge back to
// their resting values. The drawer and overlay stay where they are.
func (d *Drawer) Reset() {
	d.claim.Cancel()
	d.claim.DrainCues()
	d.cells.Restore(Baseline(d.geom), claimChannels...)
	if d.phase != PhaseHidden {
		d.phase = PhaseIdle
	}
}

// Remount snaps every channel to its baseline and replays the intro.
func (d *Drawer) Remount() {
	d.claim.Cancel()
	d.claim.DrainCues()
	d.intro.Cancel()
	d.intro.DrainCues()
	d.cells.Restore(Baseline(d.geom))
	d.phase = PhaseHidden
	d.Mount()
}

// Update advances both timelines by dt.
func (d *Drawer) Update(dt time.Duration) {
	d.intro.Update(dt)
	d.collect(d.intro)

	wasClaiming := d.claim.Running()
	d.claim.Update(dt)
	d.collect(d.claim)
	if wasClaiming && !d.claim.Running() && d.phase == PhaseClaiming {
		d.phase = PhaseClaimed
	}
}

func (d *Drawer) collect(tl *timeline.Timeline) {
	d.cues = append(d.cues, tl.DrainCues()...)
}

// DrainCues returns the cues fired since the previous call, in firing order.
func (d *Drawer) DrainCues() []string {
	if len(d.cues) == 0 {
		return nil
	}
	out := d.cues
	d.cues = nil
	return out
}

func (d *Drawer) Phase() Phase { return d.phase }

func (d *Drawer) Geometry() Geometry { return d.geom }

func (d *Drawer) Tuning() Tuning { return d.tuning }

// Values exposes the cells read-only.
func (d *Drawer) Values() timeline.Reader { return d.cells }

// Claiming reports whether the claim sequence still has work outstanding.
func (d *Drawer) Claiming() bool { return d.claim.Running() }

// Entering reports whether the intro is still playing.
func (d *Drawer) Entering() bool { return d.intro.Running() }

// ClaimDuration is the total length of the claim sequence.
func (d *Drawer) ClaimDuration() time.Duration { return d.claim.Duration() }
