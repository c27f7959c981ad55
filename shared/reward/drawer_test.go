package reward

import (
	"testing"
	"time"

	"github.com/automoto/streakdrawer/shared/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

var testGeom = Geometry{Width: 390, Height: 844}

func advance(d *Drawer, total time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += frame {
		d.Update(frame)
	}
}

func value(d *Drawer, ch timeline.Channel) float32 {
	return d.Values().Value(ch)
}

func mounted(t *testing.T, tuning Tuning) *Drawer {
	t.Helper()
	d := NewDrawer(testGeom, tuning)
	d.Mount()
	advance(d, time.Second)
	require.Equal(t, PhaseIdle, d.Phase())
	return d
}

func TestNewDrawerStartsHiddenAtBaseline(t *testing.T) {
	d := NewDrawer(testGeom, DefaultTuning())

	assert.Equal(t, PhaseHidden, d.Phase())
	assert.Equal(t, float32(844), value(d, timeline.DrawerY))
	assert.Equal(t, float32(0), value(d, timeline.LightBoxOpacity))
	assert.False(t, d.Claim(), "hidden drawer must not accept a claim")
}

func TestMountSlidesDrawerIn(t *testing.T) {
	d := NewDrawer(testGeom, DefaultTuning())
	d.Mount()

	assert.Equal(t, PhaseIdle, d.Phase())
	assert.Equal(t, float32(844), value(d, timeline.DrawerY))
	assert.Equal(t, float32(0), value(d, timeline.LightBoxOpacity))
	assert.True(t, d.Entering())

	advance(d, 350*time.Millisecond)
	y := value(d, timeline.DrawerY)
	assert.Less(t, y, float32(844))
	assert.Greater(t, y, float32(10))

	advance(d, 400*time.Millisecond)
	assert.Equal(t, float32(10), value(d, timeline.DrawerY))
	assert.Equal(t, float32(0.5), value(d, timeline.LightBoxOpacity))
	assert.False(t, d.Entering())
	assert.Contains(t, d.DrainCues(), CueDrawerShown)
}

func TestClaimSequenceEndState(t *testing.T) {
	d := mounted(t, DefaultTuning())
	d.DrainCues()

	require.True(t, d.Claim())
	assert.Equal(t, PhaseClaiming, d.Phase())

	advance(d, 3600*time.Millisecond)

	assert.Equal(t, PhaseClaimed, d.Phase())
	assert.Equal(t, float32(0), value(d, timeline.BadgeRotation))
	assert.Equal(t, float32(1), value(d, timeline.BadgeOpacity))
	assert.Equal(t, float32(0), value(d, timeline.TokenOpacity))
	assert.InDelta(t, 0.16, value(d, timeline.Scale), 1e-6)
	assert.InDelta(t, 390*0.35+23, value(d, timeline.TranslateX), 1e-3)
	assert.InDelta(t, -844*0.35-35, value(d, timeline.TranslateY), 1e-3)
	assert.Equal(t, float32(10), value(d, timeline.DrawerY), "claim leaves the drawer alone")

	assert.Equal(t, []string{CueBadgeSpin, CueTokenFlight, CueTokenLanded, CueClaimed}, d.DrainCues())
}

func TestClaimStageOffsets(t *testing.T) {
	d := mounted(t, DefaultTuning())
	d.Claim()

	// End of stage 1: badge spun out, token untouched.
	advance(d, 2100*time.Millisecond)
	assert.Equal(t, float32(260), value(d, timeline.BadgeRotation))
	assert.Equal(t, float32(0), value(d, timeline.BadgeOpacity))
	assert.Equal(t, float32(0), value(d, timeline.TranslateX))
	assert.Equal(t, float32(1), value(d, timeline.Scale))

	// Stage 2 is under way by 2.5s.
	advance(d, 400*time.Millisecond)
	assert.Greater(t, value(d, timeline.TranslateX), float32(0))
	assert.Less(t, value(d, timeline.Scale), float32(1))
	assert.Equal(t, float32(1), value(d, timeline.TokenOpacity))

	// Between the landing and the swap the token rests at its target.
	advance(d, 600*time.Millisecond)
	assert.InDelta(t, 0.16, value(d, timeline.Scale), 1e-6)
	assert.Equal(t, float32(260), value(d, timeline.BadgeRotation))
	assert.Equal(t, float32(1), value(d, timeline.TokenOpacity))
}

func TestResetSnapsClaimChannels(t *testing.T) {
	d := mounted(t, DefaultTuning())
	d.Claim()
	advance(d, 2500*time.Millisecond)

	d.Reset()

	assert.Equal(t, PhaseIdle, d.Phase())
	assert.Equal(t, float32(0), value(d, timeline.TranslateX))
	assert.Equal(t, float32(0), value(d, timeline.TranslateY))
	assert.Equal(t, float32(1), value(d, timeline.Scale))
	assert.Equal(t, float32(0), value(d, timeline.BadgeRotation))
	assert.Equal(t, float32(1), value(d, timeline.BadgeOpacity))
	assert.Equal(t, float32(1), value(d, timeline.TokenOpacity))
	assert.Equal(t, float32(10), value(d, timeline.DrawerY))
	assert.Equal(t, float32(0.5), value(d, timeline.LightBoxOpacity))

	// Pending steps of the cancelled claim never fire.
	advance(d, 2*time.Second)
	assert.Equal(t, float32(0), value(d, timeline.TranslateX))
	assert.Equal(t, float32(1), value(d, timeline.TokenOpacity))
	assert.Equal(t, PhaseIdle, d.Phase())
}

func TestResetIsIdempotent(t *testing.T) {
	d := mounted(t, DefaultTuning())
	d.Claim()
	advance(d, time.Second)

	d.Reset()
	once := d.cells.Snapshot()
	d.Reset()

	assert.Equal(t, once, d.cells.Snapshot())
	assert.Equal(t, PhaseIdle, d.Phase())
}

func TestRemountRestoresEveryBaseline(t *testing.T) {
	d := mounted(t, DefaultTuning())
	d.Claim()
	advance(d, 3*time.Second)

	d.Remount()

	want := [timeline.ChannelCount]float32{0, 0, 1, 844, 0, 0, 1, 1}
	assert.Equal(t, want, d.cells.Snapshot())
	assert.Equal(t, PhaseIdle, d.Phase())
	assert.False(t, d.Claiming())

	advance(d, time.Second)
	assert.Equal(t, float32(10), value(d, timeline.DrawerY))
}

func TestClaimRestartCancelsRunningSequence(t *testing.T) {
	d := mounted(t, DefaultTuning())

	require.True(t, d.Claim())
	advance(d, 400*time.Millisecond)
	require.True(t, d.Claim())

	// 3.2s after the second claim the first run would already have faded
	// the token; the restarted run has only just started its swap.
	advance(d, 3200*time.Millisecond)
	assert.Equal(t, PhaseClaiming, d.Phase())
	assert.Greater(t, value(d, timeline.TokenOpacity), float32(0.5))

	advance(d, 500*time.Millisecond)
	assert.Equal(t, PhaseClaimed, d.Phase())
	assert.Equal(t, float32(0), value(d, timeline.TokenOpacity))
}

func TestClaimIgnorePolicyRejectsReentry(t *testing.T) {
	tuning := DefaultTuning()
	tuning.Reentry = ReentryIgnore
	d := mounted(t, tuning)

	require.True(t, d.Claim())
	advance(d, 400*time.Millisecond)
	assert.False(t, d.Claim())

	advance(d, 3200*time.Millisecond)
	assert.Equal(t, PhaseClaimed, d.Phase())
	assert.True(t, d.Claim(), "a finished sequence can be claimed again")
}

func TestOpacityStaysInRangeAndRotationIsNotWrapped(t *testing.T) {
	d := mounted(t, DefaultTuning())
	d.Claim()

	var maxRotation float32
	for elapsed := time.Duration(0); elapsed < 4*time.Second; elapsed += frame {
		d.Update(frame)
		for _, ch := range []timeline.Channel{timeline.BadgeOpacity, timeline.TokenOpacity, timeline.LightBoxOpacity} {
			v := value(d, ch)
			require.GreaterOrEqual(t, v, float32(0), ch.String())
			require.LessOrEqual(t, v, float32(1), ch.String())
		}
		if r := value(d, timeline.BadgeRotation); r > maxRotation {
			maxRotation = r
		}
	}
	assert.Equal(t, float32(260), maxRotation)
}

func TestClaimDuration(t *testing.T) {
	d := NewDrawer(testGeom, DefaultTuning())
	assert.Equal(t, 3500*time.Millisecond, d.ClaimDuration())
}

func TestParseReentryPolicy(t *testing.T) {
	p, err := ParseReentryPolicy("ignore")
	require.NoError(t, err)
	assert.Equal(t, ReentryIgnore, p)

	p, err = ParseReentryPolicy("")
	require.NoError(t, err)
	assert.Equal(t, ReentryRestart, p)

	_, err = ParseReentryPolicy("queue")
	assert.Error(t, err)
}
