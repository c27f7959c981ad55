package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

const frame = time.Second / 60

func run(tl *Timeline, total time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += frame {
		tl.Update(frame)
	}
}

func TestPlayAppliesZeroOffsetSnaps(t *testing.T) {
	cells := NewCells([ChannelCount]float32{Scale: 0.5})
	tl := New(cells, Snap(0, Scale, 1), Snap(time.Second, Scale, 2))

	tl.Play()

	assert.Equal(t, float32(1), cells.Value(Scale))
	assert.True(t, tl.Running())
}

func TestTweenReachesTarget(t *testing.T) {
	cells := NewCells([ChannelCount]float32{})
	tl := New(cells, Tween(0, BadgeRotation, 260, 700*time.Millisecond, ease.InOutQuad))

	tl.Play()
	assert.Equal(t, float32(0), cells.Value(BadgeRotation))

	run(tl, 350*time.Millisecond)
	mid := cells.Value(BadgeRotation)
	assert.Greater(t, mid, float32(100))
	assert.Less(t, mid, float32(160))

	run(tl, 400*time.Millisecond)
	assert.Equal(t, float32(260), cells.Value(BadgeRotation))
	assert.False(t, tl.Running())
}

func TestTweenStartsFromCurrentValue(t *testing.T) {
	cells := NewCells([ChannelCount]float32{TokenOpacity: 0.25})
	tl := New(cells, Tween(0, TokenOpacity, 1, 100*time.Millisecond, ease.Linear))

	tl.Play()
	tl.Update(50 * time.Millisecond)

	assert.InDelta(t, 0.625, cells.Value(TokenOpacity), 1e-4)
}

func TestDelayedStepAdvancesByOvershoot(t *testing.T) {
	cells := NewCells([ChannelCount]float32{})
	tl := New(cells, Tween(100*time.Millisecond, TranslateX, 100, 100*time.Millisecond, ease.Linear))

	tl.Play()
	tl.Update(150 * time.Millisecond)

	assert.InDelta(t, 50, cells.Value(TranslateX), 1e-3)
}

func TestLaterStepReplacesActiveTween(t *testing.T) {
	cells := NewCells([ChannelCount]float32{})
	tl := New(cells,
		Tween(0, BadgeRotation, 260, time.Second, ease.Linear),
		Snap(500*time.Millisecond, BadgeRotation, 0),
	)

	tl.Play()
	run(tl, 2*time.Second)

	assert.Equal(t, float32(0), cells.Value(BadgeRotation))
	assert.False(t, tl.Running())
}

func TestCancelFreezesValues(t *testing.T) {
	cells := NewCells([ChannelCount]float32{})
	tl := New(cells,
		Tween(0, TranslateY, -100, 200*time.Millisecond, ease.Linear),
		Snap(time.Second, TranslateY, 42),
	)

	tl.Play()
	tl.Update(100 * time.Millisecond)
	tl.Cancel()
	frozen := cells.Value(TranslateY)
	run(tl, 2*time.Second)

	assert.Equal(t, frozen, cells.Value(TranslateY))
	assert.False(t, tl.Running())
}

func TestPlayRestartsWithoutOverlap(t *testing.T) {
	cells := NewCells([ChannelCount]float32{})
	tl := New(cells,
		Snap(0, Scale, 1),
		Snap(300*time.Millisecond, Scale, 5),
	)

	tl.Play()
	tl.Update(200 * time.Millisecond)
	tl.Play()
	tl.Update(200 * time.Millisecond)

	// Only 200ms has passed since the restart, so the second snap is still pending.
	assert.Equal(t, float32(1), cells.Value(Scale))
	assert.Equal(t, 200*time.Millisecond, tl.Elapsed())
}

func TestCuesDrainOnce(t *testing.T) {
	cells := NewCells([ChannelCount]float32{})
	tl := New(cells, Cue(0, "start"), Cue(100*time.Millisecond, "end"))

	tl.Play()
	require.Equal(t, []string{"start"}, tl.DrainCues())
	assert.Nil(t, tl.DrainCues())

	tl.Update(100 * time.Millisecond)
	assert.Equal(t, []string{"end"}, tl.DrainCues())
	assert.False(t, tl.Running())
}

func TestDuration(t *testing.T) {
	tl := New(NewCells([ChannelCount]float32{}),
		Tween(3200*time.Millisecond, TokenOpacity, 0, 300*time.Millisecond, ease.InOutQuad),
		Tween(0, BadgeOpacity, 0, 700*time.Millisecond, ease.InOutQuad),
	)
	assert.Equal(t, 3500*time.Millisecond, tl.Duration())
}

func TestCellsRestoreSubset(t *testing.T) {
	cells := NewCells([ChannelCount]float32{Scale: 3, DrawerY: 7})
	baseline := [ChannelCount]float32{Scale: 1, DrawerY: 844}

	cells.Restore(baseline, Scale)

	assert.Equal(t, float32(1), cells.Value(Scale))
	assert.Equal(t, float32(7), cells.Value(DrawerY))

	cells.Restore(baseline)
	assert.Equal(t, baseline, cells.Snapshot())
}

func TestChannelNames(t *testing.T) {
	assert.Equal(t, "twoDayStreakRotation", BadgeRotation.String())
	assert.Equal(t, "none", NoChannel.String())
	assert.Equal(t, float32(0), NewCells([ChannelCount]float32{}).Value(NoChannel))
}
