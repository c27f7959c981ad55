package reward

import (
	"errors"
	"testing"
	"time"

	"github.com/automoto/streakdrawer/shared/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRecordStreak(t *testing.T) {
	day := func(d, h int) time.Time {
		return time.Date(2026, time.March, d, h, 0, 0, 0, time.UTC)
	}

	var s Stats
	s.Record(day(1, 9))
	assert.Equal(t, 1, s.Streak)
	assert.Equal(t, 1, s.TotalClaims)

	s.Record(day(1, 22))
	assert.Equal(t, 1, s.Streak, "same day keeps the streak")

	s.Record(day(2, 7))
	assert.Equal(t, 2, s.Streak)

	s.Record(day(5, 7))
	assert.Equal(t, 1, s.Streak, "a gap resets the streak")
	assert.Equal(t, 4, s.TotalClaims)
	assert.Equal(t, day(5, 7), s.LastClaimAt)
}

func TestStatsStreakAcrossMonthBoundary(t *testing.T) {
	s := Stats{
		TotalClaims: 3,
		Streak:      3,
		LastClaimAt: time.Date(2026, time.January, 31, 23, 30, 0, 0, time.UTC),
	}
	s.Record(time.Date(2026, time.February, 1, 0, 15, 0, 0, time.UTC))
	assert.Equal(t, 4, s.Streak)
}

func TestStylesFromValues(t *testing.T) {
	d := NewDrawer(testGeom, DefaultTuning())
	d.Mount()
	d.Claim()
	advance(d, 2*time.Second)

	badge := BadgeStyleOf(d.Values())
	assert.Equal(t, 260.0, badge.Degrees)
	assert.InDelta(t, 260*3.141592653589793/180, badge.Radians(), 1e-9)
	assert.Equal(t, 0.0, badge.Opacity)

	token := TokenStyleOf(d.Values())
	assert.Equal(t, 1.0, token.Scale)
	assert.Equal(t, 1.0, token.Opacity)

	assert.Equal(t, 10.0, DrawerStyleOf(d.Values()).OffsetY)
	assert.Equal(t, 0.5, LightBoxStyleOf(d.Values()).Opacity)
}

func TestStyleClampsOpacity(t *testing.T) {
	cells := timeline.NewCells([timeline.ChannelCount]float32{
		timeline.TokenOpacity:    1.4,
		timeline.BadgeOpacity:    -0.2,
		timeline.LightBoxOpacity: 0.5,
	})

	assert.Equal(t, 1.0, TokenStyleOf(cells).Opacity)
	assert.Equal(t, 0.0, BadgeStyleOf(cells).Opacity)
	assert.Equal(t, 0.5, LightBoxStyleOf(cells).Opacity)
}

func TestArtOrderDrawsBadgeOverToken(t *testing.T) {
	order := ArtOrder()
	require.Len(t, order, 2)
	assert.Equal(t, ArtToken, order[0])
	assert.Equal(t, ArtBadge, order[1], "badge is drawn last so it covers the token")

	order[0] = ArtBadge
	assert.Equal(t, ArtToken, ArtOrder()[0])
}

func TestSaverRetriesFailedWrites(t *testing.T) {
	s := Saver{RetryTicks: 2}
	assert.False(t, s.Due(), "nothing to write yet")

	s.MarkDirty()
	require.True(t, s.Due())
	s.Done(errors.New("disk full"))
	assert.True(t, s.Dirty(), "a failed write keeps the stats pending")

	assert.False(t, s.Due())
	assert.False(t, s.Due())
	require.True(t, s.Due(), "retried after the wait")

	s.Done(nil)
	assert.False(t, s.Dirty())
	assert.False(t, s.Due())
}

func TestSaverNewClaimSkipsRetryWait(t *testing.T) {
	s := Saver{RetryTicks: 100}
	s.MarkDirty()
	s.Due()
	s.Done(errors.New("disk full"))
	require.False(t, s.Due())

	s.MarkDirty()
	assert.True(t, s.Due())
}
