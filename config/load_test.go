package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/streakdrawer/shared/reward"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsMatchRewardTuning(t *testing.T) {
	Defaults()

	assert.Equal(t, 390, C.Width)
	assert.Equal(t, 844, C.Height)
	assert.Equal(t, reward.DefaultTuning(), Reward)
	assert.Equal(t, 70.0, Render.BackgroundOffsetY)
}

func TestApplyOverrides(t *testing.T) {
	Defaults()
	t.Cleanup(Defaults)

	err := Apply([]byte(`
screen:
  width: 430
  height: 932
drawer:
  enterMs: 500
claim:
  spinDegrees: 360
  pauseAfterSpinMs: 1000
  reentry: ignore
audio:
  volume: 3
debug:
  showOverlay: true
`))
	require.NoError(t, err)

	assert.Equal(t, 430, C.Width)
	assert.Equal(t, 932, C.Height)
	assert.Equal(t, 500*time.Millisecond, Reward.DrawerEnterTime)
	assert.Equal(t, 360.0, Reward.BadgeSpinDegrees)
	assert.Equal(t, time.Second, Reward.PauseAfterSpin)
	assert.Equal(t, reward.ReentryIgnore, Reward.Reentry)
	assert.Equal(t, 700*time.Millisecond, Reward.TokenMoveTime, "unset fields keep their defaults")
	assert.Equal(t, 1.0, Audio.Volume)
	assert.True(t, Debug.ShowOverlay)
	assert.True(t, Persistence.Enabled)
}

func TestApplyRejectsInvalidValuesWithoutPartialChanges(t *testing.T) {
	Defaults()
	t.Cleanup(Defaults)

	err := Apply([]byte(`
screen:
  width: 500
  height: 900
claim:
  spinDegrees: 90
  reentry: queue
`))
	require.Error(t, err)
	assert.Equal(t, 390, C.Width)
	assert.Equal(t, 260.0, Reward.BadgeSpinDegrees)

	err = Apply([]byte("drawer:\n  lightBoxOpacity: 1.5\n"))
	assert.ErrorContains(t, err, "lightBoxOpacity")

	err = Apply([]byte("screen:\n  width: 0\n  height: 10\n"))
	assert.ErrorContains(t, err, "positive")

	err = Apply([]byte("claim: [1, 2"))
	assert.ErrorContains(t, err, "parse config")
}

func TestLoadFromFile(t *testing.T) {
	Defaults()
	t.Cleanup(Defaults)

	path := filepath.Join(t.TempDir(), "streakdrawer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("claim:\n  fadeMs: 450\n"), 0o644))

	require.NoError(t, Load(path))
	assert.Equal(t, 450*time.Millisecond, Reward.FadeTime)

	err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}
