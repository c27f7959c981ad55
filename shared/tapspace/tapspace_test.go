package tapspace

import (
	"testing"

	"github.com/automoto/streakdrawer/assets/layout"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const claimTag = "claim"

// claimSpace builds a screen with the claim region resting under a drawer
// at offsetY.
func claimSpace(t *testing.T, w, h int, offsetY float64) (*resolv.Space, *resolv.Object) {
	t.Helper()

	l, err := layout.LoadDefault()
	require.NoError(t, err)
	rest := l.Resolve(float64(w), float64(h)).ClaimRegion

	space := New(w, h, 16)
	obj := resolv.NewObject(rest.X, rest.Y, rest.W, rest.H, claimTag)
	space.Add(obj)
	Place(obj, rest, offsetY)
	return space, obj
}

func TestHitTestClaimRegionBottomEdge(t *testing.T) {
	// 844 is not a multiple of 16; the last rows must still be hittable.
	space, claim := claimSpace(t, 390, 844, 10)
	require.Equal(t, 744.0, claim.Y)

	for _, y := range []float64{744, 831, 832, 843, 843.9} {
		assert.Same(t, claim, HitTest(space, 195, y, claimTag), "y=%v", y)
	}
	assert.Nil(t, HitTest(space, 195, 743.5, claimTag))
}

func TestHitTestClaimRegionOtherSize(t *testing.T) {
	// 932 is not a multiple of 16; the region ends at y=932 and x=390.
	space, claim := claimSpace(t, 430, 932, 10)

	assert.Same(t, claim, HitTest(space, 389.5, 880, claimTag))
	assert.Same(t, claim, HitTest(space, 40, 931, claimTag))
	assert.Same(t, claim, HitTest(space, 215, 929, claimTag))
	assert.Nil(t, HitTest(space, 390, 880, claimTag))
	assert.Nil(t, HitTest(space, 39.5, 880, claimTag))
}

func TestHitTestScreenCorner(t *testing.T) {
	// 390x844 leaves a partial column and row past the last whole cell.
	space := New(390, 844, 16)
	corner := resolv.NewObject(370, 824, 20, 20, claimTag)
	space.Add(corner)

	assert.Same(t, corner, HitTest(space, 389, 843, claimTag))
	assert.Same(t, corner, HitTest(space, 385, 835, claimTag))
	assert.Nil(t, HitTest(space, 369, 843, claimTag))
}

func TestPlaceFollowsDrawer(t *testing.T) {
	space, claim := claimSpace(t, 390, 844, 844)

	// Drawer still off screen: nothing to hit where the region will rest.
	assert.Nil(t, HitTest(space, 195, 800, claimTag))

	Place(claim, layout.Rect{X: 40, Y: 734, W: 310, H: 100}, 10)
	assert.Same(t, claim, HitTest(space, 195, 800, claimTag))
	assert.Same(t, claim, HitTest(space, 195, 843, claimTag))
}

func TestHitTestIgnoresOtherTags(t *testing.T) {
	space, _ := claimSpace(t, 390, 844, 10)
	assert.Nil(t, HitTest(space, 195, 800, "reset"))
}

func TestNewRoundsUpToWholeCells(t *testing.T) {
	assert.Equal(t, 400, roundUp(390, 16))
	assert.Equal(t, 848, roundUp(844, 16))
	assert.Equal(t, 32, roundUp(32, 16))
	assert.Equal(t, 10, roundUp(10, 0))

	space := New(390, 844, 16)
	assert.Equal(t, 25, space.Width())
	assert.Equal(t, 53, space.Height())
	require.NotNil(t, probeOf(space))
}
