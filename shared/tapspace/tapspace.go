// Package tapspace hit-tests screen taps against rectangular regions held in
// a resolv space.
package tapspace

import (
	"github.com/automoto/streakdrawer/assets/layout"
	"github.com/solarlune/resolv"
)

// ProbeTag marks the 1x1 object moved to each tap position.
const ProbeTag = "probe"

// New returns a space covering a width x height screen plus the tap probe.
// resolv sizes its grid by integer division, so the space is rounded up to
// whole cells to keep the right and bottom edges inside it.
func New(width, height, cell int) *resolv.Space {
	space := resolv.NewSpace(roundUp(width, cell), roundUp(height, cell), cell, cell)
	space.Add(resolv.NewObject(0, 0, 1, 1, ProbeTag))
	return space
}

func roundUp(v, cell int) int {
	if cell <= 0 {
		return v
	}
	return (v + cell - 1) / cell * cell
}

// Place moves obj to rest shifted down by offsetY and refreshes its cells.
func Place(obj *resolv.Object, rest layout.Rect, offsetY float64) {
	obj.X = rest.X
	obj.Y = rest.Y + offsetY
	obj.Update()
}

// HitTest returns the region with one of the tags under the point, or nil.
// Resolv narrows the candidates to shared cells and each one is then checked
// against its exact rect.
func HitTest(space *resolv.Space, x, y float64, tags ...string) *resolv.Object {
	probe := probeOf(space)
	if probe == nil {
		return nil
	}
	probe.X, probe.Y = x, y
	probe.Update()

	check := probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	for _, obj := range check.ObjectsByTags(tags...) {
		rect := layout.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
		if rect.Contains(x, y) {
			return obj
		}
	}
	return nil
}

func probeOf(space *resolv.Space) *resolv.Object {
	for _, obj := range space.Objects() {
		if obj.HasTags(ProbeTag) {
			return obj
		}
	}
	return nil
}
