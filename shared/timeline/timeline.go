// Package timeline drives named scalar channels through a fixed schedule of
// tweens and snaps. A Timeline is a single owned handle: playing it again or
// cancelling it replaces every pending step at once.
package timeline

import (
	"sort"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// NoChannel marks a step that only fires a cue.
const NoChannel Channel = -1

// Step is one scheduled mutation of a channel, relative to the start of the
// timeline. A zero Duration snaps the channel to To.
type Step struct {
	At       time.Duration
	Channel  Channel
	To       float32
	Duration time.Duration
	Ease     ease.TweenFunc
	Cue      string
}

// Tween schedules a transition of ch from its value at time at to the given target.
func Tween(at time.Duration, ch Channel, to float32, d time.Duration, fn ease.TweenFunc) Step {
	return Step{At: at, Channel: ch, To: to, Duration: d, Ease: fn}
}

// Snap schedules an instantaneous assignment.
func Snap(at time.Duration, ch Channel, to float32) Step {
	return Step{At: at, Channel: ch, To: to}
}

// Cue schedules a named marker with no channel mutation.
func Cue(at time.Duration, name string) Step {
	return Step{At: at, Channel: NoChannel, Cue: name}
}

type Timeline struct {
	cells *Cells
	steps []Step

	next    int
	elapsed time.Duration
	running bool
	active  [ChannelCount]*gween.Tween
	cues    []string
}

// New builds a timeline writing into cells. Steps are ordered by At; steps
// sharing an offset keep their declaration order.
func New(cells *Cells, steps ...Step) *Timeline {
	sorted := make([]Step, len(steps))
	copy(sorted, steps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].At < sorted[j].At
	})
	return &Timeline{cells: cells, steps: sorted}
}

// Play cancels any in-flight run and starts again from zero. Steps due at
// zero are applied before Play returns.
func (t *Timeline) Play() {
	t.Cancel()
	t.running = true
	t.activateDue(0)
	t.settle()
}

// Cancel drops pending steps and active tweens. Channel values stay where
// they are.
func (t *Timeline) Cancel() {
	t.running = false
	t.next = 0
	t.elapsed = 0
	t.active = [ChannelCount]*gween.Tween{}
}

// Update advances the timeline by dt.
func (t *Timeline) Update(dt time.Duration) {
	if !t.running || dt < 0 {
		return
	}

	for i, tw := range t.active {
		if tw == nil {
			continue
		}
		v, done := tw.Update(seconds(dt))
		t.cells.Set(Channel(i), v)
		if done {
			t.active[i] = nil
		}
	}

	t.elapsed += dt
	t.activateDue(t.elapsed)
	t.settle()
}

// activateDue applies every pending step whose offset is at or before now,
// advancing new tweens by however far past their start the clock already is.
func (t *Timeline) activateDue(now time.Duration) {
	for t.next < len(t.steps) && t.steps[t.next].At <= now {
		s := t.steps[t.next]
		t.next++

		if s.Cue != "" {
			t.cues = append(t.cues, s.Cue)
		}
		if s.Channel == NoChannel || !s.Channel.Valid() {
			continue
		}

		if s.Duration <= 0 {
			t.active[s.Channel] = nil
			t.cells.Set(s.Channel, s.To)
			continue
		}

		fn := s.Ease
		if fn == nil {
			fn = ease.Linear
		}
		tw := gween.New(t.cells.Value(s.Channel), s.To, seconds(s.Duration), fn)
		v, done := tw.Update(seconds(now - s.At))
		t.cells.Set(s.Channel, v)
		if done {
			t.active[s.Channel] = nil
		} else {
			t.active[s.Channel] = tw
		}
	}
}

func (t *Timeline) settle() {
	if t.next < len(t.steps) {
		return
	}
	for _, tw := range t.active {
		if tw != nil {
			return
		}
	}
	t.running = false
}

// Running reports whether steps or tweens are still outstanding.
func (t *Timeline) Running() bool { return t.running }

// Elapsed is the time since the last Play, frozen once the run completes.
func (t *Timeline) Elapsed() time.Duration { return t.elapsed }

// Duration is the offset at which the last step finishes.
func (t *Timeline) Duration() time.Duration {
	var end time.Duration
	for _, s := range t.steps {
		if e := s.At + s.Duration; e > end {
			end = e
		}
	}
	return end
}

// DrainCues returns the cues fired since the previous call.
func (t *Timeline) DrainCues() []string {
	if len(t.cues) == 0 {
		return nil
	}
	out := t.cues
	t.cues = nil
	return out
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}
