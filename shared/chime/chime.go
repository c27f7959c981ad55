// Package chime renders the short notes played when a reward lands.
package chime

import (
	"encoding/binary"
	"math"
	"time"
)

// BytesPerFrame is the size of one stereo 16-bit sample frame.
const BytesPerFrame = 4

const (
	attack = 0.004 // seconds
	decay  = 6.0   // envelope falloff per second
)

// Render returns 16-bit little-endian stereo PCM of notes played one after
// another, each lasting note. Frequencies are in Hz. volume is clamped to [0,1].
func Render(sampleRate int, notes []float64, note time.Duration, volume float64) []byte {
	if sampleRate <= 0 || note <= 0 || len(notes) == 0 {
		return nil
	}
	volume = math.Max(0, math.Min(1, volume))

	perNote := int(float64(sampleRate) * note.Seconds())
	out := make([]byte, perNote*len(notes)*BytesPerFrame)

	for n, hz := range notes {
		base := n * perNote * BytesPerFrame
		for i := 0; i < perNote; i++ {
			t := float64(i) / float64(sampleRate)
			v := math.Sin(2*math.Pi*hz*t) * envelope(t, note.Seconds()) * volume
			s := int16(v * math.MaxInt16)

			off := base + i*BytesPerFrame
			binary.LittleEndian.PutUint16(out[off:], uint16(s))
			binary.LittleEndian.PutUint16(out[off+2:], uint16(s))
		}
	}
	return out
}

// envelope rises over the attack, decays and reaches zero at length.
func envelope(t, length float64) float64 {
	if t < attack {
		return t / attack
	}
	tail := 1 - t/length
	if tail < 0 {
		tail = 0
	}
	return math.Exp(-decay*(t-attack)) * tail
}
