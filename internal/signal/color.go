package signal

import "math"

const (
	bassHue   = 240.0 // blue
	trebleHue = 0.0   // red
)

// Bands is one frame's worth of band energies on the 0-255 scale.
type Bands struct {
	Low, High         float64 // balance bands
	Bass, Mid, Treble float64 // named bands
}

// BandBalance returns high/(low+high+1). The +1 keeps silence at zero.
func BandBalance(low, high float64) float64 {
	return high / (low + high + 1)
}

// BandHue maps the balance of two band energies onto blue (bass heavy) through
// red (treble heavy).
func BandHue(low, high float64) float64 {
	return Lerp(bassHue, trebleHue, BandBalance(low, high))
}

// FrameHue cycles through the color wheel two degrees per frame.
func FrameHue(frame uint64) float64 {
	return float64((frame * 2) % 360)
}

// WrapHue folds any hue into [0,360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// ColorStrategy derives the base hue for a frame.
type ColorStrategy interface {
	Hue(frame uint64, bands Bands) float64
}

// FrameColor ignores the audio and cycles with the frame counter.
type FrameColor struct{}

func (FrameColor) Hue(frame uint64, _ Bands) float64 { return FrameHue(frame) }

// BandColor colors by low/high band balance.
type BandColor struct{}

func (BandColor) Hue(_ uint64, b Bands) float64 { return BandHue(b.Low, b.High) }
