package shape

import (
	"math"

	"github.com/iburimskiy/pulse-heart/internal/signal"
)

// Ring is a circle of particles breathing with the bass, each particle
// stretched by the mid and treble energies. The ring turns by Spin degrees
// per frame.
type Ring struct {
	Particles int
	Scaling   float64
	Spin      float64
}

// NewRing returns a ring with the given particle count, size multiplier and
// spin in degrees per frame.
func NewRing(particles int, scaling, spin float64) *Ring {
	return &Ring{Particles: particles, Scaling: scaling, Spin: spin}
}

func (r *Ring) Draw(c Canvas, p Params) {
	offset := r.Offset(p.Frame)
	radiusBase := remap(p.Bands.Bass, 0, 255, 100, 300)
	w := remap(p.Bands.Mid, 0, 255, 5, 20) * r.Scaling
	h := remap(p.Bands.Treble, 0, 255, 5, 20) * r.Scaling
	frame := float64(p.Frame)

	for i := 0; i < r.Particles; i++ {
		angle := float64(i)*(360/float64(r.Particles)) + offset
		radius := radiusBase + sinDeg(frame+float64(i)*10)*50

		c.Fill(Vivid(angle+frame, 150))
		c.Ellipse(radius*cosDeg(angle), radius*sinDeg(angle), w, h)
	}
}

// Offset is the spin in degrees the ring has turned by at frame.
func (r *Ring) Offset(frame uint64) float64 { return r.Spin * float64(frame) }

// remap is an unclamped linear map, guarded against a zero-width input.
func remap(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return signal.Lerp(outMin, outMax, (v-inMin)/(inMax-inMin))
}

func sinDeg(d float64) float64 { return math.Sin(d * math.Pi / 180) }
func cosDeg(d float64) float64 { return math.Cos(d * math.Pi / 180) }
