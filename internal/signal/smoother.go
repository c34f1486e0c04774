// Package signal turns raw audio readings into the scalars that drive drawing:
// a smoothed pulse factor and a base hue.
package signal

// MapLevel linearly remaps level from [inMin,inMax] to [outMin,outMax] and
// clamps the result to the output range. A zero-width input range yields outMin.
func MapLevel(level, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	mapped := (level-inMin)/(inMax-inMin)*(outMax-outMin) + outMin
	lo, hi := outMin, outMax
	if lo > hi {
		lo, hi = hi, lo
	}
	return clamp(mapped, lo, hi)
}

// Smooth moves current toward target by factor. 1 snaps, 0 holds.
func Smooth(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Range describes a linear input to output mapping.
type Range struct {
	InMin, InMax   float64
	OutMin, OutMax float64
}

// Smoother keeps one exponentially smoothed scalar. Each Update remaps the raw
// reading through Range and eases the current value toward it.
type Smoother struct {
	Range  Range
	Factor float64

	value float64
}

// NewSmoother returns a smoother starting at initial.
func NewSmoother(r Range, factor, initial float64) *Smoother {
	return &Smoother{Range: r, Factor: factor, value: initial}
}

// Update feeds one raw reading and returns the new smoothed value.
func (s *Smoother) Update(raw float64) float64 {
	target := MapLevel(raw, s.Range.InMin, s.Range.InMax, s.Range.OutMin, s.Range.OutMax)
	s.value = Smooth(s.value, target, s.Factor)
	return s.value
}

// Value returns the current smoothed value without updating it.
func (s *Smoother) Value() float64 { return s.value }
