package shape

import (
	"math"
)

// Heart draws the classic parametric heart as a stack of translucent layers,
// back to front, each a little larger, fainter and hue-shifted than the one
// in front of it.
type Heart struct {
	Layers      int
	StepDegrees float64
	BaseScale   float64
	ScaleStep   float64
	BaseAlpha   float64
	AlphaStep   float64
	HueStep     float64
	Factor      float64
	// FixedPulse, when positive, replaces the pulse passed to Draw.
	FixedPulse float64
}

// GlowHeart is the pulsing heart with four glow layers.
func GlowHeart() Heart {
	return Heart{
		Layers:      4,
		StepDegrees: 2,
		BaseScale:   10,
		ScaleStep:   6,
		BaseAlpha:   120,
		AlphaStep:   30,
		HueStep:     15,
		Factor:      0.6,
	}
}

// FixedHeart is a single solid heart of constant size, colored only by hue.
func FixedHeart() Heart {
	return Heart{
		Layers:      1,
		StepDegrees: 1,
		BaseScale:   10,
		BaseAlpha:   180,
		Factor:      1,
		FixedPulse:  1,
	}
}

// Layer describes one glow layer of a heart.
type Layer struct {
	Scale float64
	Color Color
}

// LayerAt returns layer g, where 0 is the front layer.
func (h Heart) LayerAt(g int, baseHue float64) Layer {
	fg := float64(g)
	alpha := h.BaseAlpha - fg*h.AlphaStep
	return Layer{
		Scale: h.BaseScale + fg*h.ScaleStep,
		Color: Vivid(baseHue+fg*h.HueStep, uint8(math.Max(0, math.Min(255, alpha)))),
	}
}

// Draw renders the layers from the back (g = Layers-1) to the front (g = 0).
func (h Heart) Draw(c Canvas, p Params) {
	pulse := p.Pulse
	if h.FixedPulse > 0 {
		pulse = h.FixedPulse
	}
	for g := h.Layers - 1; g >= 0; g-- {
		layer := h.LayerAt(g, p.Hue)
		c.Fill(layer.Color)
		c.BeginShape()
		for _, pt := range HeartOutline(layer.Scale*pulse*h.Factor, h.StepDegrees) {
			c.Vertex(pt.X, pt.Y)
		}
		c.EndShape()
	}
}

// Extent is the pulsing square of Bounds for a pulsing heart. A heart with a
// FixedPulse is measured from its largest layer instead.
func (h Heart) Extent(pulse float64) Size {
	if h.FixedPulse <= 0 {
		return Bounds(pulse)
	}
	scale := (h.BaseScale + float64(h.Layers-1)*h.ScaleStep) * h.FixedPulse * h.Factor
	pts := HeartOutline(scale, h.StepDegrees)
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, pt := range pts {
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
	}
	return Size{Width: maxX - minX, Height: maxY - minY}
}

// HeartPoint evaluates the heart curve at deg degrees, unscaled, y up.
func HeartPoint(deg float64) Point {
	a := deg * math.Pi / 180
	s := math.Sin(a)
	return Point{
		X: 16 * s * s * s,
		Y: 13*math.Cos(a) - 5*math.Cos(2*a) - 2*math.Cos(3*a) - math.Cos(4*a),
	}
}

// HeartOutline samples a full turn of the curve every step degrees, scaled by
// scale and flipped so the point faces down on a y-down screen. The closing
// edge is implied.
func HeartOutline(scale, step float64) []Point {
	n := int(math.Round(360 / step))
	pts := make([]Point, n)
	for i := range pts {
		p := HeartPoint(float64(i) * step)
		pts[i] = Point{X: p.X * scale, Y: -p.Y * scale}
	}
	return pts
}
