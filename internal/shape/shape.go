// Package shape generates the geometry drawn each frame: the glowing heart
// curve, a user picture in its place, and the particle ring.
package shape

import (
	"image"
	"image/color"

	"github.com/iburimskiy/pulse-heart/internal/config"
	"github.com/iburimskiy/pulse-heart/internal/signal"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an HSB color with straight alpha. Sat and Bright are in [0,1],
// Hue in [0,360).
type Color struct {
	Hue, Sat, Bright float64
	Alpha            uint8
}

// Vivid returns a fully saturated, fully bright color.
func Vivid(hue float64, alpha uint8) Color {
	return Color{Hue: signal.WrapHue(hue), Sat: 1, Bright: 1, Alpha: alpha}
}

// NRGBA converts to a non-premultiplied RGBA color.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := colorful.Hsv(c.Hue, c.Sat, c.Bright).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: c.Alpha}
}

// Canvas is the drawing capability shapes depend on. The current transform
// (translation and rotation) is owned by whoever hands the canvas out, shapes
// draw around the origin.
type Canvas interface {
	Fill(c Color)
	BeginShape()
	Vertex(x, y float64)
	// EndShape closes the polygon back to its first vertex and fills it.
	EndShape()
	Ellipse(x, y, w, h float64)
	// Image draws img centered at the origin, stretched to w by h and
	// multiplied by tint.
	Image(img image.Image, w, h float64, tint Color)
}

// Params carries the per-frame inputs of a draw call.
type Params struct {
	Hue   float64
	Pulse float64
	Frame uint64
	Bands signal.Bands
}

// Drawer is a shape strategy.
type Drawer interface {
	Draw(c Canvas, p Params)
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height float64
}

// Bounds is the square a pulsing shape occupies, used for wall collisions.
func Bounds(pulse float64) Size {
	s := config.ShapeBaseSize * pulse
	return Size{Width: s, Height: s}
}

// Sizer is implemented by shapes whose drawn size is not the pulsing square
// of Bounds.
type Sizer interface {
	Extent(pulse float64) Size
}

// Extent is the size d occupies at pulse. Shapes that are not Sizers use
// Bounds.
func Extent(d Drawer, pulse float64) Size {
	if s, ok := d.(Sizer); ok {
		return s.Extent(pulse)
	}
	return Bounds(pulse)
}

// Point is a vertex in shape space.
type Point struct {
	X, Y float64
}
