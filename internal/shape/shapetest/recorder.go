// Package shapetest provides a shape.Canvas that records calls instead of
// drawing them.
package shapetest

import (
	"image"

	"github.com/iburimskiy/pulse-heart/internal/shape"
)

// Polygon is one BeginShape/EndShape pair and the fill active when it closed.
type Polygon struct {
	Fill     shape.Color
	Vertices []shape.Point
	Closed   bool
}

// ImageCall records one Image call.
type ImageCall struct {
	Img           image.Image
	Width, Height float64
	Tint          shape.Color
}

// EllipseCall records one Ellipse call.
type EllipseCall struct {
	X, Y, W, H float64
	Fill       shape.Color
}

// Recorder implements shape.Canvas.
type Recorder struct {
	Fills    []shape.Color
	Polygons []Polygon
	Images   []ImageCall
	Ellipses []EllipseCall

	fill    shape.Color
	current *Polygon
}

func (r *Recorder) Fill(c shape.Color) {
	r.fill = c
	r.Fills = append(r.Fills, c)
}

func (r *Recorder) BeginShape() {
	r.current = &Polygon{Fill: r.fill}
}

func (r *Recorder) Vertex(x, y float64) {
	if r.current == nil {
		return
	}
	r.current.Vertices = append(r.current.Vertices, shape.Point{X: x, Y: y})
}

func (r *Recorder) EndShape() {
	if r.current == nil {
		return
	}
	r.current.Closed = true
	r.Polygons = append(r.Polygons, *r.current)
	r.current = nil
}

func (r *Recorder) Ellipse(x, y, w, h float64) {
	r.Ellipses = append(r.Ellipses, EllipseCall{X: x, Y: y, W: w, H: h, Fill: r.fill})
}

func (r *Recorder) Image(img image.Image, w, h float64, tint shape.Color) {
	r.Images = append(r.Images, ImageCall{Img: img, Width: w, Height: h, Tint: tint})
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	*r = Recorder{}
}
