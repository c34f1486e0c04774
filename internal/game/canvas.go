package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/pulse-heart/internal/shape"
)

const ellipseSegments = 24

// canvas adapts an ebiten screen to scene.Renderer.
type canvas struct {
	dst   *ebiten.Image
	white *ebiten.Image

	geo   ebiten.GeoM
	stack []ebiten.GeoM

	fill    shape.Color
	path    vector.Path
	started bool

	// The uploaded picture converted to a GPU image, rebuilt when it changes.
	picSrc image.Image
	picImg *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

func newCanvas() *canvas {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &canvas{white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// begin targets dst for one frame.
func (c *canvas) begin(dst *ebiten.Image) {
	c.dst = dst
	c.geo.Reset()
	c.stack = c.stack[:0]
}

func (c *canvas) Background(alpha uint8) {
	b := c.dst.Bounds()
	vector.DrawFilledRect(c.dst, 0, 0, float32(b.Dx()), float32(b.Dy()), color.NRGBA{A: alpha}, false)
}

func (c *canvas) Push(x, y, deg float64) {
	c.stack = append(c.stack, c.geo)
	var m ebiten.GeoM
	m.Rotate(deg * math.Pi / 180)
	m.Translate(x, y)
	m.Concat(c.geo)
	c.geo = m
}

func (c *canvas) Pop() {
	if len(c.stack) == 0 {
		c.geo.Reset()
		return
	}
	c.geo = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *canvas) Fill(col shape.Color) { c.fill = col }

func (c *canvas) BeginShape() {
	c.path = vector.Path{}
	c.started = false
}

func (c *canvas) Vertex(x, y float64) {
	sx, sy := c.geo.Apply(x, y)
	if !c.started {
		c.path.MoveTo(float32(sx), float32(sy))
		c.started = true
		return
	}
	c.path.LineTo(float32(sx), float32(sy))
}

func (c *canvas) EndShape() {
	if !c.started {
		return
	}
	c.path.Close()

	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	col := c.fill.NRGBA()
	r, g, b, a := float32(col.R)/0xff, float32(col.G)/0xff, float32(col.B)/0xff, float32(col.A)/0xff
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = r
		c.vertices[i].ColorG = g
		c.vertices[i].ColorB = b
		c.vertices[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	}
	c.dst.DrawTriangles(c.vertices, c.indices, c.white, op)
	c.started = false
}

func (c *canvas) Ellipse(x, y, w, h float64) {
	c.BeginShape()
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		c.Vertex(x+w/2*math.Cos(a), y+h/2*math.Sin(a))
	}
	c.EndShape()
}

func (c *canvas) Image(img image.Image, w, h float64, tint shape.Color) {
	src := c.picture(img)
	if src == nil {
		return
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Concat(c.geo)
	op.ColorScale.ScaleWithColor(tint.NRGBA())
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(src, op)
}

func (c *canvas) picture(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if img != c.picSrc {
		if c.picImg != nil {
			c.picImg.Deallocate()
		}
		c.picSrc = img
		c.picImg = ebiten.NewImageFromImage(img)
	}
	return c.picImg
}

func (c *canvas) Text(s string, x, y float64) {
	ebitenutil.DebugPrintAt(c.dst, s, int(x), int(y))
}
