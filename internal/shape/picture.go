package shape

import (
	"image"

	"github.com/iburimskiy/pulse-heart/internal/config"
)

// Picture draws a user supplied image in place of the heart.
type Picture struct {
	Img image.Image
}

func (pic Picture) Draw(c Canvas, p Params) {
	b := Bounds(p.Pulse)
	c.Image(pic.Img, b.Width, b.Height, Vivid(p.Hue+config.PictureTintHue, config.PictureTintA))
}
