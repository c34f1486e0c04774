package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"os"
)

var (
	// ErrNotPNG is returned for uploads whose content is not a PNG image.
	ErrNotPNG = errors.New("please upload a PNG image")

	// ErrCanceled is returned by a LoadFunc when the user backed out.
	ErrCanceled = errors.New("upload canceled")

	// ErrLoadPending is returned by Upload while a previous load is in flight.
	ErrLoadPending = errors.New("an image is already loading")
)

// LoadFunc produces the picture to show instead of the heart. It runs off the
// frame loop and may block, for example on a file dialog.
type LoadFunc func() (image.Image, error)

type loadResult struct {
	img image.Image
	err error
}

// DecodePNG reads r fully and decodes it, rejecting content that does not
// sniff as image/png regardless of what the file is called.
func DecodePNG(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if ct := http.DetectContentType(data); ct != "image/png" {
		return nil, fmt.Errorf("%w: got %s", ErrNotPNG, ct)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding png: %w", err)
	}
	return img, nil
}

// LoadPNGFile decodes the PNG at path.
func LoadPNGFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodePNG(f)
}
