package game

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/iburimskiy/pulse-heart/internal/scene"
	"github.com/ncruces/zenity"
)

const dialogTitle = "pulse-heart"

// pickPNG returns a loader that asks for a PNG with a native dialog and warns
// the user when the chosen file is not one.
func pickPNG(log *slog.Logger) scene.LoadFunc {
	return func() (image.Image, error) {
		filename, err := zenity.SelectFile(
			zenity.Title("Upload a PNG image"),
			zenity.FileFilters{{
				Name:     "PNG image",
				Patterns: []string{"*.png"},
			}},
		)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				return nil, scene.ErrCanceled
			}
			return nil, fmt.Errorf("file dialog: %w", err)
		}

		log.Debug("file chosen", "file", filename)
		img, err := scene.LoadPNGFile(filename)
		if errors.Is(err, scene.ErrNotPNG) {
			if werr := zenity.Warning("Please upload a PNG image!", zenity.Title(dialogTitle), zenity.WarningIcon); werr != nil {
				log.Warn("showing warning", "error", werr)
			}
		}
		return img, err
	}
}

// LoadFile returns a loader for a PNG given on the command line.
func LoadFile(path string) scene.LoadFunc {
	return func() (image.Image, error) {
		return scene.LoadPNGFile(path)
	}
}
