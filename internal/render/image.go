package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// PaletteImage renders palette-indexed cells into a new RGBA image.
func PaletteImage(w, h int, cells []uint8, palette []color.RGBA) (*image.RGBA, error) {
	if len(cells) != w*h {
		return nil, fmt.Errorf("render: %d cells for a %dx%d image", len(cells), w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillPaletteRGBA(img.Pix, cells, palette)
	return img, nil
}

// WritePNG encodes img to path, replacing any existing file.
func WritePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
