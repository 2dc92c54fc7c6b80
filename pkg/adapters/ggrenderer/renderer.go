// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/font"

	"github.com/user/gifmaker/pkg/ports"
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// DecodeImage decodes image data of the given format.
// The format is trusted; the data is never sniffed.
func (r *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	reader := bytes.NewReader(data)

	switch format {
	case ports.FormatJPEG:
		return jpeg.Decode(reader)
	case ports.FormatPNG:
		return png.Decode(reader)
	case ports.FormatGIF:
		// First frame only, like a still-image reader.
		return gif.Decode(reader)
	case ports.FormatBMP:
		return bmp.Decode(reader)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	case ports.FormatBMP:
		if err := bmp.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode BMP: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return buf.Bytes(), nil
}

// LoadFont loads a TrueType font file at the given point size.
func (r *Renderer) LoadFont(path string, size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %v", size)
	}
	face, err := gg.LoadFontFace(path, size)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	return face, nil
}

// DrawText returns a copy of img with text drawn in style.Face.
// (x, y) is where the top-left of the text's ascender line lands.
// Text running past the image edges is clipped.
func (r *Renderer) DrawText(img image.Image, text string, x, y int, style ports.TextStyle) image.Image {
	dc := gg.NewContextForImage(img)
	if style.Face != nil {
		dc.SetFontFace(style.Face)
	}

	col := style.Color
	if col == nil {
		col = color.Black
	}
	dc.SetColor(col)

	ascent := 0.0
	if style.Face != nil {
		ascent = float64(style.Face.Metrics().Ascent) / 64
	}
	dc.DrawString(text, float64(x), float64(y)+ascent)

	return dc.Image()
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)
