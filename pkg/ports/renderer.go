package ports

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
)

// Renderer abstracts raster decoding and drawing operations.
type Renderer interface {
	// DecodeImage decodes image data of a known format into an image.Image.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// LoadFont loads a TrueType font file at the given point size.
	LoadFont(path string, size float64) (font.Face, error)

	// DrawText returns a copy of img with text drawn on it.
	// (x, y) is the top-left corner of the text's ascender line.
	DrawText(img image.Image, text string, x, y int, style TextStyle) image.Image
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	Face  font.Face
	Color color.Color
}

// ImageFormat specifies an image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
	FormatGIF
	FormatBMP
)

// String returns the canonical name of the format.
func (f ImageFormat) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPNG:
		return "png"
	case FormatGIF:
		return "gif"
	case FormatBMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// FormatFromExt maps a file extension (with leading dot, any case) to an ImageFormat.
func FormatFromExt(ext string) (ImageFormat, error) {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".png":
		return FormatPNG, nil
	case ".gif":
		return FormatGIF, nil
	case ".bmp":
		return FormatBMP, nil
	default:
		return 0, fmt.Errorf("unsupported image extension %q", ext)
	}
}
