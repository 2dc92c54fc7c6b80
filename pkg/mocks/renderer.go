package mocks

import (
	"errors"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/user/gifmaker/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	DecodeImageFunc func(data []byte, format ports.ImageFormat) (image.Image, error)
	EncodeImageFunc func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	LoadFontFunc    func(path string, size float64) (font.Face, error)
	DrawTextFunc    func(img image.Image, text string, x, y int, style ports.TextStyle) image.Image

	DecodeCalls   []ports.ImageFormat
	LoadFontCalls []LoadFontCall
	DrawTextCalls []DrawTextCall
}

// LoadFontCall records a call to LoadFont.
type LoadFontCall struct {
	Path string
	Size float64
}

// DrawTextCall records a call to DrawText.
type DrawTextCall struct {
	Text  string
	X, Y  int
	Style ports.TextStyle
}

func (m *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	m.DecodeCalls = append(m.DecodeCalls, format)
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data, format)
	}
	if len(data) == 0 {
		return nil, errors.New("empty image data")
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

func (m *Renderer) LoadFont(path string, size float64) (font.Face, error) {
	m.LoadFontCalls = append(m.LoadFontCalls, LoadFontCall{Path: path, Size: size})
	if m.LoadFontFunc != nil {
		return m.LoadFontFunc(path, size)
	}
	return basicfont.Face7x13, nil
}

// DrawText records the call and returns an RGBA copy of img.
func (m *Renderer) DrawText(img image.Image, text string, x, y int, style ports.TextStyle) image.Image {
	m.DrawTextCalls = append(m.DrawTextCalls, DrawTextCall{Text: text, X: x, Y: y, Style: style})
	if m.DrawTextFunc != nil {
		return m.DrawTextFunc(img, text, x, y, style)
	}
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}

var _ ports.Renderer = (*Renderer)(nil)
