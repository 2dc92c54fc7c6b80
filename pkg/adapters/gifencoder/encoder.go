// Package gifencoder encodes frame sequences as animated GIF files.
package gifencoder

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"

	"golang.org/x/image/draw"

	"github.com/user/gifmaker/pkg/ports"
)

// Encoder implements ports.AnimationEncoder using image/gif.
type Encoder struct {
	palette color.Palette
	drawer  draw.Drawer
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithPalette sets the palette true-colour frames are quantised to.
func WithPalette(p color.Palette) Option {
	return func(e *Encoder) {
		e.palette = p
	}
}

// WithDrawer sets the drawer used for quantisation (e.g. draw.Src to disable dithering).
func WithDrawer(d draw.Drawer) Option {
	return func(e *Encoder) {
		e.drawer = d
	}
}

// New creates an Encoder quantising to the Plan9 palette with Floyd-Steinberg dithering.
func New(opts ...Option) *Encoder {
	e := &Encoder{
		palette: palette.Plan9,
		drawer:  draw.FloydSteinberg,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode assembles frames into a GIF.
// The logical screen is the largest width and height among the frames;
// every frame is placed at the top-left corner.
func (e *Encoder) Encode(frames []image.Image, opts ports.AnimationOptions) ([]byte, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if opts.LoopCount < 0 {
		return nil, ErrInvalidLoopCount
	}
	if opts.DelayMs < 0 {
		return nil, ErrInvalidDelay
	}

	delay := DelayCentiseconds(opts.DelayMs)
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: opts.LoopCount,
	}

	for i, frame := range frames {
		if frame == nil {
			return nil, fmt.Errorf("gifencoder: frame %d is nil", i)
		}
		pm := e.toPaletted(frame)
		anim.Image = append(anim.Image, pm)
		anim.Delay = append(anim.Delay, delay)

		b := pm.Bounds()
		if b.Dx() > anim.Config.Width {
			anim.Config.Width = b.Dx()
		}
		if b.Dy() > anim.Config.Height {
			anim.Config.Height = b.Dy()
		}
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		return nil, fmt.Errorf("gifencoder: %w", err)
	}
	return buf.Bytes(), nil
}

// toPaletted converts img to a paletted image anchored at the origin.
// Paletted input already at the origin is reused as is.
func (e *Encoder) toPaletted(img image.Image) *image.Paletted {
	b := img.Bounds()
	if pm, ok := img.(*image.Paletted); ok && b.Min == (image.Point{}) && len(pm.Palette) > 0 {
		return pm
	}
	pm := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), e.palette)
	e.drawer.Draw(pm, pm.Rect, img, b.Min)
	return pm
}

// DelayCentiseconds converts a millisecond delay into GIF delay units (1/100 s),
// rounding to the nearest unit. A positive delay never rounds down to zero.
func DelayCentiseconds(ms int) int {
	if ms <= 0 {
		return 0
	}
	cs := (ms + 5) / 10
	if cs == 0 {
		cs = 1
	}
	return cs
}

// Ensure Encoder implements ports.AnimationEncoder
var _ ports.AnimationEncoder = (*Encoder)(nil)
