package mocks

import (
	"image"

	"github.com/user/gifmaker/pkg/ports"
)

// AnimationEncoder is a mock implementation of ports.AnimationEncoder.
type AnimationEncoder struct {
	EncodeFunc func(frames []image.Image, opts ports.AnimationOptions) ([]byte, error)

	// Recorded calls for verification
	Calls []EncodeCall
}

// EncodeCall records a call to Encode.
type EncodeCall struct {
	Frames []image.Image
	Opts   ports.AnimationOptions
}

func (m *AnimationEncoder) Encode(frames []image.Image, opts ports.AnimationOptions) ([]byte, error) {
	m.Calls = append(m.Calls, EncodeCall{Frames: frames, Opts: opts})
	if m.EncodeFunc != nil {
		return m.EncodeFunc(frames, opts)
	}
	// Minimal GIF header
	return []byte("GIF89a"), nil
}

var _ ports.AnimationEncoder = (*AnimationEncoder)(nil)
