package pipeline

import "errors"

var (
	// ErrInputNotFound is returned when the input directory is missing or cannot be listed.
	ErrInputNotFound = errors.New("input directory not found")

	// ErrEmptyInput is returned when the input directory holds no supported images.
	ErrEmptyInput = errors.New("no images found")

	// ErrDecode is returned when a frame cannot be read or decoded.
	ErrDecode = errors.New("decode frame")

	// ErrEncodingFailed is returned when the animation cannot be encoded or written.
	ErrEncodingFailed = errors.New("encoding failed")
)
