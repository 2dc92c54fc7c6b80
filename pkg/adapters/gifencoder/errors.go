package gifencoder

import "errors"

var (
	// ErrNoFrames is returned when Encode is called with an empty sequence.
	ErrNoFrames = errors.New("gifencoder: no frames to encode")

	// ErrInvalidLoopCount is returned for a negative loop count.
	ErrInvalidLoopCount = errors.New("gifencoder: loop count must be >= 0")

	// ErrInvalidDelay is returned for a negative frame delay.
	ErrInvalidDelay = errors.New("gifencoder: delay must be >= 0")
)
