package ports

import (
	"image"
)

// AnimationEncoder abstracts encoding of an ordered frame sequence
// into a single animated image container.
type AnimationEncoder interface {
	// Encode assembles all frames, in order, into one animation and returns the file data.
	// Every frame is shown for opts.DelayMs.
	Encode(frames []image.Image, opts AnimationOptions) ([]byte, error)
}

// AnimationOptions configures animation timing and looping.
type AnimationOptions struct {
	LoopCount int // Number of replays; 0 = loop forever
	DelayMs   int // Display time of each frame in milliseconds
}
