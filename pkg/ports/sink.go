package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving prepared frames for inspection before they are encoded.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SavePreparedFrame saves a frame after the optional label overlay.
	SavePreparedFrame(index int, img image.Image) error

	// SaveManifest saves the ordered frame list and run settings.
	SaveManifest(data []byte) error
}
