// Package summarizer provides summary generation for gifmaker runs.
package summarizer

import "time"

// Summary contains all data collected during one run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source images
	Input InputInfo

	// Run settings
	Settings Settings

	// Written animation
	Output OutputInfo
}

// InputInfo describes the scanned directory.
type InputInfo struct {
	Dir    string
	Frames []string // file names in encode order
}

// Settings contains the run configuration.
type Settings struct {
	Loop     int
	DelayMs  int
	AddName  bool
	FontPath string
	FontSize float64
}

// OutputInfo contains information about the output GIF.
type OutputInfo struct {
	Path       string
	Renamed    bool // extension was forced to .gif
	FrameCount int
	DurationMs int
	FileSize   int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets the scanned directory and the frames found in it.
func (b *Builder) WithInput(dir string, frames []string) *Builder {
	b.summary.Input = InputInfo{
		Dir:    dir,
		Frames: frames,
	}
	return b
}

// WithSettings sets run settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithOutput sets output information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
