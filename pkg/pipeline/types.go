package pipeline

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// =============================================================================
// Common Types
// =============================================================================

// FrameSource identifies one input image.
type FrameSource struct {
	Path     string // Full path used to read the file
	Name     string // File name without directory
	BaseName string // Name without its final extension; used as the label text
	Ext      string // Final extension including the dot, as found on disk
}

// LabelSpec configures the optional base-name overlay.
type LabelSpec struct {
	Enabled  bool
	Face     font.Face // Loaded once per run, shared read-only by every frame
	FontSize float64
	AnchorX  int // Left edge of the text
	AnchorY  int // Top of the text's ascender line
	Color    color.Color
}

// Default locations used when nothing is overridden.
const (
	DefaultInputDir = "./images"
	DefaultFontPath = "fonts/Montserrat/static/Montserrat-Bold.ttf"
)

// DefaultLabelSpec returns the fixed placement used when nothing is overridden.
// Face is left nil; it is filled in after the font has been loaded.
func DefaultLabelSpec() LabelSpec {
	return LabelSpec{
		Enabled:  true,
		FontSize: 25,
		AnchorX:  50,
		AnchorY:  50,
		Color:    color.Black,
	}
}

// EncodingSpec configures the animated output.
type EncodingSpec struct {
	Loop       int    // 0 = infinite
	DelayMs    int    // Uniform per-frame duration
	OutputPath string // Requested path; the extension may be corrected to .gif
}

// DefaultEncodingSpec returns EncodingSpec with default values.
func DefaultEncodingSpec() EncodingSpec {
	return EncodingSpec{
		Loop:       0,
		DelayMs:    1000,
		OutputPath: "./output/new_gif.gif",
	}
}

// =============================================================================
// Discover Stage Types
// =============================================================================

// DiscoverInput contains the directory to scan.
type DiscoverInput struct {
	Dir string
}

// DiscoverResult is the ordered frame set.
// Frames are sorted ascending by Name and every one passed the extension filter.
type DiscoverResult struct {
	Frames []FrameSource
}

// Names returns the file names in order.
func (r DiscoverResult) Names() []string {
	names := make([]string, len(r.Frames))
	for i, f := range r.Frames {
		names[i] = f.Name
	}
	return names
}

// =============================================================================
// Load Stage Types
// =============================================================================

// LoadInput identifies the frame to decode.
type LoadInput struct {
	Frame FrameSource
}

// LoadResult contains the decoded raster.
type LoadResult struct {
	Image image.Image
}

// =============================================================================
// Overlay Stage Types
// =============================================================================

// OverlayInput contains a decoded raster and the text to burn onto it.
type OverlayInput struct {
	Image    image.Image
	BaseName string
	Label    LabelSpec
}

// OverlayResult contains the annotated raster.
type OverlayResult struct {
	Image image.Image
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains the prepared frames and encoder settings.
type EncodeInput struct {
	Frames []image.Image
	Spec   EncodingSpec
}

// EncodeResult describes the written animation.
type EncodeResult struct {
	OutputPath string // Effective path the file was written to
	Renamed    bool   // True if OutputPath differs from the requested path
	FrameCount int
	DurationMs int // One full pass through the animation
	FileSize   int64
}
