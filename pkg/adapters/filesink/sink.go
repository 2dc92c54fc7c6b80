// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/gifmaker/pkg/ports"
)

// Sink saves debug output under a base directory:
//
//	<base>/frames/frame-0000.png  prepared frames, in encode order
//	<base>/manifest.yaml          ordered frame list and run settings
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new file sink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SavePreparedFrame saves a prepared frame as PNG.
func (s *Sink) SavePreparedFrame(index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "frames")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode prepared frame: %w", err)
	}
	return s.fs.WriteFile(filepath.Join(dir, fmt.Sprintf("frame-%04d.png", index)), data)
}

// SaveManifest saves the run manifest.
func (s *Sink) SaveManifest(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "manifest.yaml"), data)
}

// Dir returns the base directory.
func (s *Sink) Dir() string {
	return s.baseDir
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
