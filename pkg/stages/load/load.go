// Package load implements the frame loading stage.
package load

import (
	"context"
	"fmt"

	"github.com/user/gifmaker/pkg/pipeline"
	"github.com/user/gifmaker/pkg/ports"
)

// Stage reads and decodes one frame.
type Stage struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new load stage.
func NewStage(fs ports.FileSystem, renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		fs:       fs,
		renderer: renderer,
		logger:   logger.WithComponent("load"),
	}
}

// Execute decodes input.Frame with the decoder chosen by its extension.
// Every failure wraps pipeline.ErrDecode and names the file.
func (s *Stage) Execute(ctx context.Context, input pipeline.LoadInput) (pipeline.LoadResult, error) {
	result := pipeline.LoadResult{}
	frame := input.Frame

	if err := ctx.Err(); err != nil {
		return result, err
	}

	format, err := ports.FormatFromExt(frame.Ext)
	if err != nil {
		return result, fmt.Errorf("%w %s: %v", pipeline.ErrDecode, frame.Path, err)
	}

	data, err := s.fs.ReadFile(frame.Path)
	if err != nil {
		return result, fmt.Errorf("%w %s: read: %v", pipeline.ErrDecode, frame.Path, err)
	}

	img, err := s.renderer.DecodeImage(data, format)
	if err != nil {
		return result, fmt.Errorf("%w %s: %s: %v", pipeline.ErrDecode, frame.Path, format, err)
	}

	b := img.Bounds()
	s.logger.Debug("Decoded %s (%dx%d)", frame.Name, b.Dx(), b.Dy())

	result.Image = img
	return result, nil
}
