// Package overlay implements the label overlay stage.
package overlay

import (
	"context"
	"errors"

	"github.com/user/gifmaker/pkg/pipeline"
	"github.com/user/gifmaker/pkg/ports"
)

// ErrNoFont is returned when the label has no loaded font face.
var ErrNoFont = errors.New("overlay: font face not loaded")

// Stage draws a frame's base name onto its raster.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new overlay stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("overlay"),
	}
}

// Execute draws input.BaseName at the label anchor.
// Placement does not adapt to image size or text length; text past the edges is clipped.
// A disabled label returns the input raster untouched.
func (s *Stage) Execute(ctx context.Context, input pipeline.OverlayInput) (pipeline.OverlayResult, error) {
	result := pipeline.OverlayResult{Image: input.Image}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if !input.Label.Enabled {
		return result, nil
	}
	if input.Label.Face == nil {
		return result, ErrNoFont
	}

	result.Image = s.renderer.DrawText(input.Image, input.BaseName, input.Label.AnchorX, input.Label.AnchorY, ports.TextStyle{
		Face:  input.Label.Face,
		Color: input.Label.Color,
	})
	s.logger.Debug("Drew label %q at (%d, %d)", input.BaseName, input.Label.AnchorX, input.Label.AnchorY)

	return result, nil
}
