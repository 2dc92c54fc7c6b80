// Package encode implements the animation encoding stage.
package encode

import (
	"context"
	"fmt"

	"github.com/user/gifmaker/pkg/pipeline"
	"github.com/user/gifmaker/pkg/ports"
	"github.com/user/gifmaker/pkg/stages/discover"
)

// OutputExt is the only extension the output file may carry.
const OutputExt = ".gif"

// Stage encodes the prepared frames and writes the animation file.
type Stage struct {
	encoder ports.AnimationEncoder
	fs      ports.FileSystem
	logger  ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(encoder ports.AnimationEncoder, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		encoder: encoder,
		fs:      fs,
		logger:  logger.WithComponent("encode"),
	}
}

// EffectiveOutputPath returns path with its final extension replaced by .gif.
// changed is false only when path already ends in exactly ".gif".
func EffectiveOutputPath(path string) (effective string, changed bool) {
	base, ext := discover.SplitExt(path)
	if ext == OutputExt {
		return path, false
	}
	return base + OutputExt, true
}

// Execute hands all frames to the encoder in one call and writes the result.
// Encode and write failures wrap pipeline.ErrEncodingFailed.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	if len(input.Frames) == 0 {
		return result, fmt.Errorf("%w: no frames to encode", pipeline.ErrEncodingFailed)
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	path, renamed := EffectiveOutputPath(input.Spec.OutputPath)

	data, err := s.encoder.Encode(input.Frames, ports.AnimationOptions{
		LoopCount: input.Spec.Loop,
		DelayMs:   input.Spec.DelayMs,
	})
	if err != nil {
		return result, fmt.Errorf("%w: %v", pipeline.ErrEncodingFailed, err)
	}
	s.logger.Debug("Encoded %d frames into %d bytes", len(input.Frames), len(data))

	if err := s.fs.WriteFile(path, data); err != nil {
		return result, fmt.Errorf("%w: write %s: %v", pipeline.ErrEncodingFailed, path, err)
	}
	s.logger.Debug("Wrote %s", path)

	result.OutputPath = path
	result.Renamed = renamed
	result.FrameCount = len(input.Frames)
	result.DurationMs = len(input.Frames) * input.Spec.DelayMs
	result.FileSize = int64(len(data))

	return result, nil
}
