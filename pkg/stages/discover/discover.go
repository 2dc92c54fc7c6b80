// Package discover implements frame discovery: listing the input directory,
// keeping supported images and ordering them deterministically.
package discover

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/user/gifmaker/pkg/pipeline"
	"github.com/user/gifmaker/pkg/ports"
)

// Stage lists a directory and produces the ordered frame set.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new discover stage.
func NewStage(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("discover"),
	}
}

// Execute lists input.Dir (non-recursive) and returns supported files sorted by name.
// The sort is a byte-wise comparison of the full file name, so the result is
// independent of the order the filesystem returns entries in.
func (s *Stage) Execute(ctx context.Context, input pipeline.DiscoverInput) (pipeline.DiscoverResult, error) {
	result := pipeline.DiscoverResult{}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	entries, err := s.fs.ReadDir(input.Dir)
	if err != nil {
		return result, fmt.Errorf("%w: %s: %v", pipeline.ErrInputNotFound, input.Dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir || !IsSupported(e.Name) {
			continue
		}
		names = append(names, e.Name)
	}
	sort.Strings(names)

	s.logger.Debug("Listed %d entries, %d supported", len(entries), len(names))

	if len(names) == 0 {
		return result, fmt.Errorf("%w in %s", pipeline.ErrEmptyInput, input.Dir)
	}

	result.Frames = make([]pipeline.FrameSource, len(names))
	for i, name := range names {
		base, ext := SplitExt(name)
		result.Frames[i] = pipeline.FrameSource{
			Path:     filepath.Join(input.Dir, name),
			Name:     name,
			BaseName: base,
			Ext:      ext,
		}
	}

	return result, nil
}
