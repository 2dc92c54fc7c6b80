// Package orchestrator drives the gifmaker pipeline from font loading to the written file.
package orchestrator

import (
	"context"
	"errors"
	"image"
	"image/color"

	"gopkg.in/yaml.v3"

	"github.com/user/gifmaker/pkg/pipeline"
	"github.com/user/gifmaker/pkg/ports"
	"github.com/user/gifmaker/pkg/stages/encode"
)

// Config contains all configuration for one run.
type Config struct {
	// Input
	InputDir string

	// Label
	AddName      bool
	FontPath     string
	FontSize     float64
	LabelAnchorX int
	LabelAnchorY int
	LabelColor   color.Color

	// Encoding
	OutputPath string
	Loop       int
	DelayMs    int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	label := pipeline.DefaultLabelSpec()
	enc := pipeline.DefaultEncodingSpec()
	return Config{
		InputDir: pipeline.DefaultInputDir,

		AddName:      label.Enabled,
		FontPath:     pipeline.DefaultFontPath,
		FontSize:     label.FontSize,
		LabelAnchorX: label.AnchorX,
		LabelAnchorY: label.AnchorY,
		LabelColor:   label.Color,

		OutputPath: enc.OutputPath,
		Loop:       enc.Loop,
		DelayMs:    enc.DelayMs,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	discoverStage pipeline.Stage[pipeline.DiscoverInput, pipeline.DiscoverResult]
	loadStage     pipeline.Stage[pipeline.LoadInput, pipeline.LoadResult]
	overlayStage  pipeline.Stage[pipeline.OverlayInput, pipeline.OverlayResult]
	encodeStage   pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	renderer      ports.Renderer
	sink          ports.DebugSink
	logger        ports.Logger
}

// New creates a new Orchestrator.
func New(
	discoverStage pipeline.Stage[pipeline.DiscoverInput, pipeline.DiscoverResult],
	loadStage pipeline.Stage[pipeline.LoadInput, pipeline.LoadResult],
	overlayStage pipeline.Stage[pipeline.OverlayInput, pipeline.OverlayResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	renderer ports.Renderer,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		discoverStage: discoverStage,
		loadStage:     loadStage,
		overlayStage:  overlayStage,
		encodeStage:   encodeStage,
		renderer:      renderer,
		sink:          sink,
		logger:        logger,
	}
}

// run holds the state of a single invocation. It is created by Run and never shared.
type run struct {
	state    State
	config   Config
	label    pipeline.LabelSpec
	frames   pipeline.DiscoverResult
	prepared []image.Image
	encoded  pipeline.EncodeResult
}

// Run executes the pipeline once. On failure the returned error is a *RunError.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	r := &run{state: StateInit, config: config}

	steps := []func(context.Context, *run) error{
		o.loadFont,
		o.discover,
		o.prepare,
		o.encode,
	}
	for _, step := range steps {
		if err := step(ctx, r); err != nil {
			return RunResult{}, o.fail(r, err)
		}
	}

	r.state = StateDone
	o.logger.Info("Done! New gif can be found at %s", r.encoded.OutputPath)

	return RunResult{
		InputDir:   config.InputDir,
		Frames:     r.frames.Names(),
		OutputPath: r.encoded.OutputPath,
		Renamed:    r.encoded.Renamed,
		FrameCount: r.encoded.FrameCount,
		DurationMs: r.encoded.DurationMs,
		FileSize:   r.encoded.FileSize,
	}, nil
}

// Init -> FontReady
func (o *Orchestrator) loadFont(ctx context.Context, r *run) error {
	o.logger.Debug("Loading font %s (%.0fpt)", r.config.FontPath, r.config.FontSize)

	face, err := o.renderer.LoadFont(r.config.FontPath, r.config.FontSize)
	if err != nil {
		return &RunError{Kind: KindFontNotFound, Path: r.config.FontPath, Err: err}
	}

	r.label = pipeline.LabelSpec{
		Enabled:  r.config.AddName,
		Face:     face,
		FontSize: r.config.FontSize,
		AnchorX:  r.config.LabelAnchorX,
		AnchorY:  r.config.LabelAnchorY,
		Color:    r.config.LabelColor,
	}
	if r.label.Color == nil {
		r.label.Color = color.Black
	}
	r.state = StateFontReady
	return nil
}

// FontReady -> FramesDiscovered
func (o *Orchestrator) discover(ctx context.Context, r *run) error {
	o.logger.Info("Scanning %s for images", r.config.InputDir)

	frames, err := o.discoverStage.Execute(ctx, pipeline.DiscoverInput{Dir: r.config.InputDir})
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrEmptyInput):
			return &RunError{Kind: KindEmptyInput, Path: r.config.InputDir, Err: err}
		case errors.Is(err, pipeline.ErrInputNotFound):
			return &RunError{Kind: KindInputNotFound, Path: r.config.InputDir, Err: err}
		}
		return err
	}

	r.frames = frames
	r.state = StateFramesDiscovered
	o.logger.Info("Found %d images", len(frames.Frames))
	return nil
}

// FramesDiscovered -> FramesPrepared
// Frames are handled one at a time in discovery order.
func (o *Orchestrator) prepare(ctx context.Context, r *run) error {
	total := len(r.frames.Frames)
	r.prepared = make([]image.Image, 0, total)

	for i, frame := range r.frames.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		o.logger.Debug("Preparing frame %d/%d: %s", i+1, total, frame.Name)

		loaded, err := o.loadStage.Execute(ctx, pipeline.LoadInput{Frame: frame})
		if err != nil {
			return decodeError(frame, err)
		}

		img := loaded.Image
		if r.label.Enabled {
			annotated, err := o.overlayStage.Execute(ctx, pipeline.OverlayInput{
				Image:    img,
				BaseName: frame.BaseName,
				Label:    r.label,
			})
			if err != nil {
				return decodeError(frame, err)
			}
			img = annotated.Image
		}

		if o.sink.Enabled() {
			if err := o.sink.SavePreparedFrame(i, img); err != nil {
				o.logger.Warn("Failed to save debug output: %s", err)
			}
		}
		r.prepared = append(r.prepared, img)
	}

	r.state = StateFramesPrepared
	o.saveManifest(r)
	return nil
}

func decodeError(frame pipeline.FrameSource, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &RunError{Kind: KindDecode, Path: frame.Path, Err: err}
}

// FramesPrepared -> Encoded
func (o *Orchestrator) encode(ctx context.Context, r *run) error {
	spec := pipeline.EncodingSpec{
		Loop:       r.config.Loop,
		DelayMs:    r.config.DelayMs,
		OutputPath: r.config.OutputPath,
	}
	// The notice precedes the write so it is shown even when writing fails.
	if _, changed := encode.EffectiveOutputPath(spec.OutputPath); changed {
		o.logger.Info("Output file extension must be '.gif'. This has been automatically added.")
	}
	o.logger.Info("Encoding %d frames (loop %d, %d ms per frame)", len(r.prepared), spec.Loop, spec.DelayMs)

	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{Frames: r.prepared, Spec: spec})
	if err != nil {
		if errors.Is(err, pipeline.ErrEncodingFailed) {
			return &RunError{Kind: KindOutput, Path: spec.OutputPath, Err: err}
		}
		return err
	}

	// Frames are no longer needed once written.
	r.prepared = nil
	r.encoded = encoded
	r.state = StateEncoded
	return nil
}

// fail converts err into a *RunError, logs its single user-facing line and marks the run failed.
func (o *Orchestrator) fail(r *run, err error) *RunError {
	var runErr *RunError
	if !errors.As(err, &runErr) {
		runErr = &RunError{Kind: KindCancelled, Err: err}
	}
	runErr.State = r.state
	r.state = StateFailed

	switch runErr.Kind {
	case KindDecode, KindCancelled:
		o.logger.Error(runErr.Kind.message(), runErr.Err)
	default:
		o.logger.Error(runErr.Kind.message())
		o.logger.Debug("%s", runErr.Err)
	}
	return runErr
}

// manifest is the debug record of a run, written as YAML.
type manifest struct {
	InputDir string   `yaml:"input"`
	Output   string   `yaml:"output"`
	Loop     int      `yaml:"loop"`
	DelayMs  int      `yaml:"delay_ms"`
	AddName  bool     `yaml:"add_name"`
	FontPath string   `yaml:"font_path"`
	FontSize float64  `yaml:"font_size"`
	Anchor   [2]int   `yaml:"anchor,flow"`
	Frames   []string `yaml:"frames"`
}

func (o *Orchestrator) saveManifest(r *run) {
	if !o.sink.Enabled() {
		return
	}
	data, err := yaml.Marshal(manifest{
		InputDir: r.config.InputDir,
		Output:   r.config.OutputPath,
		Loop:     r.config.Loop,
		DelayMs:  r.config.DelayMs,
		AddName:  r.label.Enabled,
		FontPath: r.config.FontPath,
		FontSize: r.config.FontSize,
		Anchor:   [2]int{r.label.AnchorX, r.label.AnchorY},
		Frames:   r.frames.Names(),
	})
	if err == nil {
		err = o.sink.SaveManifest(data)
	}
	if err != nil {
		o.logger.Warn("Failed to save debug output: %s", err)
	}
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	InputDir   string
	Frames     []string // File names in encode order
	OutputPath string   // Effective path written
	Renamed    bool
	FrameCount int
	DurationMs int
	FileSize   int64
}
