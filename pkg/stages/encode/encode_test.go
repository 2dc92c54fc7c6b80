package encode

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/user/gifmaker/pkg/adapters/logger"
	"github.com/user/gifmaker/pkg/mocks"
	"github.com/user/gifmaker/pkg/pipeline"
	"github.com/user/gifmaker/pkg/ports"
)

func frames(n int) []image.Image {
	out := make([]image.Image, n)
	for i := range out {
		out[i] = image.NewRGBA(image.Rect(0, 0, 10+i, 10))
	}
	return out
}

func TestEffectiveOutputPath(t *testing.T) {
	tests := []struct {
		in          string
		want        string
		wantChanged bool
	}{
		{in: "./output/new_gif.gif", want: "./output/new_gif.gif", wantChanged: false},
		{in: "result.png", want: "result.gif", wantChanged: true},
		{in: "result", want: "result.gif", wantChanged: true},
		{in: "result.GIF", want: "result.gif", wantChanged: true},
		{in: "out.d/anim", want: "out.d/anim.gif", wantChanged: true},
		{in: "a.b.jpeg", want: "a.b.gif", wantChanged: true},
		{in: ".gif", want: ".gif.gif", wantChanged: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, changed := EffectiveOutputPath(tt.in)
			if got != tt.want || changed != tt.wantChanged {
				t.Errorf("EffectiveOutputPath(%q) = (%q, %v), want (%q, %v)", tt.in, got, changed, tt.want, tt.wantChanged)
			}
		})
	}
}

func TestStage_Execute(t *testing.T) {
	encoder := &mocks.AnimationEncoder{}
	fs := mocks.NewFileSystem()
	stage := NewStage(encoder, fs, logger.NewNoop())

	input := pipeline.EncodeInput{
		Frames: frames(3),
		Spec: pipeline.EncodingSpec{
			Loop:       3,
			DelayMs:    500,
			OutputPath: "out/anim.gif",
		},
	}

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(encoder.Calls) != 1 {
		t.Fatalf("expected encoder to be called once, got %d", len(encoder.Calls))
	}
	call := encoder.Calls[0]
	if call.Opts != (ports.AnimationOptions{LoopCount: 3, DelayMs: 500}) {
		t.Errorf("unexpected options %+v", call.Opts)
	}
	if len(call.Frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(call.Frames))
	}
	for i := range input.Frames {
		if call.Frames[i] != input.Frames[i] {
			t.Errorf("frame %d out of order", i)
		}
	}

	if _, ok := fs.GetFile("out/anim.gif"); !ok {
		t.Error("expected output to be written")
	}
	if result.OutputPath != "out/anim.gif" || result.Renamed {
		t.Errorf("unexpected result path %q renamed=%v", result.OutputPath, result.Renamed)
	}
	if result.FrameCount != 3 || result.DurationMs != 1500 {
		t.Errorf("unexpected frame count %d / duration %d", result.FrameCount, result.DurationMs)
	}
	if result.FileSize != int64(len("GIF89a")) {
		t.Errorf("unexpected file size %d", result.FileSize)
	}
}

func TestStage_Execute_RenamesOutput(t *testing.T) {
	fs := mocks.NewFileSystem()
	stage := NewStage(&mocks.AnimationEncoder{}, fs, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.EncodeInput{
		Frames: frames(1),
		Spec:   pipeline.EncodingSpec{DelayMs: 1000, OutputPath: "result.png"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OutputPath != "result.gif" || !result.Renamed {
		t.Errorf("expected renamed to result.gif, got %q renamed=%v", result.OutputPath, result.Renamed)
	}
	if _, ok := fs.GetFile("result.gif"); !ok {
		t.Error("expected result.gif to be written")
	}
	if _, ok := fs.GetFile("result.png"); ok {
		t.Error("expected result.png not to be written")
	}
}

func TestStage_Execute_Failures(t *testing.T) {
	tests := []struct {
		name    string
		encoder *mocks.AnimationEncoder
		fs      func() *mocks.FileSystem
		frames  []image.Image
	}{
		{
			name: "encoder rejects",
			encoder: &mocks.AnimationEncoder{
				EncodeFunc: func(frames []image.Image, opts ports.AnimationOptions) ([]byte, error) {
					return nil, errors.New("bad frames")
				},
			},
			fs:     mocks.NewFileSystem,
			frames: frames(2),
		},
		{
			name:    "unwritable path",
			encoder: &mocks.AnimationEncoder{},
			fs: func() *mocks.FileSystem {
				fs := mocks.NewFileSystem()
				fs.WriteFileFunc = func(path string, data []byte) error {
					return errors.New("permission denied")
				}
				return fs
			},
			frames: frames(2),
		},
		{
			name:    "no frames",
			encoder: &mocks.AnimationEncoder{},
			fs:      mocks.NewFileSystem,
			frames:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage := NewStage(tt.encoder, tt.fs(), logger.NewNoop())

			_, err := stage.Execute(context.Background(), pipeline.EncodeInput{
				Frames: tt.frames,
				Spec:   pipeline.EncodingSpec{DelayMs: 100, OutputPath: "out.gif"},
			})
			if !errors.Is(err, pipeline.ErrEncodingFailed) {
				t.Errorf("expected ErrEncodingFailed, got %v", err)
			}
		})
	}
}

func TestStage_Execute_ContextCancelled(t *testing.T) {
	encoder := &mocks.AnimationEncoder{}
	stage := NewStage(encoder, mocks.NewFileSystem(), logger.NewNoop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, pipeline.EncodeInput{
		Frames: frames(2),
		Spec:   pipeline.EncodingSpec{OutputPath: "out.gif"},
	})
	if err == nil {
		t.Error("expected error for cancelled context")
	}
	if len(encoder.Calls) != 0 {
		t.Error("expected encoder not to be called")
	}
}
