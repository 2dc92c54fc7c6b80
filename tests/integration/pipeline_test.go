// Package integration contains integration tests for the gifmaker pipeline.
package integration

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/gifmaker/pkg/adapters/filesink"
	"github.com/user/gifmaker/pkg/adapters/gifencoder"
	"github.com/user/gifmaker/pkg/adapters/ggrenderer"
	"github.com/user/gifmaker/pkg/adapters/logger"
	"github.com/user/gifmaker/pkg/adapters/nullsink"
	"github.com/user/gifmaker/pkg/adapters/osfilesystem"
	"github.com/user/gifmaker/pkg/orchestrator"
	"github.com/user/gifmaker/pkg/pipeline"
	"github.com/user/gifmaker/pkg/ports"
	"github.com/user/gifmaker/pkg/stages/discover"
	"github.com/user/gifmaker/pkg/stages/encode"
	"github.com/user/gifmaker/pkg/stages/load"
	"github.com/user/gifmaker/pkg/stages/overlay"
)

// writeImages writes one solid image per name; the extension selects the encoder.
func writeImages(t *testing.T, dir string, size image.Point, names ...string) {
	t.Helper()
	for i, name := range names {
		img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
		fill := color.RGBA{R: uint8(40 * i), G: 220, B: 220, A: 255}
		for y := 0; y < size.Y; y++ {
			for x := 0; x < size.X; x++ {
				img.Set(x, y, fill)
			}
		}

		var buf bytes.Buffer
		var err error
		switch filepath.Ext(name) {
		case ".png":
			err = png.Encode(&buf, img)
		case ".jpg", ".jpeg":
			err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
		case ".bmp":
			err = bmp.Encode(&buf, img)
		case ".gif":
			err = gif.Encode(&buf, img, nil)
		default:
			buf.WriteString("not an image")
		}
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func writeFont(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "font.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestDiscoverToEncode chains the stages by hand with real adapters
func TestDiscoverToEncode(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	input := filepath.Join(dir, "images")
	if err := os.MkdirAll(filepath.Join(input, "nested"), 0755); err != nil {
		t.Fatal(err)
	}
	writeImages(t, input, image.Pt(100, 60), "b.jpg", "a.png", "c.bmp", "d.gif", "notes.txt")

	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	log := logger.NewNoop()

	discovered, err := discover.NewStage(fs, log).Execute(ctx, pipeline.DiscoverInput{Dir: input})
	if err != nil {
		t.Fatalf("Discover stage failed: %v", err)
	}
	want := []string{"a.png", "b.jpg", "c.bmp", "d.gif"}
	names := discovered.Names()
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("frame %d: expected %s, got %s", i, want[i], names[i])
		}
	}

	face, err := renderer.LoadFont(writeFont(t, dir), 14)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	label := pipeline.DefaultLabelSpec()
	label.Face = face
	label.AnchorX, label.AnchorY = 5, 5

	loadStage := load.NewStage(fs, renderer, log)
	overlayStage := overlay.NewStage(renderer, log)

	var frames []image.Image
	for _, frame := range discovered.Frames {
		loaded, err := loadStage.Execute(ctx, pipeline.LoadInput{Frame: frame})
		if err != nil {
			t.Fatalf("Load stage failed for %s: %v", frame.Name, err)
		}
		annotated, err := overlayStage.Execute(ctx, pipeline.OverlayInput{
			Image:    loaded.Image,
			BaseName: frame.BaseName,
			Label:    label,
		})
		if err != nil {
			t.Fatalf("Overlay stage failed for %s: %v", frame.Name, err)
		}
		frames = append(frames, annotated.Image)
	}

	output := filepath.Join(dir, "out", "anim")
	encoded, err := encode.NewStage(gifencoder.New(), fs, log).Execute(ctx, pipeline.EncodeInput{
		Frames: frames,
		Spec:   pipeline.EncodingSpec{Loop: 1, DelayMs: 40, OutputPath: output},
	})
	if err != nil {
		t.Fatalf("Encode stage failed: %v", err)
	}

	if encoded.OutputPath != output+".gif" || !encoded.Renamed {
		t.Errorf("expected renamed output %s.gif, got %s (renamed=%v)", output, encoded.OutputPath, encoded.Renamed)
	}

	data, err := os.ReadFile(encoded.OutputPath)
	if err != nil {
		t.Fatalf("Output not written: %v", err)
	}
	if int64(len(data)) != encoded.FileSize {
		t.Errorf("expected file size %d, got %d", encoded.FileSize, len(data))
	}

	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Invalid GIF: %v", err)
	}
	if len(g.Image) != 4 || g.LoopCount != 1 {
		t.Errorf("expected 4 frames with loop 1, got %d frames loop %d", len(g.Image), g.LoopCount)
	}
	for i, d := range g.Delay {
		if d != 4 {
			t.Errorf("frame %d: expected delay 4cs, got %d", i, d)
		}
	}
}

func newOrchestrator(fs ports.FileSystem, sink ports.DebugSink) *orchestrator.Orchestrator {
	renderer := ggrenderer.New()
	log := logger.NewNoop()
	return orchestrator.New(
		discover.NewStage(fs, log),
		load.NewStage(fs, renderer, log),
		overlay.NewStage(renderer, log),
		encode.NewStage(gifencoder.New(), fs, log),
		renderer,
		sink,
		log,
	)
}

// TestOrchestratorEndToEnd runs the orchestrator against the real file system
func TestOrchestratorEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "images")
	if err := os.MkdirAll(input, 0755); err != nil {
		t.Fatal(err)
	}
	writeImages(t, input, image.Pt(80, 80), "2019.png", "2020.png", "2021.png")

	cfg := orchestrator.DefaultConfig()
	cfg.InputDir = input
	cfg.FontPath = writeFont(t, dir)
	cfg.OutputPath = filepath.Join(dir, "years.gif")
	cfg.DelayMs = 500

	result, err := newOrchestrator(osfilesystem.New(), nullsink.New()).Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.OutputPath != cfg.OutputPath || result.Renamed {
		t.Errorf("unexpected output %s (renamed=%v)", result.OutputPath, result.Renamed)
	}
	if result.FrameCount != 3 || result.DurationMs != 1500 {
		t.Errorf("expected 3 frames / 1500ms, got %d / %d", result.FrameCount, result.DurationMs)
	}

	f, err := os.Open(result.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("Invalid GIF: %v", err)
	}
	if g.LoopCount != 0 || g.Delay[0] != 50 {
		t.Errorf("expected loop 0 and delay 50cs, got %d / %d", g.LoopCount, g.Delay[0])
	}

	// The label is drawn near (50, 50); the untouched corner keeps the fill colour.
	r, gr, b, _ := g.Image[0].At(2, 2).RGBA()
	if r>>8 > 60 || gr>>8 < 170 || b>>8 < 170 {
		t.Errorf("expected corner to keep the fill colour, got (%d,%d,%d)", r>>8, gr>>8, b>>8)
	}
}

// TestOrchestratorWithDebugSink tests the file-backed debug sink
func TestOrchestratorWithDebugSink(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "images")
	if err := os.MkdirAll(input, 0755); err != nil {
		t.Fatal(err)
	}
	writeImages(t, input, image.Pt(40, 40), "a.png", "b.png")

	fs := osfilesystem.New()
	debugDir := filepath.Join(dir, "debug")
	sink := filesink.New(debugDir, fs, ggrenderer.New())

	cfg := orchestrator.DefaultConfig()
	cfg.InputDir = input
	cfg.FontPath = writeFont(t, dir)
	cfg.OutputPath = filepath.Join(dir, "out.gif")
	cfg.AddName = false

	if _, err := newOrchestrator(fs, sink).Run(context.Background(), cfg); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, name := range []string{"manifest.yaml", "frames/frame-0000.png", "frames/frame-0001.png"} {
		if _, err := os.Stat(filepath.Join(debugDir, name)); err != nil {
			t.Errorf("expected debug file %s: %v", name, err)
		}
	}
}

// TestOrchestratorDecodeFailure tests that a corrupt image stops the run with exit code 1
func TestOrchestratorDecodeFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "images")
	if err := os.MkdirAll(input, 0755); err != nil {
		t.Fatal(err)
	}
	writeImages(t, input, image.Pt(20, 20), "a.png")
	if err := os.WriteFile(filepath.Join(input, "b.png"), []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := orchestrator.DefaultConfig()
	cfg.InputDir = input
	cfg.FontPath = writeFont(t, dir)
	cfg.OutputPath = filepath.Join(dir, "out.gif")

	_, err := newOrchestrator(osfilesystem.New(), nullsink.New()).Run(context.Background(), cfg)
	runErr, ok := err.(*orchestrator.RunError)
	if !ok {
		t.Fatalf("expected *RunError, got %v", err)
	}
	if runErr.Kind != orchestrator.KindDecode || runErr.ExitCode() != 1 {
		t.Errorf("expected decode failure with exit 1, got %v (exit %d)", runErr.Kind, runErr.ExitCode())
	}
	if runErr.Path != filepath.Join(input, "b.png") {
		t.Errorf("expected failing path in error, got %s", runErr.Path)
	}
	if _, err := os.Stat(cfg.OutputPath); err == nil {
		t.Error("no output should be written after a decode failure")
	}
}
