// Package main provides the CLI entry point for gifmaker.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/gifmaker/pkg/adapters/filesink"
	"github.com/user/gifmaker/pkg/adapters/gifencoder"
	"github.com/user/gifmaker/pkg/adapters/ggrenderer"
	"github.com/user/gifmaker/pkg/adapters/logger"
	"github.com/user/gifmaker/pkg/adapters/nullsink"
	"github.com/user/gifmaker/pkg/adapters/osfilesystem"
	"github.com/user/gifmaker/pkg/config"
	"github.com/user/gifmaker/pkg/orchestrator"
	"github.com/user/gifmaker/pkg/ports"
	"github.com/user/gifmaker/pkg/stages/discover"
	"github.com/user/gifmaker/pkg/stages/encode"
	"github.com/user/gifmaker/pkg/stages/load"
	"github.com/user/gifmaker/pkg/stages/overlay"
	"github.com/user/gifmaker/pkg/summarizer"
)

var version = "dev"

// Flag categories
const (
	categoryIO      = "Input and Output"
	categoryAnim    = "Animation"
	categoryLabel   = "Label"
	categoryConfig  = "Configuration"
	categoryDebug   = "Debug"
	categoryLogging = "Logging"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		// Exit codes from the action are handled by urfave/cli; anything left is a usage error.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	defaults := config.Defaults()

	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintln(c.App.Writer, l10n.F("gifmaker version %s", c.App.Version))
	}

	return &cli.App{
		Name:    "gifmaker",
		Usage:   l10n.T("Create an animated GIF from a directory of images"),
		Version: version,
		Description: l10n.T("gifmaker turns every PNG, JPEG, GIF and BMP file in a directory into one looping animated GIF, " +
			"optionally labelling each frame with its file name."),
		HideHelpCommand: true,
		Flags: []cli.Flag{
			// Input and Output
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Value:    defaults.Input,
				Usage:    l10n.T("Directory containing the source images"),
				Category: l10n.T(categoryIO),
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Value:    defaults.Output,
				Usage:    l10n.T("Output GIF file path (.gif is added when missing)"),
				Category: l10n.T(categoryIO),
			},

			// Animation
			&cli.IntFlag{
				Name:     "loop",
				Aliases:  []string{"l"},
				Value:    defaults.Loop,
				Usage:    l10n.T("Loop count written to the GIF (0 = loop forever)"),
				Category: l10n.T(categoryAnim),
			},
			&cli.IntFlag{
				Name:     "delay",
				Aliases:  []string{"d"},
				Value:    defaults.Delay,
				Usage:    l10n.T("Display time of each frame in milliseconds"),
				Category: l10n.T(categoryAnim),
			},

			// Label
			&cli.StringFlag{
				Name:     "add_name",
				Aliases:  []string{"n"},
				Value:    strconv.FormatBool(defaults.AddName),
				Usage:    l10n.T("Draw each file's base name on its frame (true or false)"),
				Category: l10n.T(categoryLabel),
			},
			&cli.StringFlag{
				Name:     "font_path",
				Aliases:  []string{"f"},
				Value:    defaults.FontPath,
				Usage:    l10n.T("TrueType font used for labels"),
				Category: l10n.T(categoryLabel),
			},
			&cli.IntFlag{
				Name:     "font_size",
				Aliases:  []string{"s"},
				Value:    defaults.FontSize,
				Usage:    l10n.T("Label font size in points"),
				Category: l10n.T(categoryLabel),
			},

			// Configuration
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    l10n.T("YAML configuration file (flags override its values)"),
				Category: l10n.T(categoryConfig),
			},
			&cli.StringFlag{
				Name:     "summary",
				Usage:    l10n.T("Write a Markdown run summary to this path"),
				Category: l10n.T(categoryConfig),
			},

			// Debug
			&cli.BoolFlag{
				Name:     "debug",
				Usage:    l10n.T("Save prepared frames and a run manifest"),
				Category: l10n.T(categoryDebug),
			},
			&cli.StringFlag{
				Name:     "debug-dir",
				Value:    defaults.DebugDir,
				Usage:    l10n.T("Directory for debug output"),
				Category: l10n.T(categoryDebug),
			},

			// Logging
			&cli.StringFlag{
				Name:     "log-level",
				Value:    defaults.LogLevel,
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				Category: l10n.T(categoryLogging),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"q"},
				Usage:    l10n.T("Suppress all log output"),
				Category: l10n.T(categoryLogging),
			},
		},
		Action: runAction,
	}
}

// runAction executes a single gifmaker run.
func runAction(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	// Create logger
	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	encoder := gifencoder.New()

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return cli.Exit(l10n.F("Failed to create debug directory: %s", err), 1)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	// Create orchestrator
	orch := orchestrator.New(
		discover.NewStage(fs, log),
		load.NewStage(fs, renderer, log),
		overlay.NewStage(renderer, log),
		encode.NewStage(encoder, fs, log),
		renderer,
		sink,
		log,
	)

	// Run pipeline; the orchestrator has already logged the failure.
	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig())
	if err != nil {
		var runErr *orchestrator.RunError
		if errors.As(err, &runErr) {
			return cli.Exit("", runErr.ExitCode())
		}
		return cli.Exit("", 1)
	}

	if cfg.Summary != "" {
		if err := writeSummary(cfg, result, fs); err != nil {
			log.Warn("Failed to write summary: %s", err)
		} else {
			log.Info("Summary saved to %s", cfg.Summary)
		}
	}

	return nil
}

// buildConfig layers defaults, the optional YAML file and explicitly set flags.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("input") {
		cfg.Input = c.String("input")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("loop") {
		cfg.Loop = c.Int("loop")
	}
	if c.IsSet("delay") {
		cfg.Delay = c.Int("delay")
	}
	if c.IsSet("add_name") {
		v, err := strconv.ParseBool(c.String("add_name"))
		if err != nil {
			return cfg, errors.New(l10n.F("Invalid value %q for --add_name: use true or false", c.String("add_name")))
		}
		cfg.AddName = v
	}
	if c.IsSet("font_path") {
		cfg.FontPath = c.String("font_path")
	}
	if c.IsSet("font_size") {
		cfg.FontSize = c.Int("font_size")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("summary") {
		cfg.Summary = c.String("summary")
	}

	return cfg, cfg.Validate()
}

// writeSummary writes the Markdown run summary.
func writeSummary(cfg config.Config, result orchestrator.RunResult, fs ports.FileSystem) error {
	summary := summarizer.NewBuilder().
		WithInput(result.InputDir, result.Frames).
		WithSettings(summarizer.Settings{
			Loop:     cfg.Loop,
			DelayMs:  cfg.Delay,
			AddName:  cfg.AddName,
			FontPath: cfg.FontPath,
			FontSize: float64(cfg.FontSize),
		}).
		WithOutput(summarizer.OutputInfo{
			Path:       result.OutputPath,
			Renamed:    result.Renamed,
			FrameCount: result.FrameCount,
			DurationMs: result.DurationMs,
			FileSize:   result.FileSize,
		}).
		Build()

	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(func(key string) string { return l10n.T(key) }),
		summarizer.WithVersion(version),
	)
	return summarizer.NewWriter(formatter, fs).Write(cfg.Summary, summary)
}
