package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	"github.com/osuushi/voronoi"
	"github.com/osuushi/voronoi/draw"
	"github.com/osuushi/voronoi/textformat"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Compute the Voronoi diagram of a triangulation file, and print it to stdout
// as JSON. The input holds a "# Points" section of "x y" lines and a
// "# Triangles" section of "a b c" index lines. A "# Neighbors" section is
// allowed and ignored.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fail := failer(stderr)

	app := kingpin.New("voronoi", "Compute the Voronoi diagram dual to a triangulation.")
	app.ErrorWriter(stderr)
	app.UsageWriter(stderr)
	app.Terminate(nil)

	var (
		file       = app.Arg("file", "Triangulation file.").Required().String()
		configPath = app.Flag("config", "YAML file with default settings.").String()
		strict     = app.Flag("strict", "Fail on degenerate triangles and malformed topology.").Bool()
		verbose    = app.Flag("verbose", "Log debug events to stderr.").Short('v').Bool()
		png        = app.Flag("png", "Render the diagram to a PNG file.").String()
		scale      = app.Flag("scale", "Pixels per unit when rendering.").Float64()
		labels     = app.Flag("labels", "Label Voronoi vertices in the rendering.").Bool()
		preview    = app.Flag("preview", "Print the rendering to the terminal (iTerm only).").Bool()
	)

	if _, err := app.Parse(args); err != nil {
		return fail(err)
	}

	var config Config
	if *configPath != "" {
		var err error
		if config, err = loadConfig(*configPath); err != nil {
			return fail(err)
		}
	}
	config.Strict = config.Strict || *strict
	config.Verbose = config.Verbose || *verbose
	config.Render.Labels = config.Render.Labels || *labels
	config.Render.Preview = config.Render.Preview || *preview
	if *png != "" {
		config.Render.Path = *png
	}
	if *scale > 0 {
		config.Render.Scale = *scale
	}

	logger := zap.NewNop()
	if config.Verbose {
		logger = newLogger(stderr)
	}
	defer logger.Sync() //nolint:errcheck

	triangulation, err := textformat.ReadFile(*file)
	if err != nil {
		return fail(err)
	}
	logger.Debug("read triangulation",
		zap.String("file", *file),
		zap.Int("points", len(triangulation.Points)),
		zap.Int("triangles", len(triangulation.Triangles)),
	)

	diagram, err := voronoi.Compute(triangulation.Points, triangulation.Triangles, voronoi.Options{
		Strict: config.Strict,
		Logger: logger,
	})
	if err != nil {
		return fail(err)
	}

	if err := textformat.Write(stdout, diagram); err != nil {
		return fail(err)
	}

	if config.Render.Path != "" {
		c := draw.Render(triangulation.Points, diagram, draw.Options{
			Scale:  config.Render.Scale,
			Labels: config.Render.Labels,
		})
		if err := draw.SavePNG(c, config.Render.Path); err != nil {
			return fail(err)
		}
		logger.Debug("saved rendering", zap.String("path", config.Render.Path))
		if config.Render.Preview {
			draw.Preview(config.Render.Path, stderr)
		}
	}
	return 0
}

// Returns a function that prints a one line diagnostic and returns the failure
// exit code. The line is red only when stderr is a terminal.
func failer(stderr io.Writer) func(error) int {
	colors := aurora.NewAurora(isTerminal(stderr))
	return func(err error) int {
		fmt.Fprintln(stderr, colors.Red(fmt.Sprintf("voronoi: %v", err)))
		return 1
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd()))
}

func newLogger(out io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(out),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
