// Command polarstrip wraps pattern strips around circles.
//
// Usage:
//
//	polarstrip render [flags] <input> <output.png>
//	polarstrip batch  [flags] <input-dir> <output-dir>
//	polarstrip strip  <output.bmp> <colorset>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/gogpu/polarstrip"
	"github.com/gogpu/polarstrip/internal/batch"
	"github.com/gogpu/polarstrip/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// errUsage marks command line mistakes.
var errUsage = errors.New("usage")

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "render":
		return runRender(ctx, rest, stdout, stderr)
	case "batch":
		return runBatch(ctx, rest, stdout, stderr)
	case "strip":
		return runStrip(rest, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `polarstrip wraps 1×W pattern strips around circles.

Usage:
  polarstrip render [flags] <input> <output.png>
  polarstrip batch  [flags] <input-dir> <output-dir>
  polarstrip strip  <output.bmp> <colorset>

Run "polarstrip <command> --help" for the flags of a command.
`)
}

// renderFlags are shared by render and batch.
type renderFlags struct {
	configPath string
	strategy   string
	size       int
	background string
	centerX    float64
	centerY    float64
	radius     float64
	thickness  int
	rings      int
	gap        int
	segment    float64
	smooth     bool
	degenerate string
	digest     bool
	verbose    bool
}

func (f *renderFlags) add(fs *pflag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.StringVar(&f.strategy, "strategy", "points", "mapping strategy: points or rings (also point, ring, arcs)")
	fs.IntVar(&f.size, "size", 0, "canvas size in pixels (default: width × 6.28)")
	fs.StringVar(&f.background, "background", "", "background color name or hex (default: by strategy)")
	fs.Float64Var(&f.centerX, "center-x", 0, "circle center x (default: size/2)")
	fs.Float64Var(&f.centerY, "center-y", 0, "circle center y (default: size/2)")
	fs.Float64Var(&f.radius, "radius", 0, "outer radius (default: size/3)")
	fs.IntVar(&f.thickness, "thickness", 0, "band thickness in pixels (default: 10)")
	fs.IntVar(&f.rings, "rings", 0, "number of rings for the rings strategy (default: 1)")
	fs.IntVar(&f.gap, "gap", 0, "spacing between rings")
	fs.Float64Var(&f.segment, "segment", 0, "arc segment width in degrees (default: 360/width)")
	fs.BoolVar(&f.smooth, "smooth", false, "apply Gaussian smoothing")
	fs.StringVar(&f.degenerate, "degenerate", "clamp", "rings reaching the center: clamp or skip")
	fs.BoolVar(&f.digest, "digest", false, "print the BLAKE3 digest of each canvas")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
}

// loadConfig reads --config, if any, and applies every flag the user set on
// top of it. A center given by one flag takes its other coordinate from the
// config file; without one that is a usage error.
func (f *renderFlags) loadConfig(fs *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}

	set := fs.Changed
	if set("strategy") {
		cfg.Strategy = f.strategy
	}
	if set("size") {
		cfg.Canvas.Size = f.size
	}
	if set("background") {
		cfg.Canvas.Background = f.background
	}
	if set("center-x") || set("center-y") {
		x, y := f.centerX, f.centerY
		if !set("center-x") {
			if cfg.Layout.CenterX == nil {
				return nil, fmt.Errorf("%w: --center-y needs --center-x", errUsage)
			}
			x = *cfg.Layout.CenterX
		}
		if !set("center-y") {
			if cfg.Layout.CenterY == nil {
				return nil, fmt.Errorf("%w: --center-x needs --center-y", errUsage)
			}
			y = *cfg.Layout.CenterY
		}
		cfg.Layout.CenterX, cfg.Layout.CenterY = &x, &y
	}
	if set("radius") {
		cfg.Layout.Radius = f.radius
	}
	if set("thickness") {
		cfg.Layout.Thickness = f.thickness
	}
	if set("rings") {
		cfg.Layout.Rings = f.rings
	}
	if set("gap") {
		cfg.Layout.Gap = f.gap
	}
	if set("segment") {
		cfg.Layout.Segment = f.segment
	}
	if set("smooth") {
		cfg.Smooth = f.smooth
	}
	if set("degenerate") {
		cfg.Degenerate = f.degenerate
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parseFlags parses args with fs. A --help request prints the defaults and
// returns pflag.ErrHelp.
func parseFlags(fs *pflag.FlagSet, args []string, usage string, stderr io.Writer) error {
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage:\n  %s\n\nFlags:\n", usage)
		fs.PrintDefaults()
	}
	return fs.Parse(args)
}

func runRender(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var f renderFlags
	fs := pflag.NewFlagSet("render", pflag.ContinueOnError)
	f.add(fs)
	if err := parseFlags(fs, args, "polarstrip render [flags] <input> <output.png>", stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("%w: render needs <input> and <output.png>", errUsage)
	}

	log := newLogger(stderr, f.verbose)
	polarstrip.SetLogger(log)
	defer polarstrip.SetLogger(nil)

	cfg, err := f.loadConfig(fs)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	input, output := fs.Arg(0), fs.Arg(1)
	strip, err := polarstrip.LoadStrip(input)
	if err != nil {
		return err
	}
	c, stats, err := polarstrip.Render(strip, opts...)
	if err != nil {
		return err
	}
	if err := c.SavePNG(output); err != nil {
		return err
	}

	log.Info("rendered", "input", input, "output", output,
		"width", strip.Width(), "size", c.Size(), "writes", stats.Writes)
	if f.digest {
		fmt.Fprintf(stdout, "%s  %s\n", c.DigestHex(), output)
	}
	return nil
}

func runBatch(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var (
		f         renderFlags
		ext       string
		workers   int
		keepGoing bool
	)
	fs := pflag.NewFlagSet("batch", pflag.ContinueOnError)
	f.add(fs)
	fs.StringVar(&ext, "ext", ".bmp", "input file extension")
	fs.IntVarP(&workers, "workers", "j", 0, "files converted at once (default: number of CPUs)")
	fs.BoolVarP(&keepGoing, "keep-going", "k", false, "continue past failed files")
	if err := parseFlags(fs, args, "polarstrip batch [flags] <input-dir> <output-dir>", stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("%w: batch needs <input-dir> and <output-dir>", errUsage)
	}

	log := newLogger(stderr, f.verbose)
	polarstrip.SetLogger(log)
	defer polarstrip.SetLogger(nil)

	cfg, err := f.loadConfig(fs)
	if err != nil {
		return err
	}
	if fs.Changed("ext") {
		cfg.Batch.Ext = ext
	}
	if fs.Changed("workers") {
		cfg.Batch.Workers = workers
	}
	if fs.Changed("keep-going") {
		cfg.Batch.KeepGoing = keepGoing
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	inDir, outDir := fs.Arg(0), fs.Arg(1)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	jobs, err := batch.Discover(inDir, outDir, cfg.Batch.Ext)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		log.Warn("no input files", "dir", inDir, "ext", cfg.Batch.Ext)
		return nil
	}

	r := &batch.Runner{
		Workers:   cfg.Batch.Workers,
		KeepGoing: cfg.Batch.KeepGoing,
		Options:   opts,
		Logger:    log,
	}
	results, err := r.Run(ctx, jobs)
	if f.digest {
		for _, res := range results {
			if res.Err == nil {
				fmt.Fprintf(stdout, "%s  %s\n", res.Digest, res.Job.Output)
			}
		}
	}
	if err != nil {
		return err
	}
	log.Info("batch done", "files", len(results))
	return nil
}

func runStrip(args []string, stderr io.Writer) error {
	fs := pflag.NewFlagSet("strip", pflag.ContinueOnError)
	if err := parseFlags(fs, args, "polarstrip strip <output.bmp> <colorset>", stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("%w: strip needs <output.bmp> and <colorset>", errUsage)
	}

	colors, err := polarstrip.ParseColorset(fs.Arg(1))
	if err != nil {
		return err
	}
	s, err := polarstrip.NewStrip(colors...)
	if err != nil {
		return err
	}
	return polarstrip.SaveStripBMP(fs.Arg(0), s)
}
