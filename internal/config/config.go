package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/polarstrip"
)

// Config is the root configuration structure.
type Config struct {
	// Strategy is "points" or "rings". Default: points.
	Strategy string `yaml:"strategy"`

	// Smooth enables the Gaussian smoothing pass.
	Smooth bool `yaml:"smooth"`

	// Degenerate is "clamp" or "skip". Default: clamp.
	Degenerate string `yaml:"degenerate"`

	// Canvas configures the output image.
	Canvas CanvasConfig `yaml:"canvas"`

	// Layout configures the circle geometry.
	Layout LayoutConfig `yaml:"layout"`

	// Batch configures directory conversion.
	Batch BatchConfig `yaml:"batch"`
}

// CanvasConfig holds output image settings.
type CanvasConfig struct {
	// Size is the canvas edge length. 0 derives it from the strip width.
	Size int `yaml:"size"`

	// Background is a palette name or hex color. Empty picks the strategy
	// default.
	Background string `yaml:"background"`
}

// LayoutConfig holds circle geometry. Zero values are derived.
type LayoutConfig struct {
	// CenterX and CenterY are pointers so that 0 can be told apart from
	// "not set".
	CenterX *float64 `yaml:"center_x,omitempty"`
	CenterY *float64 `yaml:"center_y,omitempty"`

	Radius    float64 `yaml:"radius"`
	Thickness int     `yaml:"thickness"`
	Rings     int     `yaml:"rings"`
	Gap       int     `yaml:"gap"`
	Segment   float64 `yaml:"segment"`
}

// BatchConfig holds settings for the batch command.
type BatchConfig struct {
	// Ext is the input file extension, including the dot.
	Ext string `yaml:"ext"`

	// Workers bounds the number of files converted at once. 0 means one
	// worker per CPU.
	Workers int `yaml:"workers"`

	// KeepGoing continues past failed files and reports them all at the end.
	KeepGoing bool `yaml:"keep_going"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Strategy:   polarstrip.StrategyPoints.String(),
		Degenerate: polarstrip.ClampDegenerate.String(),
		Batch: BatchConfig{
			Ext: ".bmp",
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. Unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data over the defaults and validates the result. Empty
// input yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors. All problems are reported
// together.
func (c *Config) Validate() error {
	var errs []error

	if _, err := polarstrip.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, fmt.Errorf("strategy: %w", err))
	}
	if _, err := polarstrip.ParseDegeneratePolicy(c.Degenerate); err != nil {
		errs = append(errs, fmt.Errorf("degenerate: %w", err))
	}
	if c.Canvas.Size < 0 {
		errs = append(errs, fmt.Errorf("canvas.size must not be negative"))
	}
	if c.Canvas.Background != "" {
		if _, err := polarstrip.ParseColor(c.Canvas.Background); err != nil {
			errs = append(errs, fmt.Errorf("canvas.background: %w", err))
		}
	}

	l := c.Layout
	if l.Radius < 0 {
		errs = append(errs, fmt.Errorf("layout.radius must not be negative"))
	}
	if l.Thickness < 0 {
		errs = append(errs, fmt.Errorf("layout.thickness must not be negative"))
	}
	if l.Rings < 0 {
		errs = append(errs, fmt.Errorf("layout.rings must not be negative"))
	}
	if l.Gap < 0 {
		errs = append(errs, fmt.Errorf("layout.gap must not be negative"))
	}
	if l.Segment < 0 || l.Segment > 360 {
		errs = append(errs, fmt.Errorf("layout.segment must be in [0, 360]"))
	}
	if (l.CenterX == nil) != (l.CenterY == nil) {
		errs = append(errs, fmt.Errorf("layout.center_x and layout.center_y must be set together"))
	}

	if c.Batch.Workers < 0 {
		errs = append(errs, fmt.Errorf("batch.workers must not be negative"))
	}
	if !strings.HasPrefix(c.Batch.Ext, ".") {
		errs = append(errs, fmt.Errorf("batch.ext %q must start with a dot", c.Batch.Ext))
	}

	return errors.Join(errs...)
}

// Options converts the configuration into render options. The config must
// be valid.
func (c *Config) Options() ([]polarstrip.Option, error) {
	strategy, err := polarstrip.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	policy, err := polarstrip.ParseDegeneratePolicy(c.Degenerate)
	if err != nil {
		return nil, err
	}

	opts := []polarstrip.Option{
		polarstrip.WithStrategy(strategy),
		polarstrip.WithDegeneratePolicy(policy),
		polarstrip.WithSmoothing(c.Smooth),
		polarstrip.WithCanvasSize(c.Canvas.Size),
		polarstrip.WithRadius(c.Layout.Radius),
		polarstrip.WithThickness(c.Layout.Thickness),
		polarstrip.WithRings(c.Layout.Rings),
		polarstrip.WithGap(c.Layout.Gap),
		polarstrip.WithSegment(c.Layout.Segment),
	}
	if c.Canvas.Background != "" {
		bg, err := polarstrip.ParseColor(c.Canvas.Background)
		if err != nil {
			return nil, err
		}
		opts = append(opts, polarstrip.WithBackground(bg))
	}
	if c.Layout.CenterX != nil && c.Layout.CenterY != nil {
		opts = append(opts, polarstrip.WithCenter(*c.Layout.CenterX, *c.Layout.CenterY))
	}
	return opts, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
