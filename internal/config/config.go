// Package config resolves settings from defaults, an optional YAML file,
// SPIRAL_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/olivier-w/spiralmatrix/internal/grid"
	"github.com/olivier-w/spiralmatrix/internal/render"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSize     = 13
	DefaultInterval = 500 * time.Millisecond
	DefaultFPS      = 30
	DefaultSwatches = 54

	// Margins in surface pixels. The terminal surface packs two pixels per
	// row, so its margin is much smaller than the window's.
	DefaultTerminalMargin = 2
	DefaultWindowMargin   = 15

	MinInterval = 50 * time.Millisecond
	MaxInterval = 10 * time.Second
)

// Config holds every runtime setting.
type Config struct {
	Size     int           `mapstructure:"size"`
	Interval time.Duration `mapstructure:"interval"`
	FPS      int           `mapstructure:"fps"`
	Margin   int           `mapstructure:"margin"` // -1 picks the host default
	Images   string        `mapstructure:"images"`
	Swatches int           `mapstructure:"swatches"`
	Window   bool          `mapstructure:"window"`
	Easing   string        `mapstructure:"easing"`
	Grid     bool          `mapstructure:"grid"`
	Color    string        `mapstructure:"color"`
	Debug    bool          `mapstructure:"debug"`
	LogFile  string        `mapstructure:"log-file"`

	ConfigFile  string `mapstructure:"-"`
	PrintConfig bool   `mapstructure:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Size:     DefaultSize,
		Interval: DefaultInterval,
		FPS:      DefaultFPS,
		Margin:   -1,
		Swatches: DefaultSwatches,
		Easing:   grid.Swing.String(),
		Color:    "auto",
		LogFile:  "spiralmatrix.log",
	}
}

// NewFlagSet declares every flag with its default.
func NewFlagSet() *pflag.FlagSet {
	d := Default()
	fs := pflag.NewFlagSet("spiralmatrix", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.IntP("size", "s", d.Size, "grid side length (rounded up to odd)")
	fs.DurationP("interval", "i", d.Interval, "time between rotations")
	fs.Int("fps", d.FPS, "render frames per second")
	fs.Int("margin", d.Margin, "margin around the grid in surface pixels (-1 = host default)")
	fs.String("images", d.Images, "directory of images (default: generated swatches)")
	fs.Int("swatches", d.Swatches, "number of generated swatches when no image directory is given")
	fs.BoolP("window", "w", d.Window, "open a desktop window instead of drawing in the terminal")
	fs.String("easing", d.Easing, "tween easing: linear or swing")
	fs.BoolP("grid", "g", d.Grid, "draw grid lines")
	fs.String("color", d.Color, "terminal colors: auto, true, 256, 16 or off")
	fs.Bool("debug", d.Debug, "write a debug log")
	fs.String("log-file", d.LogFile, "debug log path")
	fs.StringP("config", "c", "", "YAML config file")
	fs.Bool("print-config", false, "print the resolved config as YAML and exit")
	return fs
}

// Load parses args and merges every config source. A trailing positional
// argument is taken as the image directory.
func Load(args []string) (Config, error) {
	fs := NewFlagSet()
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	vp := viper.New()
	vp.SetEnvPrefix("SPIRAL")
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vp.AutomaticEnv()

	cfgFile, _ := fs.GetString("config")
	if cfgFile != "" {
		vp.SetConfigFile(cfgFile)
		vp.SetConfigType("yaml")
		vp.AddConfigPath(filepath.Dir(cfgFile))
		if err := vp.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
	}

	if err := vp.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("binding flags: %w", err)
	}

	cfg := Default()
	if err := vp.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigFile = cfgFile
	cfg.PrintConfig, _ = fs.GetBool("print-config")
	if fs.NArg() > 0 {
		cfg.Images = fs.Arg(0)
	}

	if err := cfg.Normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize clamps numeric settings into range and rejects unknown names.
func (c *Config) Normalize() error {
	c.Size = grid.NormalizeSize(c.Size)
	c.Interval = ClampInterval(c.Interval)
	if c.FPS < 1 {
		c.FPS = 1
	}
	if c.FPS > 120 {
		c.FPS = 120
	}
	if c.Swatches < 1 {
		c.Swatches = 1
	}

	switch strings.ToLower(c.Easing) {
	case "linear", "swing", "ease":
		c.Easing = grid.ParseEasing(strings.ToLower(c.Easing)).String()
	default:
		return fmt.Errorf("unknown easing %q (want linear or swing)", c.Easing)
	}

	switch strings.ToLower(c.Color) {
	case "auto", "true", "truecolor", "24", "256", "8", "16", "4", "off", "none", "ascii":
		c.Color = strings.ToLower(c.Color)
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	return nil
}

// ClampInterval keeps a rotation interval within [MinInterval, MaxInterval].
func ClampInterval(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	if d > MaxInterval {
		return MaxInterval
	}
	return d
}

// EasingMode returns the configured easing.
func (c Config) EasingMode() grid.Easing {
	return grid.ParseEasing(c.Easing)
}

// ColorMode returns the configured terminal color mode.
func (c Config) ColorMode() render.ColorMode {
	return render.ParseColorMode(c.Color)
}

// TerminalMargin returns the margin for the terminal host.
func (c Config) TerminalMargin() int {
	if c.Margin < 0 {
		return DefaultTerminalMargin
	}
	return c.Margin
}

// WindowMargin returns the margin for the window host.
func (c Config) WindowMargin() int {
	if c.Margin < 0 {
		return DefaultWindowMargin
	}
	return c.Margin
}

type fileView struct {
	Size     int    `yaml:"size"`
	Interval string `yaml:"interval"`
	FPS      int    `yaml:"fps"`
	Margin   int    `yaml:"margin"`
	Images   string `yaml:"images,omitempty"`
	Swatches int    `yaml:"swatches"`
	Window   bool   `yaml:"window"`
	Easing   string `yaml:"easing"`
	Grid     bool   `yaml:"grid"`
	Color    string `yaml:"color"`
	Debug    bool   `yaml:"debug"`
	LogFile  string `yaml:"log-file"`
}

// YAML renders the config in the format Load reads back.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(fileView{
		Size:     c.Size,
		Interval: c.Interval.String(),
		FPS:      c.FPS,
		Margin:   c.Margin,
		Images:   c.Images,
		Swatches: c.Swatches,
		Window:   c.Window,
		Easing:   c.Easing,
		Grid:     c.Grid,
		Color:    c.Color,
		Debug:    c.Debug,
		LogFile:  c.LogFile,
	})
}
