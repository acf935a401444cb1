// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of environment variables that override settings,
	// ex: WAMBAM_PLOT_DPI=150
	EnvPrefix = "wambam"

	// DefaultFilename is the name of the image written into the output directory
	DefaultFilename = "alignment_summary.png"
)

// PlotConfig is settings for rendering the alignment summary image
type PlotConfig struct {
	// the title written above the plot
	Title string `mapstructure:"title"`

	// label of the x-axis (positions)
	XLabel string `mapstructure:"x-label"`

	// label of the y-axis (chromosomes)
	YLabel string `mapstructure:"y-label"`

	// label next to the identity colorbar
	ColorbarLabel string `mapstructure:"colorbar-label"`

	// figure width in inches
	Width float64 `mapstructure:"width"`

	// figure height in inches
	Height float64 `mapstructure:"height"`

	// dots per inch of the written image
	DPI float64 `mapstructure:"dpi"`

	// width of each alignment segment in points (1/72 inch)
	LineWidth float64 `mapstructure:"line-width"`

	// path to a TrueType font. go-chart's default is used if empty
	Font string `mapstructure:"font"`

	// name of the image within the output directory
	Filename string `mapstructure:"filename"`
}

// Pixels returns the image size in pixels at the configured DPI.
func (p PlotConfig) Pixels() (width, height int) {
	return int(p.Width * p.DPI), int(p.Height * p.DPI)
}

// StrokePixels converts the segment width from points to pixels.
func (p PlotConfig) StrokePixels() float64 {
	return p.LineWidth * p.DPI / 72
}

// Config is the root-level settings struct and is a mix
// of settings available in wambam.yaml and those
// available from the command line
type Config struct {
	// path to the alignment summary TSV
	AlignmentSummary string `mapstructure:"alignment_summary"`

	// directory the image is written to
	OutputDir string `mapstructure:"output_dir"`

	// path to the BAM/SAM for 'wambam identity'
	InputBAM string `mapstructure:"input_bam"`

	// whether to log per-alignment detail to stderr
	Verbose bool `mapstructure:"verbose"`

	// Plot rendering settings
	Plot PlotConfig `mapstructure:"plot"`
}

// SetDefaults registers the default settings with viper.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("plot.title", "BED File Positions by Chromosome and Identity")
	v.SetDefault("plot.x-label", "Position")
	v.SetDefault("plot.y-label", "Chromosome")
	v.SetDefault("plot.colorbar-label", "Identity")
	v.SetDefault("plot.width", 16.0)
	v.SetDefault("plot.height", 8.0)
	v.SetDefault("plot.dpi", 300.0)
	v.SetDefault("plot.line-width", 10.0)
	v.SetDefault("plot.font", "")
	v.SetDefault("plot.filename", DefaultFilename)
}

// Setup points viper at the settings file and the environment. If cfgFile is empty,
// wambam.yaml is searched for in the working directory and in ~/.wambam.
// A missing default settings file is not an error.
func Setup(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read settings file %s: %v", cfgFile, err)
		}
		return nil
	}

	v.SetConfigName("wambam")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".wambam"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read settings file: %v", err)
		}
	}
	return nil
}

// New returns a new Config struct populated by the global
// Viper settings (either from a settings file)
// and/or command line arguments
func New() (*Config, error) {
	return FromViper(viper.GetViper())
}

// FromViper unmarshals the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	if c.Plot.DPI <= 0 {
		return nil, fmt.Errorf("plot.dpi must be positive, got %v", c.Plot.DPI)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return nil, fmt.Errorf("plot size must be positive, got %vx%v inches", c.Plot.Width, c.Plot.Height)
	}

	return &c, nil
}
