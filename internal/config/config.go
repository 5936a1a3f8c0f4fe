package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/term"

	"github.com/jacoelho/rpncalc/internal/exit"
	"github.com/jacoelho/rpncalc/internal/output"
)

const (
	DefaultPrompt    = "> "
	DefaultPrecision = -1
	MaxPrecision     = 17
)

// Version is overridden at build time via -ldflags.
var Version = "0.1.0-dev"

var (
	ErrNoArguments      = errors.New("no arguments provided")
	ErrInvalidColorMode = errors.New("color must be one of auto, on or off")
	ErrInvalidPrecision = fmt.Errorf("precision must be between -1 and %d", MaxPrecision)
)

type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

// Config represents the complete configuration for the rpncalc tool.
type Config struct {
	// Expression is the line given as positional arguments. Empty with FromArgs false
	// means the line is read from stdin.
	Expression string
	FromArgs   bool

	Format     output.OutputFormat
	Precision  int
	Color      ColorMode
	Debug      bool
	Prompt     string
	ConfigFile string
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return fmt.Errorf("%w, got: %s", ErrInvalidColorMode, c.Color)
	}

	if c.Precision < -1 || c.Precision > MaxPrecision {
		return fmt.Errorf("%w, got: %d", ErrInvalidPrecision, c.Precision)
	}

	return nil
}

// UseColor reports whether output written to f should be coloured.
func (c *Config) UseColor(f *os.File) bool {
	switch c.Color {
	case ColorOn:
		return true
	case ColorAuto:
		return term.IsTerminal(int(f.Fd()))
	default:
		return false
	}
}

// OutputOptions returns the rendering options for a report written to errOut.
func (c *Config) OutputOptions(errOut *os.File) output.Options {
	return output.Options{
		Format:    c.Format,
		Precision: c.Precision,
		Color:     c.UseColor(errOut),
		Debug:     c.Debug,
	}
}

func defaults() *Config {
	return &Config{
		Format:    output.FormatText,
		Precision: DefaultPrecision,
		Color:     ColorAuto,
		Prompt:    DefaultPrompt,
	}
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Usagef("Error: %v\n\n%s\n", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage output since we handle it ourselves
	fs.Usage = func() {}
	// Suppress error output since we handle it ourselves
	fs.SetOutput(io.Discard)

	var (
		format     = fs.String("format", output.FormatText.String(), "Output format: text, json or yaml")
		precision  = fs.Int("precision", DefaultPrecision, "Number of decimals in the result (-1 for shortest)")
		color      = fs.String("color", string(ColorAuto), "Colorize errors: auto, on or off")
		debug      = fs.Bool("debug", false, "Print the tokens and postfix form before the result")
		prompt     = fs.String("prompt", DefaultPrompt, "Prompt shown when reading from a terminal")
		configFile = fs.String("config", "", "Path to a YAML file with default settings")
		version    bool
	)
	fs.BoolVar(&version, "version", false, "Show version information")
	fs.BoolVar(&version, "v", false, "Show version information")

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage() + "\n")
		}
		return nil, exit.Usagef("Error: failed to parse arguments: %v\n\n%s\n", err, Usage())
	}

	if version {
		return nil, exit.Success(fmt.Sprintf("rpncalc %s\n", Version))
	}

	cfg := defaults()

	// Flags take precedence over the configuration file
	if *configFile != "" {
		if err := loadConfigFile(*configFile, cfg); err != nil {
			return nil, exit.Errorf("Error: failed to load config file: %v\n", err)
		}
		cfg.ConfigFile = *configFile
	}

	var formatErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format, formatErr = output.ParseFormat(*format)
		case "precision":
			cfg.Precision = *precision
		case "color":
			cfg.Color = ColorMode(strings.ToLower(*color))
		case "debug":
			cfg.Debug = *debug
		case "prompt":
			cfg.Prompt = *prompt
		}
	})
	if formatErr != nil {
		return nil, exit.Usagef("Error: %v\n\n%s\n", formatErr, Usage())
	}

	if rest := fs.Args(); len(rest) > 0 {
		cfg.Expression = strings.Join(rest, " ")
		cfg.FromArgs = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, exit.Usagef("Error: %v\n\n%s\n", err, Usage())
	}

	return cfg, nil
}

type fileConfig struct {
	Format    *string `yaml:"format"`
	Precision *int    `yaml:"precision"`
	Color     *string `yaml:"color"`
	Debug     *bool   `yaml:"debug"`
	Prompt    *string `yaml:"prompt"`
}

// loadConfigFile applies the settings present in a YAML file on top of cfg.
// Unknown keys are rejected.
func loadConfigFile(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var fc fileConfig
	if err := yaml.UnmarshalWithOptions(data, &fc, yaml.DisallowUnknownField()); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	if fc.Format != nil {
		format, err := output.ParseFormat(*fc.Format)
		if err != nil {
			return err
		}
		cfg.Format = format
	}
	if fc.Precision != nil {
		cfg.Precision = *fc.Precision
	}
	if fc.Color != nil {
		cfg.Color = ColorMode(strings.ToLower(*fc.Color))
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
	if fc.Prompt != nil {
		cfg.Prompt = *fc.Prompt
	}

	return nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `rpncalc - evaluate an arithmetic expression

Usage: rpncalc [options] [expression]

The expression uses numbers, spaces and the operators + - * /.
Multiplication and division bind tighter than addition and subtraction.
Without an expression argument a single line is read from stdin.

Options:
  --format FORMAT         Output format: text, json or yaml (default: text)
  --precision N           Number of decimals in the result, -1 for shortest (default: -1)
  --color MODE            Colorize errors: auto, on or off (default: auto)
  --debug                 Print the tokens and postfix form before the result
  --prompt STRING         Prompt shown when reading from a terminal (default: "> ")
  --config FILE           Path to a YAML file with default settings
  -h, --help              Show this help message
  -v, --version           Show version information

Examples:
  rpncalc "4 + 2 * 3"                    # = 10
  echo "1 / 2" | rpncalc                 # = 0.5
  rpncalc --precision 2 "2 / 3"          # = 0.67
  rpncalc --format json --debug "8 / 2 / 2"`
}
