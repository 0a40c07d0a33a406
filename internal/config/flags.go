package config

// This file implements CLI flag registration on a pflag.FlagSet (owned by the
// cobra root command). Negated flags (--no-color) are applied after parsing so
// Config defaults hold unless set.

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags carries the parsed flag values that are applied to Config after
// parsing rather than bound directly.
type Flags struct {
	cfg        *Config
	forceColor bool
	noColor    bool
}

// BindFlags registers all zeropad flags on fs, writing directly into cfg where
// possible. Call [Flags.Apply] once parsing has finished.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	f := &Flags{cfg: cfg}
	defineDisplayFlags(fs, cfg, f)
	return f
}

// defineDisplayFlags registers --color, --no-color, --color-mode, verbose and --log.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, f *Flags) {
	fs.BoolVar(&f.forceColor, "color", false, "Force colored output")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color-mode", "Color mode: auto | always | never")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append a JSON log of the run to this file")
}

// Apply copies negated flag values into the config and sets Dir from the
// optional positional argument.
func (f *Flags) Apply(args []string) error {
	if f.noColor {
		f.cfg.ColorMode = ColorNever
	} else if f.forceColor {
		f.cfg.ColorMode = ColorAlways
	}

	switch len(args) {
	case 0:
	case 1:
		if args[0] == "" {
			return errors.New("directory argument must not be empty")
		}
		f.cfg.Dir = NormalizeDirArg(args[0])
	default:
		return fmt.Errorf("accepts at most one directory, got %d", len(args))
	}
	return nil
}

// colorModeValue adapts ColorMode to pflag.Value.
type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "mode" }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
