// Package config holds runtime configuration: defaults, CLI flag binding, and
// validation.
package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by the flags registered with [BindFlags] before being passed
// (by pointer) to packages that need it.
type Config struct {
	// Target directory (optional positional arg). Empty means the process
	// working directory.
	Dir string

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config that targets the working directory with
// automatic color detection and no log file.
func DefaultConfig() Config {
	return Config{
		Dir:       "",
		Verbose:   false,
		ColorMode: ColorAuto,
		LogFile:   "",
	}
}

// NormalizeDirArg strips trailing slashes from a directory path. A path made
// only of slashes is the filesystem root; it never collapses to "", which
// would mean the working directory.
func NormalizeDirArg(path string) string {
	if t := strings.TrimRight(path, "/"); t != "" || path == "" {
		return t
	}
	return "/"
}

// Validate checks that enum fields hold valid values.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if strings.TrimSpace(c.LogFile) != c.LogFile {
		return errors.New("log file path must not have leading or trailing spaces")
	}
	return nil
}

// ValidatePaths ensures the resolved log file does not live directly inside
// the resolved target directory; the lister would otherwise pick it up and
// rename it mid-run. Both arguments must be absolute paths. An empty logAbs
// (no log file) is always valid.
func (c *Config) ValidatePaths(dirAbs, logAbs string) error {
	if logAbs == "" {
		return nil
	}
	if filepath.Clean(filepath.Dir(logAbs)) == filepath.Clean(dirAbs) {
		return errors.New("log file must not be inside the target directory")
	}
	return nil
}
