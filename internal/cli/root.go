// Package cli wires configuration, logging and display around the padding
// pipeline behind a cobra root command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/zeropad/internal/config"
	"github.com/backmassage/zeropad/internal/display"
	"github.com/backmassage/zeropad/internal/logging"
	"github.com/backmassage/zeropad/internal/pipeline"
	"github.com/backmassage/zeropad/internal/term"
)

// NewRootCommand creates the zeropad command. version is shown by --version.
func NewRootCommand(version string) *cobra.Command {
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "zeropad [directory]",
		Short: "Zero-pad numbers in file names so they sort numerically",
		Long: `zeropad renames the regular files directly inside a directory (the
working directory by default) so that the first number in every name is
zero-padded to the widest number found in the directory:

  file2.txt, file10.txt  ->  file02.txt, file10.txt

Directories and symlinks are left alone. The first rename that fails stops
the run; files renamed before it keep their new names.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := config.BindFlags(cmd.Flags(), &cfg)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := flags.Apply(args); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return runPad(&cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
	return cmd
}

// runPad resolves the target directory, sets up logging and progress
// display, and runs the pipeline once.
func runPad(cfg *config.Config, out, errOut io.Writer) error {
	dir, err := pipeline.ResolveDir(cfg.Dir)
	if err != nil {
		return err
	}

	logAbs := ""
	if cfg.LogFile != "" {
		if logAbs, err = filepath.Abs(cfg.LogFile); err != nil {
			return fmt.Errorf("resolve log file: %w", err)
		}
	}
	if err := cfg.ValidatePaths(realPath(dir), realPath(logAbs)); err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()
	log.SetOutput(out, errOut)
	log.Debug(cfg.Verbose, "Run ID: %s", log.RunID())

	progress := display.NewProgress(out, isTerminal(out))
	stats, err := pipeline.Run(dir, log, progress)
	if err != nil {
		progress.Abort()
		log.Error("%v", err)
		return &reportedError{err: err}
	}
	progress.Finish(stats.Changed())
	log.Debug(cfg.Verbose, "Renamed %d of %d files (width %d)", stats.Renamed, stats.Total, stats.Width)
	return nil
}

// realPath resolves symlinks in an absolute path. A path that does not exist
// yet (a new log file) is resolved through its parent directory; if that
// fails too the path is returned as is.
func realPath(path string) string {
	if path == "" {
		return ""
	}
	if p, err := filepath.EvalSymlinks(path); err == nil {
		return p
	}
	if p, err := filepath.EvalSymlinks(filepath.Dir(path)); err == nil {
		return filepath.Join(p, filepath.Base(path))
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f)
}

// reportedError marks an error that has already been written through the
// logger, so main does not print it a second time.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported reports whether err was already logged by the command.
func Reported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
