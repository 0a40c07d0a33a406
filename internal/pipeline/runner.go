package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/backmassage/zeropad/internal/naming"
)

// Reporter receives one call per attempted rename, before the filesystem is
// touched. current is the 1-based position of the file in the listing.
type Reporter interface {
	Report(current, total int, from, to string)
}

// Logger is the minimal logging interface needed by Run. Per-file events go
// to Audit only, since the console line may be held by the reporter.
type Logger interface {
	Info(string, ...interface{})
	Audit(string, ...interface{})
}

// Run pads the first numeric run of every regular file in dir to the widest
// run found in the directory. It stops at the first rename error and returns
// the stats accumulated so far together with the error.
func Run(dir string, log Logger, rep Reporter) (RunStats, error) {
	var stats RunStats

	log.Info("Finding files in %s", dir)
	files, err := ListFiles(dir)
	if err != nil {
		return stats, err
	}
	stats.Total = len(files)

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	stats.Width = naming.ScanWidth(names)
	log.Info("Found number with %d digits, padding..", stats.Width)
	log.Audit("scan", "dir", dir, "files", stats.Total, "width", stats.Width)

	for i, f := range files {
		newName, changed := naming.PaddedName(f.Name, stats.Width)
		if !changed {
			stats.Unchanged++
			log.Audit("unchanged", "name", f.Name)
			continue
		}

		dst := filepath.Join(filepath.Dir(f.Path), newName)
		rep.Report(i+1, stats.Total, f.Path, dst)
		if err := renameFile(f.Path, dst); err != nil {
			log.Audit("rename failed", "from", f.Name, "to", newName, "error", err.Error())
			return stats, err
		}
		stats.Renamed++
		log.Audit("renamed", "from", f.Name, "to", newName)
	}

	log.Audit("complete", "renamed", stats.Renamed, "unchanged", stats.Unchanged)
	return stats, nil
}

// renameFile renames src to dst, refusing to replace an existing dst.
func renameFile(src, dst string) error {
	_, err := os.Lstat(dst)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s -> %s: %w", ErrRename, src, dst, ErrDestinationExists)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s -> %s: %w", ErrRename, src, dst, err)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrRename, err)
	}
	return nil
}
