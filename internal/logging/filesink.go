package logging

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// lockedFile is an append-only log file whose writes are serialized across
// processes by an advisory lock on the log file itself, so no lock file is
// left behind.
type lockedFile struct {
	f    *os.File
	lock *flock.Flock
	path string
}

func openLockedFile(path string) (*lockedFile, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return &lockedFile{
		f:    f,
		lock: flock.New(path),
		path: path,
	}, nil
}

// Write appends p while holding the lock. Each zap entry is a single Write,
// so entries from concurrent runs never interleave.
func (w *lockedFile) Write(p []byte) (int, error) {
	if err := w.lock.Lock(); err != nil {
		return 0, fmt.Errorf("failed to acquire lock on %s: %w", w.path, err)
	}
	defer w.lock.Unlock()
	return w.f.Write(p)
}

func (w *lockedFile) Sync() error {
	return w.f.Sync()
}

func (w *lockedFile) Close() error {
	_ = w.lock.Close()
	return w.f.Close()
}
