package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/backmassage/zeropad/internal/naming"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// --- ListFiles tests ---

func TestListFiles_RegularFilesOnly(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b2.txt")
	touch(t, dir, "a1.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub3"), 0o755))
	touch(t, filepath.Join(dir, "sub3"), "nested4.txt")
	require.NoError(t, os.Symlink(filepath.Join(dir, "a1.txt"), filepath.Join(dir, "link5.txt")))

	files, err := ListFiles(dir)
	require.NoError(t, err)

	want := []FileEntry{
		{Path: filepath.Join(dir, "a1.txt"), Name: "a1.txt"},
		{Path: filepath.Join(dir, "b2.txt"), Name: "b2.txt"},
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("ListFiles mismatch (-want +got):\n%s", diff)
	}
}

func TestListFiles_EmptyDir(t *testing.T) {
	files, err := ListFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListFiles_MissingDir(t *testing.T) {
	_, err := ListFiles(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrListDir), "got %v", err)
}

func TestResolveDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := ResolveDir("")
	require.NoError(t, err)
	assert.Equal(t, wd, got)

	got, err = ResolveDir("photos")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "photos"), got)
}

// --- Run tests ---

func TestRun_WidthDrivenBySet(t *testing.T) {
	dir := t.TempDir()
	touchAll(t, dir, "a1.txt", "b22.txt", "c333.txt")

	stats, rep, log := run(t, dir)

	assert.Equal(t, RunStats{Total: 3, Width: 3, Renamed: 2, Unchanged: 1}, stats)
	assert.Equal(t, []string{"a001.txt", "b022.txt", "c333.txt"}, listNames(t, dir))
	assert.Equal(t, []report{
		{1, 3, "a1.txt", "a001.txt"},
		{2, 3, "b22.txt", "b022.txt"},
	}, rep.reports)
	assert.Equal(t, []string{
		"Finding files in " + dir,
		"Found number with 3 digits, padding..",
	}, log.infos)
}

func TestRun_FirstRunOnly(t *testing.T) {
	dir := t.TempDir()
	touchAll(t, dir, "v1_build2.log", "v10_build3.log")

	_, _, _ = run(t, dir)

	assert.Equal(t, []string{"v01_build2.log", "v10_build3.log"}, listNames(t, dir))
}

func TestRun_NonNumericUntouched(t *testing.T) {
	dir := t.TempDir()
	touchAll(t, dir, "readme.txt", "file2.txt", "file10.txt")

	stats, _, _ := run(t, dir)

	assert.Equal(t, 1, stats.Renamed)
	assert.Equal(t, []string{"file02.txt", "file10.txt", "readme.txt"}, listNames(t, dir))
}

func TestRun_NoDigitsNoChanges(t *testing.T) {
	dir := t.TempDir()
	touchAll(t, dir, "readme.txt", "LICENSE", "notes.md")

	stats, rep, _ := run(t, dir)

	assert.False(t, stats.Changed())
	assert.Equal(t, 0, stats.Width)
	assert.Empty(t, rep.reports)
	assert.Equal(t, []string{"LICENSE", "notes.md", "readme.txt"}, listNames(t, dir))
}

func TestRun_Idempotent(t *testing.T) {
	dir := t.TempDir()
	touchAll(t, dir, "p1.jpg", "p9.jpg", "p10.jpg", "p100.jpg", "cover.jpg")

	first, _, _ := run(t, dir)
	require.Equal(t, 3, first.Renamed)

	second, rep, _ := run(t, dir)
	assert.Equal(t, 0, second.Renamed)
	assert.Equal(t, first.Width, second.Width)
	assert.Empty(t, rep.reports)
}

func TestRun_WidthCorrectness(t *testing.T) {
	dir := t.TempDir()
	names := []string{"x1", "x02", "y3z44", "z0005.dat", "plain"}
	touchAll(t, dir, names...)
	width := naming.ScanWidth(names)

	_, _, _ = run(t, dir)

	for _, name := range listNames(t, dir) {
		n := naming.RunLength(name)
		if n != 0 && n < width {
			t.Errorf("%q: run length %d < width %d", name, n, width)
		}
	}
	assert.Contains(t, listNames(t, dir), "z0005.dat")
}

func TestRun_FatalAbortLeavesPartialState(t *testing.T) {
	dir := t.TempDir()
	// Sorted order: a1, b01, b1, c1. Width is 2, so b1 collides with b01.
	touchAll(t, dir, "a1.txt", "b01.txt", "b1.txt", "c1.txt")

	rep := &recordingReporter{}
	stats, err := Run(dir, &recordingLogger{}, rep)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRename), "got %v", err)
	assert.True(t, errors.Is(err, ErrDestinationExists), "got %v", err)
	assert.Equal(t, 1, stats.Renamed)
	assert.Len(t, rep.reports, 2)
	assert.Equal(t, []string{"a01.txt", "b01.txt", "b1.txt", "c1.txt"}, listNames(t, dir))
}

func TestRun_ListErrorIsFatal(t *testing.T) {
	_, err := Run(filepath.Join(t.TempDir(), "gone"), &recordingLogger{}, &recordingReporter{})
	assert.True(t, errors.Is(err, ErrListDir), "got %v", err)
}

func TestRun_AuditTrail(t *testing.T) {
	dir := t.TempDir()
	touchAll(t, dir, "a1", "a10")

	_, _, log := run(t, dir)

	assert.Equal(t, []string{"scan", "renamed", "unchanged", "complete"}, log.audits)
}

func TestRun_UnchangedFilesOnlyAudited(t *testing.T) {
	dir := t.TempDir()
	touchAll(t, dir, "a1", "a10", "notes")

	stats, rep, log := run(t, dir)

	assert.Equal(t, 2, stats.Unchanged)
	assert.Equal(t, []report{{1, 3, "a1", "a01"}}, rep.reports)
	assert.Len(t, log.infos, 2, "no per-file console lines")
	assert.Equal(t, []string{"scan", "renamed", "unchanged", "unchanged", "complete"}, log.audits)
}

func TestRenameFile_RefusesExisting(t *testing.T) {
	dir := t.TempDir()
	touchAll(t, dir, "src", "dst")

	err := renameFile(filepath.Join(dir, "src"), filepath.Join(dir, "dst"))
	assert.True(t, errors.Is(err, ErrDestinationExists), "got %v", err)

	err = renameFile(filepath.Join(dir, "missing"), filepath.Join(dir, "new"))
	assert.True(t, errors.Is(err, ErrRename), "got %v", err)
	assert.False(t, errors.Is(err, ErrDestinationExists))
}

// --- Helpers ---

type report struct {
	current, total int
	from, to       string
}

type recordingReporter struct {
	reports []report
}

func (r *recordingReporter) Report(current, total int, from, to string) {
	r.reports = append(r.reports, report{current, total, filepath.Base(from), filepath.Base(to)})
}

type recordingLogger struct {
	infos  []string
	audits []string
}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Audit(msg string, _ ...interface{}) {
	l.audits = append(l.audits, msg)
}

func run(t *testing.T, dir string) (RunStats, *recordingReporter, *recordingLogger) {
	t.Helper()
	rep := &recordingReporter{}
	log := &recordingLogger{}
	stats, err := Run(dir, log, rep)
	require.NoError(t, err)
	return stats, rep, log
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func touchAll(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		touch(t, dir, n)
	}
}

func listNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// chdir is a Go 1.21-compatible stand-in for testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}
