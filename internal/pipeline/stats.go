package pipeline

// RunStats is the result of one pass: the padding width in effect and how
// many files were renamed or left alone.
type RunStats struct {
	Total     int // regular files listed
	Width     int // padding width (longest first numeric run)
	Renamed   int
	Unchanged int // no-op renames, including names without digits
}

// Changed reports whether any file was renamed.
func (s *RunStats) Changed() bool {
	return s.Renamed > 0
}
