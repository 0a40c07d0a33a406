package naming

import (
	"unicode"
	"unicode/utf8"
)

// NumericRun returns the first maximal run of numeric characters in name, or
// "" when name has none. Names that are not valid UTF-8 have no run.
func NumericRun(name string) string {
	if !utf8.ValidString(name) {
		return ""
	}
	start := -1
	for i, r := range name {
		if unicode.IsNumber(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return name[start:i]
		}
	}
	if start < 0 {
		return ""
	}
	return name[start:]
}

// RunLength returns the length in characters of the first numeric run in name.
func RunLength(name string) int {
	return utf8.RuneCountInString(NumericRun(name))
}

// ScanWidth returns the padding width for a set of names: the longest first
// numeric run across all of them. Names without digits contribute 0.
func ScanWidth(names []string) int {
	width := 0
	for _, name := range names {
		width = max(width, RunLength(name))
	}
	return width
}
