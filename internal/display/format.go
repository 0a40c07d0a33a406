// Package display renders rename progress and the final status line.
package display

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatRename returns the progress message for one rename: the quoted base
// names joined by an arrow, prefixed with the position in the listing.
func FormatRename(current, total int, from, to string) string {
	return fmt.Sprintf("[%d/%d] %q -> %q", current, total, filepath.Base(from), filepath.Base(to))
}

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// PadLeft right-aligns s in a field of width columns. s is returned
// unchanged when it is already at least that wide.
func PadLeft(s string, width int) string {
	w := Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

// PadRight left-aligns s in a field of width columns.
func PadRight(s string, width int) string {
	w := Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
