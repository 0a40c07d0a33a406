package naming

import (
	"strings"
	"unicode/utf8"
)

// PadNumber left-pads num with '0' to width characters. num is returned
// unchanged when it is already at least width characters long.
func PadNumber(num string, width int) string {
	n := utf8.RuneCountInString(num)
	if n >= width {
		return num
	}
	return strings.Repeat("0", width-n) + num
}

// PaddedName returns name with its first numeric run zero-padded to width,
// and whether the result differs from name.
//
// The padded numeral replaces the first textual occurrence of the run. Every
// character before the run is non-numeric, so that occurrence is the run
// itself; a later run with the same digits ("1_1.txt") is left alone.
func PaddedName(name string, width int) (string, bool) {
	num := NumericRun(name)
	if num == "" {
		return name, false
	}
	padded := PadNumber(num, width)
	newName := strings.Replace(name, num, padded, 1)
	return newName, newName != name
}
