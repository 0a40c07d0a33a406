// Package naming implements the pure, filesystem-free part of zero-padding:
// locating the first numeric run in a file name, folding run lengths into a
// padding width, and computing the padded name.
//
// A numeric run is the first maximal sequence of characters for which
// unicode.IsNumber reports true. Lengths are counted in characters, so a
// run of full-width or other non-ASCII digits pads to the same width as its
// ASCII counterpart.
package naming
