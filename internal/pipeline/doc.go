// Package pipeline runs one zero-padding pass over a directory:
//
//	list regular files → scan padding width → rename, in that order.
//
// The width is computed from the complete listing before the first rename,
// so renames never influence it. Files are processed sequentially and the
// first failing rename aborts the run; renames already applied stay applied.
package pipeline
