package pipeline

import "errors"

// Sentinel errors returned (wrapped) by [ResolveDir], [ListFiles] and [Run].
// Callers match them with errors.Is.
var (
	ErrWorkingDir        = errors.New("cannot determine working directory")
	ErrListDir           = errors.New("cannot list directory")
	ErrRename            = errors.New("rename failed")
	ErrDestinationExists = errors.New("destination already exists")
)
