package pipeline

import "errors"

// Errors are fatal for the file being processed; there are no retries
// anywhere since every operation is local and single-attempt.
var (
	// ErrLoad covers missing, unreadable, or unsupported input images.
	ErrLoad = errors.New("image load failed")
	// ErrWrite covers output encoding and I/O failures.
	ErrWrite = errors.New("image write failed")
)
