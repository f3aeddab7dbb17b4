package batch

import "errors"

// Sentinel errors for pair-list parsing.
var (
	// ErrBadPairLine indicates a text line that is not "start target".
	ErrBadPairLine = errors.New("batch: malformed pair line")
	// ErrBadPairFile indicates an unreadable or malformed pair file.
	ErrBadPairFile = errors.New("batch: malformed pair file")
)
