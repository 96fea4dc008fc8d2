package errors

import "fmt"

// Input errors, detected locally before any network activity.
var (
	ErrEmptyInput        = fmt.Errorf("empty input")
	ErrNoFileSelected    = fmt.Errorf("no file selected")
	ErrUnsupportedFormat = fmt.Errorf("unsupported file format")
	ErrFileTooLarge      = fmt.Errorf("file too large")
	ErrInvalidRequest    = fmt.Errorf("request must carry exactly one payload")
)

// View and submission errors.
var (
	ErrUnknownTab         = fmt.Errorf("unknown tab")
	ErrSubmissionInFlight = fmt.Errorf("submission already in flight")
	ErrLocalRead          = fmt.Errorf("local file read failure")
)

// Remote errors.
var (
	ErrTransport = fmt.Errorf("transport failure")
	ErrService   = fmt.Errorf("classification service error")
	ErrClipboard = fmt.Errorf("clipboard unavailable")
)
