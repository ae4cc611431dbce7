package pipeline

import "errors"

var (
	// ErrTransportUnavailable is returned when no transport session can
	// be opened. This is a fatal precondition: it aborts the run before
	// any recipient is processed.
	ErrTransportUnavailable = errors.New("pipeline: could not open transport session")

	// ErrAttachment wraps a per-recipient attachment generation failure.
	// It downgrades to an error outcome for that recipient only.
	ErrAttachment = errors.New("pipeline: attachment generation failed")
)
