package services

import "errors"

// ErrCanvasNotConfigured signals that the existing-document source was
// requested with no canvas selected in the requester's settings. It is a
// needs-configuration condition, not a failure: callers should prompt the
// user toward Settings instead of rendering an error.
var ErrCanvasNotConfigured = errors.New("no canvas selected in settings")

// ValidationError is a user-correctable problem with a brief request,
// reported back as a chat message rather than logged as a failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// FieldError is a validation failure tied to a specific modal input block,
// so it can be rendered next to the offending field.
type FieldError struct {
	BlockID string
	Message string
}

func (e *FieldError) Error() string { return e.Message }
