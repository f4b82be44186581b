package domain

import "errors"

// Outcome kinds for auth flows. The delivery layer translates these to
// the fixed wire messages; the kinds themselves never leave the process,
// so logs and metrics can distinguish an upstream fault from a bad
// credential even though the wire envelope cannot.
var (
	ErrInvalidInput    = errors.New("missing or empty required field")
	ErrNotFound        = errors.New("record not found")
	ErrConflict        = errors.New("record already exists")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrUpstream        = errors.New("upstream store or codec failure")
)
