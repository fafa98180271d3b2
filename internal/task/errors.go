package task

import "errors"

// Error kinds surfaced by validation and lookup. Callers discriminate
// with errors.Is; concrete messages are attached via fmt.Errorf("%w: ...").
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("task not found")
)
