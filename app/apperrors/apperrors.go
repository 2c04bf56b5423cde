package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound lets callers classify lookup misses with errors.Is without
// caring which resource was missing.
var ErrNotFound = errors.New("not found")

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NotFoundf builds a NotFoundError whose message names the identifier that
// was searched, e.g. `Product with slug classic-white-tee not found`.
func NotFoundf(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}
