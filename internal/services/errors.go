package services

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to handlers. Anything wrapping ErrStorage is a
// persistence failure the current operation cannot recover from.
var (
	ErrNotFound     = errors.New("not_found")
	ErrInvalidScore = errors.New("invalid_score")
	ErrStorage      = errors.New("storage_error")
)

func wrapStorage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
