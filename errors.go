package rankgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an identifier is not registered.
	ErrNotFound = errors.New("identifier not found")

	// ErrDuplicateID is returned when registering an identifier that is
	// already registered.
	ErrDuplicateID = errors.New("identifier already registered")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidCategoryCount is returned when a Registry is created with
	// a non-positive number of categories.
	ErrInvalidCategoryCount = errors.New("category count must be positive")
)

// ErrUnknownCategory indicates a category outside the configured range.
type ErrUnknownCategory struct {
	Category int
}

func (e *ErrUnknownCategory) Error() string {
	return fmt.Sprintf("unknown category: %d", e.Category)
}
