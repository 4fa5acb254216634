package roster

import "errors"

var (
	// ErrInvalidInput is returned when the requested row count is below MinRows.
	ErrInvalidInput = errors.New("invalid input")

	ErrUnknownEmployee = errors.New("unknown employee")
	ErrCycle           = errors.New("manager cycle detected")
)
