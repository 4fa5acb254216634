package format

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown format")
	ErrMalformed     = errors.New("malformed roster")
)
