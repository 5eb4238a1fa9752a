package linkedart

import "errors"

var (
	// ErrInvalidDocument indicates a decoded document is not a JSON object.
	ErrInvalidDocument = errors.New("linkedart: document is not a JSON object")
)
