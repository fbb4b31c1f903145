package book

import "errors"

var (
	// ErrInvalidOrder is returned when a conforming book rejects a
	// submission outright (non-positive qty, unknown side/type) without
	// mutating any book state.
	ErrInvalidOrder = errors.New("invalid order")
)
