package checkers

import "errors"

var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrMalformedNotation = errors.New("malformed notation")
	ErrOutOfBounds       = errors.New("square out of bounds")
	ErrInvalidPosition   = errors.New("invalid position")
)
