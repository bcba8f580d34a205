package ioformat

import "errors"

var (
	ErrMalformedHeader = errors.New("ioformat: malformed header")
	ErrMalformedQuery  = errors.New("ioformat: malformed query line")
	ErrUnknownVerb     = errors.New("ioformat: unknown query verb")
	ErrUnknownBit      = errors.New("ioformat: bit argument must be 0 or 1")
	ErrTruncatedInput  = errors.New("ioformat: fewer query lines than declared")
)
