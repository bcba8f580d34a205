package bitvec

import "errors"

// Sentinel errors returned by bitvec construction.
//
// Callers should use [errors.Is] to check error types.
var (
	// ErrEmptyInput indicates a bit-string input of length zero.
	//
	// A zero-length vector has no valid positions; callers that need to
	// reject empty input at the parse boundary should check for this
	// explicitly.
	ErrEmptyInput = errors.New("bitvec: empty input")

	// ErrInvalidBit indicates a byte other than '0'/'1' in a bit-string.
	ErrInvalidBit = errors.New("bitvec: invalid bit character")

	// ErrInvalidTuning indicates a [Tuning] quadruple that cannot
	// represent a bit-vector of the given length without overflowing a
	// packed counter field.
	ErrInvalidTuning = errors.New("bitvec: invalid tuning")
)
