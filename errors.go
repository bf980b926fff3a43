package kyber

import "errors"

// Sentinel errors returned by this package's parsing and KEM entry points.
// None of them carry key material.
var (
	// ErrInvalidLength is returned when an encoded key or ciphertext does
	// not match the byte length implied by its parameter set.
	ErrInvalidLength = errors.New("kyber: invalid encoded length")

	// ErrInvalidParam is returned when a Params value is not one of the
	// three standard parameter sets.
	ErrInvalidParam = errors.New("kyber: invalid parameter set")

	// ErrEntropyFailure is returned when the supplied randomness source
	// fails to fill a required seed.
	ErrEntropyFailure = errors.New("kyber: failed to read randomness")
)
