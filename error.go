// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1ops

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrMalformedInput indicates a fixed-size input was not provided with
	// the required length, or a tweak was not a scalar less than the group
	// order.  It is reported before any curve arithmetic is performed.
	ErrMalformedInput = ErrorKind("ErrMalformedInput")

	// ErrInvalidPrivateKey indicates a private key is not a scalar in the
	// range [1, N-1].
	ErrInvalidPrivateKey = ErrorKind("ErrInvalidPrivateKey")

	// ErrInvalidPoint indicates a byte string does not encode a point on the
	// curve, either as a compressed, uncompressed, or x-only encoding.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrInvalidTweakResult indicates individually valid inputs produced a
	// zero scalar or the point at infinity.
	ErrInvalidTweakResult = ErrorKind("ErrInvalidTweakResult")

	// ErrInvalidSignature indicates a signature is structurally invalid.
	// That includes zero or out of range components as well as ECDSA
	// signatures with a high S value.
	ErrInvalidSignature = ErrorKind("ErrInvalidSignature")

	// ErrUnexpectedOption indicates an unrecognized named argument was
	// supplied to an operation.
	ErrUnexpectedOption = ErrorKind("ErrUnexpectedOption")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error returned by the operations in this package.  It
// has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
