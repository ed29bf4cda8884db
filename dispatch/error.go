// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/decred/secp256k1ops"
)

// ErrUnknownMethod indicates a request named a method that does not exist.
const ErrUnknownMethod = secp256k1ops.ErrorKind("ErrUnknownMethod")

// makeError creates a secp256k1ops.Error given a set of arguments so errors
// from this package are identified the same way as those of the operations.
func makeError(kind secp256k1ops.ErrorKind, desc string) secp256k1ops.Error {
	return secp256k1ops.Error{Err: kind, Description: desc}
}
