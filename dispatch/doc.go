// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package dispatch provides a named-argument interface to the secp256k1ops
operations, suitable for driving them from JSON requests.

Each method has an explicit list of the parameters it accepts.  Passing any
other parameter is rejected with secp256k1ops.ErrUnexpectedOption before any
work is done, and an unknown method is rejected with ErrUnknownMethod.

Byte parameters are hex strings.  Methods that return a buffer accept a
"format" parameter of "bytes" (the default) or "hex" that selects whether the
buffer is returned as a []byte or a lowercase hex string.

The ECDSA signing methods accept an "extraEntropy" parameter that is true (the
default) for fresh random entropy, null to disable extra entropy, or a 32-byte
hex string.  When "recovery" is true they return a *SignResult instead of the
bare signature.
*/
package dispatch
