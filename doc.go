// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1ops provides validated, byte-oriented operations over the
secp256k1 curve: key validation and conversion, scalar and point tweaks, ECDSA
signing and verification, and BIP-340 Schnorr signing and verification.

All curve arithmetic is performed by the secp256k1 package.  This package adds
the validation rules and the composition on top of it, so that every operation
either returns a fully validated, newly allocated result or an error that
identifies why the inputs were rejected.

# Errors

Errors returned by this package are of type Error and wrap an ErrorKind, so
callers can use errors.Is to distinguish malformed inputs (ErrMalformedInput)
from invalid keys (ErrInvalidPrivateKey, ErrInvalidPoint), from tweaks that
land on zero or the point at infinity (ErrInvalidTweakResult), and from
structurally invalid signatures (ErrInvalidSignature).

The validity predicates PrivateKeyIsValid, PublicKeyIsValid, and XOnlyIsValid
never return errors.

# ECDSA

Signatures are created with an RFC6979 nonce that, by default, is mixed with 32
fresh random bytes.  Pass NoEntropy in ECDSASignOptions for plain deterministic
signatures, or FixedEntropy to mix in caller provided bytes.  Produced
signatures always have a low S value and verification rejects signatures that
do not.

# Concurrency

None of the operations share mutable state, so they may be called concurrently.
The Async variants run the same synchronous code on a new goroutine and return a
Pending result.
*/
package secp256k1ops
