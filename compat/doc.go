// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package compat exposes the secp256k1ops operations through the method set of
the tiny-secp256k1 v2 interface so callers written against that interface can
use them unchanged.

The methods differ from the underlying operations only in how they report
failures.  Which failures a method reports as a nil result is declared in a
single table, and every method calls its underlying operation exactly once.

Recovering a public key from a signature is not provided.
*/
package compat
