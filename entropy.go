// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1ops

import (
	"github.com/decred/dcrd/crypto/rand"
)

// readRandom fills the passed slice from the process-wide CSPRNG.
var readRandom = rand.Read

// entropyMode identifies how extra entropy for signing is obtained.
type entropyMode uint8

const (
	entropyRandom entropyMode = iota
	entropyNone
	entropyFixed
)

// Entropy describes the extra entropy mixed into the deterministic ECDSA nonce.
//
// The zero value draws 32 fresh bytes from the CSPRNG for every signature, so
// repeated signatures of the same hash differ.  NoEntropy produces plain
// RFC6979 signatures that are reproducible for identical inputs.  FixedEntropy
// mixes in caller provided bytes, which is also reproducible.
type Entropy struct {
	mode entropyMode
	data []byte
}

// NoEntropy disables extra entropy.
var NoEntropy = Entropy{mode: entropyNone}

// RandomEntropy returns the default entropy that draws fresh random bytes for
// every signature.  It is the same as the zero value.
func RandomEntropy() Entropy {
	return Entropy{}
}

// FixedEntropy returns entropy that mixes in the passed bytes verbatim.  They
// must be exactly EntropySize bytes by the time they are used to sign.
func FixedEntropy(data []byte) Entropy {
	return Entropy{mode: entropyFixed, data: data}
}

// String returns a description of the entropy source that never includes the
// entropy itself.
func (e Entropy) String() string {
	switch e.mode {
	case entropyNone:
		return "none"
	case entropyFixed:
		return "fixed"
	}
	return "random"
}

// validate returns ErrMalformedInput when fixed entropy is not EntropySize
// bytes.
func (e Entropy) validate() error {
	if e.mode != entropyFixed {
		return nil
	}
	return assertSize("extra entropy", e.data, EntropySize)
}

// bytes returns the extra entropy to mix into the nonce, or nil when none is
// used.  Random entropy is drawn on every call.
func (e Entropy) bytes() []byte {
	switch e.mode {
	case entropyNone:
		return nil
	case entropyFixed:
		return e.data
	}
	b := make([]byte, EntropySize)
	readRandom(b)
	return b
}
