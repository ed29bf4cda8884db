// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1ops

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// SchnorrSign creates a BIP-340 signature of the 32-byte data with the private
// key.
//
// When auxRand is nil, 32 fresh bytes are drawn from the CSPRNG so repeated
// signatures differ.  Otherwise auxRand must be exactly 32 bytes and signing
// is reproducible.  An all-zero auxRand is a valid explicit choice.
func SchnorrSign(data, privateKey, auxRand []byte) ([]byte, error) {
	if err := assertSize("data", data, HashSize); err != nil {
		return nil, err
	}
	if err := assertSize("private key", privateKey, PrivateKeySize); err != nil {
		return nil, err
	}
	var aux [EntropySize]byte
	if auxRand == nil {
		readRandom(aux[:])
	} else {
		if err := assertSize("aux rand", auxRand, EntropySize); err != nil {
			return nil, err
		}
		copy(aux[:], auxRand)
	}

	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	sig, err := schnorr.Sign(priv, data, schnorr.CustomNonce(aux))
	if err != nil {
		// Only reachable with a nonce of zero, which happens with
		// negligible probability.
		str := fmt.Sprintf("schnorr signing failed: %v", err)
		return nil, makeError(ErrInvalidSignature, str)
	}
	return sig.Serialize(), nil
}

// checkSchnorrSignature enforces 0 < r < P and 0 < s < N on a 64-byte BIP-340
// signature before it is handed to the parser.
func checkSchnorrSignature(sig []byte) error {
	var r secp256k1.FieldVal
	if overflow := r.SetByteSlice(sig[:32]); overflow {
		return makeError(ErrInvalidSignature,
			"invalid signature: r is not less than the field prime")
	}
	if r.IsZero() {
		return makeError(ErrInvalidSignature, "invalid signature: r is zero")
	}

	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(sig[32:]); overflow {
		return makeError(ErrInvalidSignature,
			"invalid signature: s is not less than the group order")
	}
	if s.IsZero() {
		return makeError(ErrInvalidSignature, "invalid signature: s is zero")
	}
	return nil
}

// SchnorrVerify verifies a BIP-340 signature of the 32-byte data against the
// x-only public key.
//
// An x-only key that is not on the curve is ErrInvalidPoint and a signature
// with a zero or out of range component is ErrInvalidSignature.  A well formed
// signature that does not match returns false.
func SchnorrVerify(signature, data, xOnly []byte) (bool, error) {
	if err := assertSize("signature", signature, SignatureSize); err != nil {
		return false, err
	}
	if err := assertSize("data", data, HashSize); err != nil {
		return false, err
	}
	pub, err := parseXOnly(xOnly)
	if err != nil {
		return false, err
	}
	if err := checkSchnorrSignature(signature); err != nil {
		return false, err
	}
	sig, err := schnorr.ParseSignature(signature)
	if err != nil {
		str := fmt.Sprintf("invalid signature: %v", err)
		return false, makeError(ErrInvalidSignature, str)
	}
	return sig.Verify(data, pub), nil
}
