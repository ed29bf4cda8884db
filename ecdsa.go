// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1ops

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// ECDSASignOptions houses the options for creating ECDSA signatures.  A nil
// options pointer is the same as the zero value.
type ECDSASignOptions struct {
	// ExtraEntropy is mixed into the RFC6979 nonce.  The zero value draws
	// fresh random bytes for every signature.
	ExtraEntropy Entropy

	// DER selects the DER encoding instead of the 64-byte compact r || s
	// encoding.
	DER bool

	// Recovery requests the public key recovery id of the signature.
	Recovery bool
}

// ECDSASignature is the result of an ECDSA signing operation.
type ECDSASignature struct {
	// Signature is the compact or DER encoded signature.  S is always in
	// the lower half of the group order.
	Signature []byte

	// Recoverable reports whether RecoveryID was requested and populated.
	Recoverable bool

	// RecoveryID identifies which of the candidate public keys recovered
	// from the signature is the signing key.  Bit 0 is the parity of the y
	// coordinate of R and bit 1 is set when the x coordinate of R was not
	// less than the group order.
	RecoveryID byte
}

// signECDSA produces a low-S signature of hash with the private key d using a
// nonce derived per RFC6979 from d, hash, and the optional 32 bytes of extra
// data.
//
// This is grounded on the signing algorithm in the secp256k1 ecdsa package with
// the extra data threaded through to the nonce generation.
func signECDSA(d *secp256k1.ModNScalar, hash, extra []byte) (r, s secp256k1.ModNScalar, recoveryID byte) {
	var privKeyBytes [PrivateKeySize]byte
	d.PutBytes(&privKeyBytes)
	defer func() {
		for i := range privKeyBytes {
			privKeyBytes[i] = 0
		}
	}()

	// e = hash mod N
	var e secp256k1.ModNScalar
	e.SetByteSlice(hash)

	for iteration := uint32(0); ; iteration++ {
		k := secp256k1.NonceRFC6979(privKeyBytes[:], hash, extra, nil,
			iteration)

		// R = kG
		var R secp256k1.JacobianPoint
		secp256k1.ScalarBaseMultNonConst(k, &R)

		// r = R.x mod N
		R.ToAffine()
		overflow := r.SetBytes(R.X.Bytes())
		if r.IsZero() {
			k.Zero()
			log.Tracef("ecdsa nonce iteration %d produced r = 0", iteration)
			continue
		}

		// s = k^-1 (e + r*d) mod N
		kInv := new(secp256k1.ModNScalar).InverseValNonConst(k)
		k.Zero()
		s.Mul2(&r, d).Add(&e).Mul(kInv)
		kInv.Zero()
		if s.IsZero() {
			log.Tracef("ecdsa nonce iteration %d produced s = 0", iteration)
			continue
		}

		if R.Y.IsOdd() {
			recoveryID |= 1
		}
		if overflow == 1 {
			recoveryID |= 2
		}

		// Negating s negates R in the verification equation, so the
		// parity bit of the recovery id flips with it.
		if s.IsOverHalfOrder() {
			s.Negate()
			recoveryID ^= 1
		}
		return r, s, recoveryID
	}
}

// ECDSASignHash signs the 32-byte hash with the private key.  The returned
// signature always has a low S value.
func ECDSASignHash(hash, privateKey []byte, opts *ECDSASignOptions) (*ECDSASignature, error) {
	if opts == nil {
		opts = &ECDSASignOptions{}
	}
	if err := assertSize("hash", hash, HashSize); err != nil {
		return nil, err
	}
	if err := assertSize("private key", privateKey, PrivateKeySize); err != nil {
		return nil, err
	}
	if err := opts.ExtraEntropy.validate(); err != nil {
		return nil, err
	}
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	r, s, recoveryID := signECDSA(&priv.Key, hash, opts.ExtraEntropy.bytes())

	result := &ECDSASignature{}
	if opts.DER {
		result.Signature = ecdsa.NewSignature(&r, &s).Serialize()
	} else {
		result.Signature = make([]byte, SignatureSize)
		r.PutBytesUnchecked(result.Signature[:32])
		s.PutBytesUnchecked(result.Signature[32:])
	}
	if opts.Recovery {
		result.Recoverable = true
		result.RecoveryID = recoveryID
	}
	return result, nil
}

// parseCompactECDSA decodes a 64-byte r || s signature and enforces 0 < r < N
// and 0 < s <= N/2.
func parseCompactECDSA(sig []byte) (*ecdsa.Signature, error) {
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig[:32]); overflow {
		return nil, makeError(ErrInvalidSignature,
			"invalid signature: r is not less than the group order")
	}
	if r.IsZero() {
		return nil, makeError(ErrInvalidSignature, "invalid signature: r is zero")
	}
	if overflow := s.SetByteSlice(sig[32:]); overflow {
		return nil, makeError(ErrInvalidSignature,
			"invalid signature: s is not less than the group order")
	}
	if s.IsZero() {
		return nil, makeError(ErrInvalidSignature, "invalid signature: s is zero")
	}
	if s.IsOverHalfOrder() {
		return nil, makeError(ErrInvalidSignature,
			"invalid signature: s is not canonical (high S)")
	}
	return ecdsa.NewSignature(&r, &s), nil
}

// ECDSAVerifyHash verifies a 64-byte compact signature of the 32-byte hash
// against the public key.
//
// Structurally invalid signatures, including those with a high S value, are
// reported as ErrInvalidSignature.  A well formed signature that does not match
// returns false.
func ECDSAVerifyHash(signature, hash, publicKey []byte) (bool, error) {
	if err := assertPublicKeySize("public key", publicKey); err != nil {
		return false, err
	}
	if err := assertSize("signature", signature, SignatureSize); err != nil {
		return false, err
	}
	if err := assertSize("hash", hash, HashSize); err != nil {
		return false, err
	}
	pub, err := parsePublicKey("public key", publicKey)
	if err != nil {
		return false, err
	}
	sig, err := parseCompactECDSA(signature)
	if err != nil {
		return false, err
	}
	return sig.Verify(hash, pub), nil
}

// ECDSASignMessage signs the SHA-256 digest of message.  It is identical to
// calling ECDSASignHash with that digest.
func ECDSASignMessage(message, privateKey []byte, opts *ECDSASignOptions) (*ECDSASignature, error) {
	return ECDSASignHash(chainhash.HashB(message), privateKey, opts)
}

// ECDSAVerifyMessage verifies a signature of the SHA-256 digest of message.
// It is identical to calling ECDSAVerifyHash with that digest.
func ECDSAVerifyMessage(signature, message, publicKey []byte) (bool, error) {
	return ECDSAVerifyHash(signature, chainhash.HashB(message), publicKey)
}
