// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compat

import (
	"errors"

	"github.com/decred/secp256k1ops"
)

// method identifies a method of Secp256k1 in the no result table.
type method string

const (
	methodPointAdd           method = "pointAdd"
	methodPointAddScalar     method = "pointAddScalar"
	methodPointMultiply      method = "pointMultiply"
	methodPrivateAdd         method = "privateAdd"
	methodPrivateSub         method = "privateSub"
	methodPrivateNegate      method = "privateNegate"
	methodXOnlyPointAddTweak method = "xOnlyPointAddTweak"
)

// noResultKinds maps each method to the error kinds that it reports as a nil
// result with a nil error.  Any other error is returned to the caller.
var noResultKinds = map[method][]secp256k1ops.ErrorKind{
	methodPointAdd:           {secp256k1ops.ErrInvalidTweakResult},
	methodPointAddScalar:     {secp256k1ops.ErrInvalidTweakResult},
	methodPointMultiply:      {secp256k1ops.ErrInvalidTweakResult},
	methodPrivateAdd:         {secp256k1ops.ErrInvalidTweakResult},
	methodPrivateSub:         {secp256k1ops.ErrInvalidTweakResult},
	methodPrivateNegate:      {secp256k1ops.ErrInvalidTweakResult},
	methodXOnlyPointAddTweak: {secp256k1ops.ErrInvalidTweakResult},
}

// translate converts the result of a core operation to the convention of the
// passed method.
func translate[T any](m method, val T, err error) (T, error) {
	if err == nil {
		return val, nil
	}
	for _, kind := range noResultKinds[m] {
		if errors.Is(err, kind) {
			log.Tracef("%s: %v reported as no result", m, kind)
			var zero T
			return zero, nil
		}
	}
	return val, err
}

// XOnlyTweakResult is the result of XOnlyPointAddTweak.
type XOnlyTweakResult struct {
	// Parity is 1 when the y coordinate of the tweaked point is odd and 0
	// otherwise.
	Parity int

	// XOnlyPubkey is the x-only encoding of the tweaked point.
	XOnlyPubkey []byte
}

// RecoverableSignature is the result of SignRecoverable.
type RecoverableSignature struct {
	Signature  []byte
	RecoveryID byte
}

// Secp256k1 exposes the operations of the secp256k1ops package with the
// method set and conventions of the tiny-secp256k1 interface:
//
//   - Validity predicates return false instead of an error.
//   - Tweaks that produce zero or the point at infinity return a nil result
//     and a nil error.
//   - Verification returns an error for structurally invalid signatures and
//     keys and a boolean otherwise.  Signatures with a high S value are always
//     rejected.
//
// The zero value is ready to use and is safe for concurrent use.
type Secp256k1 struct{}

// IsPoint returns whether p is a valid compressed or uncompressed point.
func (Secp256k1) IsPoint(p []byte) bool {
	return secp256k1ops.PublicKeyIsValid(p, secp256k1ops.CompressionDefault)
}

// IsPointCompressed returns whether p is a valid compressed point.
func (Secp256k1) IsPointCompressed(p []byte) bool {
	return secp256k1ops.PublicKeyIsValid(p, secp256k1ops.CompressionCompressed)
}

// IsPrivate returns whether d is a valid private key.
func (Secp256k1) IsPrivate(d []byte) bool {
	return secp256k1ops.PrivateKeyIsValid(d)
}

// IsXOnlyPoint returns whether p is a valid x-only point.
func (Secp256k1) IsXOnlyPoint(p []byte) bool {
	return secp256k1ops.XOnlyIsValid(p)
}

// PointFromScalar returns the public key of d.  CompressionDefault produces
// the compressed encoding.
func (Secp256k1) PointFromScalar(d []byte, compression secp256k1ops.Compression) ([]byte, error) {
	return secp256k1ops.PrivateKeyToPublicKey(d, compression)
}

// PointCompress re-encodes p.  Despite its name, CompressionDefault keeps the
// encoding of p.
func (Secp256k1) PointCompress(p []byte, compression secp256k1ops.Compression) ([]byte, error) {
	compressed := len(p) == secp256k1ops.CompressedPublicKeySize
	switch compression {
	case secp256k1ops.CompressionCompressed:
		compressed = true
	case secp256k1ops.CompressionUncompressed:
		compressed = false
	}
	return secp256k1ops.PublicKeyConvert(p, compressed)
}

// PointAdd returns pA + pB, or nil when the sum is the point at infinity.
func (Secp256k1) PointAdd(pA, pB []byte, compression secp256k1ops.Compression) ([]byte, error) {
	q, err := secp256k1ops.PublicKeyTweakAddPoint(pA, pB, compression)
	return translate(methodPointAdd, q, err)
}

// PointAddScalar returns p + tweak*G, or nil when the result is the point at
// infinity.
func (Secp256k1) PointAddScalar(p, tweak []byte, compression secp256k1ops.Compression) ([]byte, error) {
	q, err := secp256k1ops.PublicKeyTweakAddScalar(p, tweak, compression)
	return translate(methodPointAddScalar, q, err)
}

// PointMultiply returns tweak*p, or nil when the result is the point at
// infinity.
func (Secp256k1) PointMultiply(p, tweak []byte, compression secp256k1ops.Compression) ([]byte, error) {
	q, err := secp256k1ops.PublicKeyTweakMultiply(p, tweak, compression)
	return translate(methodPointMultiply, q, err)
}

// PrivateAdd returns d + tweak, or nil when the result is zero.
func (Secp256k1) PrivateAdd(d, tweak []byte) ([]byte, error) {
	r, err := secp256k1ops.PrivateKeyTweakAdd(d, tweak)
	return translate(methodPrivateAdd, r, err)
}

// PrivateSub returns d - tweak, or nil when the result is zero.
func (Secp256k1) PrivateSub(d, tweak []byte) ([]byte, error) {
	r, err := secp256k1ops.PrivateKeyTweakSubtract(d, tweak)
	return translate(methodPrivateSub, r, err)
}

// PrivateNegate returns -d.
func (Secp256k1) PrivateNegate(d []byte) ([]byte, error) {
	r, err := secp256k1ops.PrivateKeyTweakNegate(d)
	return translate(methodPrivateNegate, r, err)
}

// XOnlyPointAddTweak returns the parity and x-only encoding of p + tweak*G,
// or nil when the result is the point at infinity.
func (Secp256k1) XOnlyPointAddTweak(p, tweak []byte) (*XOnlyTweakResult, error) {
	q, err := secp256k1ops.XOnlyTweakAdd(p, tweak, secp256k1ops.CompressionCompressed)
	if err != nil {
		return translate[*XOnlyTweakResult](methodXOnlyPointAddTweak, nil, err)
	}
	return &XOnlyTweakResult{
		Parity:      int(q[0] % 2),
		XOnlyPubkey: q[1:],
	}, nil
}

// signEntropy returns the entropy for ECDSA signing.  No extra entropy is used
// unless provided.
func signEntropy(extraEntropy []byte) secp256k1ops.Entropy {
	if extraEntropy == nil {
		return secp256k1ops.NoEntropy
	}
	return secp256k1ops.FixedEntropy(extraEntropy)
}

// Sign returns the 64-byte compact ECDSA signature of hash.  It is
// deterministic unless extraEntropy is provided, in which case it must be 32
// bytes.
func (Secp256k1) Sign(hash, d, extraEntropy []byte) ([]byte, error) {
	sig, err := secp256k1ops.ECDSASignHash(hash, d, &secp256k1ops.ECDSASignOptions{
		ExtraEntropy: signEntropy(extraEntropy),
	})
	if err != nil {
		return nil, err
	}
	return sig.Signature, nil
}

// SignRecoverable is the same as Sign but also returns the recovery id.
func (Secp256k1) SignRecoverable(hash, d, extraEntropy []byte) (*RecoverableSignature, error) {
	sig, err := secp256k1ops.ECDSASignHash(hash, d, &secp256k1ops.ECDSASignOptions{
		ExtraEntropy: signEntropy(extraEntropy),
		Recovery:     true,
	})
	if err != nil {
		return nil, err
	}
	return &RecoverableSignature{
		Signature:  sig.Signature,
		RecoveryID: sig.RecoveryID,
	}, nil
}

// Verify verifies the compact ECDSA signature of hash against the public key.
func (Secp256k1) Verify(hash, q, signature []byte) (bool, error) {
	return secp256k1ops.ECDSAVerifyHash(signature, hash, q)
}

// SignSchnorr returns the BIP-340 signature of the 32-byte data.  Fresh
// randomness is used unless extraEntropy is provided.
func (Secp256k1) SignSchnorr(data, d, extraEntropy []byte) ([]byte, error) {
	return secp256k1ops.SchnorrSign(data, d, extraEntropy)
}

// VerifySchnorr verifies the BIP-340 signature of data against the x-only
// public key.
func (Secp256k1) VerifySchnorr(data, q, signature []byte) (bool, error) {
	return secp256k1ops.SchnorrVerify(signature, data, q)
}

// XOnlyPointFromScalar returns the x-only public key of d.
func (Secp256k1) XOnlyPointFromScalar(d []byte) ([]byte, error) {
	return secp256k1ops.PrivateKeyToXOnly(d)
}

// XOnlyPointFromPoint returns the x-only encoding of p.
func (Secp256k1) XOnlyPointFromPoint(p []byte) ([]byte, error) {
	return secp256k1ops.PublicKeyToX(p)
}
