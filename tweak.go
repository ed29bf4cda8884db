// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1ops

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// invalidTweakResult is the description of every ErrInvalidTweakResult.
const invalidTweakResult = "invalid tweak result"

// tweakPrivateKey applies fn to the private key scalar and the tweak, and
// returns the serialized result after ensuring it is a valid private key.
// Sizes are checked for both inputs before the tweak range and the private key
// validity.
func tweakPrivateKey(op string, privateKey, tweak []byte,
	fn func(d, t *secp256k1.ModNScalar)) ([]byte, error) {

	if err := assertSize("private key", privateKey, PrivateKeySize); err != nil {
		return nil, err
	}
	t, err := parseTweak(tweak)
	if err != nil {
		return nil, err
	}
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	d := priv.Key
	defer d.Zero()
	fn(&d, t)
	return serializeTweakedScalar(op, &d)
}

// serializeTweakedScalar returns the 32-byte encoding of the scalar, or
// ErrInvalidTweakResult when it is zero.
func serializeTweakedScalar(op string, d *secp256k1.ModNScalar) ([]byte, error) {
	if d.IsZero() {
		log.Debugf("%s: result is zero", op)
		return nil, makeError(ErrInvalidTweakResult, invalidTweakResult)
	}
	result := make([]byte, PrivateKeySize)
	d.PutBytesUnchecked(result)
	return result, nil
}

// PrivateKeyTweakAdd returns (d + t) mod N for private key d and tweak t.
func PrivateKeyTweakAdd(privateKey, tweak []byte) ([]byte, error) {
	return tweakPrivateKey("private key tweak add", privateKey, tweak,
		func(d, t *secp256k1.ModNScalar) {
			d.Add(t)
		})
}

// PrivateKeyTweakSubtract returns (d - t) mod N for private key d and tweak t.
func PrivateKeyTweakSubtract(privateKey, tweak []byte) ([]byte, error) {
	return tweakPrivateKey("private key tweak subtract", privateKey, tweak,
		func(d, t *secp256k1.ModNScalar) {
			var negT secp256k1.ModNScalar
			negT.NegateVal(t)
			d.Add(&negT)
		})
}

// PrivateKeyTweakNegate returns N - d for private key d.
func PrivateKeyTweakNegate(privateKey []byte) ([]byte, error) {
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	d := priv.Key
	defer d.Zero()
	d.Negate()
	return serializeTweakedScalar("private key tweak negate", &d)
}

// isInfinity returns whether the Jacobian point is the point at infinity.
func isInfinity(p *secp256k1.JacobianPoint) bool {
	p.X.Normalize()
	p.Y.Normalize()
	p.Z.Normalize()
	return (p.X.IsZero() && p.Y.IsZero()) || p.Z.IsZero()
}

// serializeTweakedPoint converts the point to affine coordinates and returns
// its encoding, or ErrInvalidTweakResult when it is the point at infinity.
func serializeTweakedPoint(op string, q *secp256k1.JacobianPoint, compressed bool) ([]byte, error) {
	if isInfinity(q) {
		log.Debugf("%s: result is the point at infinity", op)
		return nil, makeError(ErrInvalidTweakResult, invalidTweakResult)
	}
	q.ToAffine()
	return serializePubKey(secp256k1.NewPublicKey(&q.X, &q.Y), compressed), nil
}

// PublicKeyTweakAddPoint returns P + T for public keys P and T.  The result
// uses the encoding of publicKey unless compression overrides it.
func PublicKeyTweakAddPoint(publicKey, tweakPoint []byte, compression Compression) ([]byte, error) {
	if err := assertPublicKeySize("public key", publicKey); err != nil {
		return nil, err
	}
	if err := assertPublicKeySize("tweak point", tweakPoint); err != nil {
		return nil, err
	}
	pub, err := parsePublicKey("public key", publicKey)
	if err != nil {
		return nil, err
	}
	tweakPub, err := parsePublicKey("tweak point", tweakPoint)
	if err != nil {
		return nil, err
	}

	var p, t, q secp256k1.JacobianPoint
	pub.AsJacobian(&p)
	tweakPub.AsJacobian(&t)
	secp256k1.AddNonConst(&p, &t, &q)

	compressed := compression.compressed(len(publicKey) == CompressedPublicKeySize)
	return serializeTweakedPoint("public key tweak add point", &q, compressed)
}

// PublicKeyTweakAddScalar returns P + t*G for public key P and tweak t.  The
// result uses the encoding of publicKey unless compression overrides it.
func PublicKeyTweakAddScalar(publicKey, tweak []byte, compression Compression) ([]byte, error) {
	if err := assertPublicKeySize("public key", publicKey); err != nil {
		return nil, err
	}
	t, err := parseTweak(tweak)
	if err != nil {
		return nil, err
	}
	pub, err := parsePublicKey("public key", publicKey)
	if err != nil {
		return nil, err
	}

	var q secp256k1.JacobianPoint
	addScalarBase(pub, t, &q)

	compressed := compression.compressed(len(publicKey) == CompressedPublicKeySize)
	return serializeTweakedPoint("public key tweak add scalar", &q, compressed)
}

// PublicKeyTweakMultiply returns t*P for public key P and tweak t.  The
// result uses the encoding of publicKey unless compression overrides it.
func PublicKeyTweakMultiply(publicKey, tweak []byte, compression Compression) ([]byte, error) {
	if err := assertPublicKeySize("public key", publicKey); err != nil {
		return nil, err
	}
	t, err := parseTweak(tweak)
	if err != nil {
		return nil, err
	}
	pub, err := parsePublicKey("public key", publicKey)
	if err != nil {
		return nil, err
	}

	var p, q secp256k1.JacobianPoint
	pub.AsJacobian(&p)
	secp256k1.ScalarMultNonConst(t, &p, &q)

	compressed := compression.compressed(len(publicKey) == CompressedPublicKeySize)
	return serializeTweakedPoint("public key tweak multiply", &q, compressed)
}

// XOnlyTweakAdd treats the x-only key as the point X with an even y
// coordinate and returns X + t*G.  The result is a full public key, compressed
// by default, so the parity of Q is available from its prefix.
func XOnlyTweakAdd(xOnly, tweak []byte, compression Compression) ([]byte, error) {
	if err := assertSize("x-only public key", xOnly, XOnlySize); err != nil {
		return nil, err
	}
	t, err := parseTweak(tweak)
	if err != nil {
		return nil, err
	}
	pub, err := parseXOnly(xOnly)
	if err != nil {
		return nil, err
	}

	var q secp256k1.JacobianPoint
	addScalarBase(pub, t, &q)
	return serializeTweakedPoint("x-only tweak add", &q, compression.compressed(true))
}

// addScalarBase stores P + t*G in result.
func addScalarBase(pub *secp256k1.PublicKey, t *secp256k1.ModNScalar, result *secp256k1.JacobianPoint) {
	var p, tG secp256k1.JacobianPoint
	pub.AsJacobian(&p)
	secp256k1.ScalarBaseMultNonConst(t, &tG)
	secp256k1.AddNonConst(&p, &tG, result)
}
