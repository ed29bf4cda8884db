// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compat

import (
	"encoding/hex"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/decred/secp256k1ops"
	"github.com/stretchr/testify/require"
)

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  It will only (and must only) be called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

var (
	one   = hexToBytes("0000000000000000000000000000000000000000000000000000000000000001")
	two   = hexToBytes("0000000000000000000000000000000000000000000000000000000000000002")
	zero  = make([]byte, 32)
	nM1   = hexToBytes("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140")
	order = hexToBytes("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	gX       = hexToBytes("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	gComp    = hexToBytes("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	gNegComp = hexToBytes("0379be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	gUncomp  = hexToBytes("0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	g2Comp   = hexToBytes("02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5")
	g2Uncomp = hexToBytes("04c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5" +
		"1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a")
	offCurve = hexToBytes("02eefdea4cdb677750a420fee807eacf21eb9898ae79b9768766e4faa04a2d4a34")
)

// TestPredicates ensures the validity predicates return false rather than
// failing on any invalid input.
func TestPredicates(t *testing.T) {
	t.Parallel()

	var s Secp256k1
	require.True(t, s.IsPoint(gComp))
	require.True(t, s.IsPoint(gUncomp))
	require.False(t, s.IsPoint(offCurve))
	require.False(t, s.IsPoint(nil))
	require.False(t, s.IsPoint(gX))

	require.True(t, s.IsPointCompressed(gComp))
	require.False(t, s.IsPointCompressed(gUncomp))

	require.True(t, s.IsPrivate(one))
	require.True(t, s.IsPrivate(nM1))
	require.False(t, s.IsPrivate(zero))
	require.False(t, s.IsPrivate(order))
	require.False(t, s.IsPrivate(one[1:]))

	require.True(t, s.IsXOnlyPoint(gX))
	require.False(t, s.IsXOnlyPoint(offCurve[1:]))
	require.False(t, s.IsXOnlyPoint(gComp))
}

// TestPointConversions ensures point derivation and re-encoding default to the
// expected encodings.
func TestPointConversions(t *testing.T) {
	t.Parallel()

	var s Secp256k1
	p, err := s.PointFromScalar(two, secp256k1ops.CompressionDefault)
	require.NoError(t, err)
	require.Equal(t, g2Comp, p)

	p, err = s.PointFromScalar(two, secp256k1ops.CompressionUncompressed)
	require.NoError(t, err)
	require.Equal(t, g2Uncomp, p)

	_, err = s.PointFromScalar(zero, secp256k1ops.CompressionDefault)
	require.ErrorIs(t, err, secp256k1ops.ErrInvalidPrivateKey)

	// The default keeps the input encoding.
	p, err = s.PointCompress(g2Uncomp, secp256k1ops.CompressionDefault)
	require.NoError(t, err)
	require.Equal(t, g2Uncomp, p)
	p, err = s.PointCompress(g2Uncomp, secp256k1ops.CompressionCompressed)
	require.NoError(t, err)
	require.Equal(t, g2Comp, p)
	p, err = s.PointCompress(g2Comp, secp256k1ops.CompressionUncompressed)
	require.NoError(t, err)
	require.Equal(t, g2Uncomp, p)

	x, err := s.XOnlyPointFromScalar(two)
	require.NoError(t, err)
	require.Equal(t, g2Comp[1:], x)
	x, err = s.XOnlyPointFromPoint(g2Uncomp)
	require.NoError(t, err)
	require.Equal(t, g2Comp[1:], x)
	_, err = s.XOnlyPointFromPoint(offCurve)
	require.ErrorIs(t, err, secp256k1ops.ErrInvalidPoint)
}

// TestTweakNoResult ensures tweaks that land on zero or the point at infinity
// return a nil result without an error while other failures are returned.
func TestTweakNoResult(t *testing.T) {
	t.Parallel()

	var s Secp256k1
	def := secp256k1ops.CompressionDefault

	tests := []struct {
		name    string
		call    func() (any, error)
		want    any
		wantErr error
	}{{
		name: "pointAdd G + G",
		call: func() (any, error) { return s.PointAdd(gComp, gComp, def) },
		want: g2Comp,
	}, {
		name: "pointAdd G + -G",
		call: func() (any, error) { return s.PointAdd(gComp, gNegComp, def) },
		want: []byte(nil),
	}, {
		name:    "pointAdd off curve",
		call:    func() (any, error) { return s.PointAdd(offCurve, gComp, def) },
		want:    []byte(nil),
		wantErr: secp256k1ops.ErrInvalidPoint,
	}, {
		name: "pointAddScalar G + G",
		call: func() (any, error) { return s.PointAddScalar(gUncomp, one, def) },
		want: g2Uncomp,
	}, {
		name: "pointAddScalar -G + G",
		call: func() (any, error) { return s.PointAddScalar(gNegComp, one, def) },
		want: []byte(nil),
	}, {
		name:    "pointAddScalar tweak equal to N",
		call:    func() (any, error) { return s.PointAddScalar(gComp, order, def) },
		want:    []byte(nil),
		wantErr: secp256k1ops.ErrMalformedInput,
	}, {
		name: "pointMultiply G * 2",
		call: func() (any, error) {
			return s.PointMultiply(gComp, two, secp256k1ops.CompressionUncompressed)
		},
		want: g2Uncomp,
	}, {
		name: "pointMultiply by zero",
		call: func() (any, error) { return s.PointMultiply(gComp, zero, def) },
		want: []byte(nil),
	}, {
		name: "privateAdd 1 + 1",
		call: func() (any, error) { return s.PrivateAdd(one, one) },
		want: two,
	}, {
		name: "privateAdd N-1 + 1",
		call: func() (any, error) { return s.PrivateAdd(nM1, one) },
		want: []byte(nil),
	}, {
		name:    "privateAdd zero key",
		call:    func() (any, error) { return s.PrivateAdd(zero, one) },
		want:    []byte(nil),
		wantErr: secp256k1ops.ErrInvalidPrivateKey,
	}, {
		name: "privateSub 1 - 1",
		call: func() (any, error) { return s.PrivateSub(one, one) },
		want: []byte(nil),
	}, {
		name: "privateSub 2 - 1",
		call: func() (any, error) { return s.PrivateSub(two, one) },
		want: one,
	}, {
		name: "privateNegate 1",
		call: func() (any, error) { return s.PrivateNegate(one) },
		want: nM1,
	}, {
		name: "xOnlyPointAddTweak G + G",
		call: func() (any, error) { return s.XOnlyPointAddTweak(gX, one) },
		want: &XOnlyTweakResult{Parity: 0, XOnlyPubkey: g2Comp[1:]},
	}, {
		name: "xOnlyPointAddTweak G + (N-1)G",
		call: func() (any, error) { return s.XOnlyPointAddTweak(gX, nM1) },
		want: (*XOnlyTweakResult)(nil),
	}, {
		name:    "xOnlyPointAddTweak off curve",
		call:    func() (any, error) { return s.XOnlyPointAddTweak(offCurve[1:], one) },
		want:    (*XOnlyTweakResult)(nil),
		wantErr: secp256k1ops.ErrInvalidPoint,
	}}

	for _, test := range tests {
		got, err := test.call()
		if test.wantErr != nil {
			require.ErrorIs(t, err, test.wantErr, test.name)
		} else {
			require.NoError(t, err, test.name)
		}
		require.Equal(t, test.want, got, test.name)
	}
}

// TestXOnlyPointAddTweakParity ensures the parity reflects the y coordinate of
// the tweaked point.
func TestXOnlyPointAddTweakParity(t *testing.T) {
	t.Parallel()

	var s Secp256k1
	// G + (N-2)G = -G, which has an odd y coordinate.
	nM2 := hexToBytes("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd036413f")
	res, err := s.XOnlyPointAddTweak(gX, nM2)
	require.NoError(t, err)
	require.Equal(t, 1, res.Parity)
	require.Equal(t, gX, res.XOnlyPubkey)
}

// TestSign ensures ECDSA signing is deterministic by default, agrees with plain
// RFC6979 signatures, and that verification stays strict.
func TestSign(t *testing.T) {
	t.Parallel()

	var s Secp256k1
	hash := hexToBytes("243f6a8885a308d313198a2e03707344a4093822299f31d0082efa98ec4e6c89")
	key := hexToBytes("eaf02ca348c524e6392655ba4d29603cd1a7347d9d65cfe93ce1ebffdca22694")
	pubKey := hexToBytes("025ceeba2ab4a635df2c0301a3d773da06ac5a18a7c3e0d09a795d7e57d233edf1")

	sig, err := s.Sign(hash, key, nil)
	require.NoError(t, err)
	again, err := s.Sign(hash, key, nil)
	require.NoError(t, err)
	require.Equal(t, sig, again)

	compact := ecdsa.SignCompact(secp256k1.PrivKeyFromBytes(key), hash, true)
	require.Equal(t, compact[1:], sig)

	rec, err := s.SignRecoverable(hash, key, nil)
	require.NoError(t, err)
	require.Equal(t, sig, rec.Signature)
	require.Equal(t, compact[0]-27-4, rec.RecoveryID)

	withEntropy, err := s.Sign(hash, key, one)
	require.NoError(t, err)
	require.NotEqual(t, sig, withEntropy)

	_, err = s.Sign(hash, key, one[1:])
	require.ErrorIs(t, err, secp256k1ops.ErrMalformedInput)

	ok, err := s.Verify(hash, pubKey, sig)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = s.Verify(hash, gComp, sig)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = s.Verify(hash, offCurve, sig)
	require.ErrorIs(t, err, secp256k1ops.ErrInvalidPoint)
	require.False(t, ok)
	_, err = s.Verify(hash, pubKey, append(zero[:32:32], sig[32:]...))
	require.ErrorIs(t, err, secp256k1ops.ErrInvalidSignature)
}

// TestSignSchnorr ensures Schnorr signing uses fresh randomness by default and
// verification propagates structural errors.
func TestSignSchnorr(t *testing.T) {
	t.Parallel()

	var s Secp256k1
	data := hexToBytes("243f6a8885a308d313198a2e03707344a4093822299f31d0082efa98ec4e6c89")
	key := hexToBytes("b7e151628aed2a6abf7158809cf4f3c762e7160f38b4da56a784d9045190cfef")
	xOnly := hexToBytes("dff1d77f2a671c5f36183726db2341be58feae1da2deced843240f7b502ba659")
	want := hexToBytes("6896bd60eeae296db48a229ff71dfe071bde413e6d43f917dc8dcf8c78de3341" +
		"8906d11ac976abccb20b091292bff4ea897efcb639ea871cfa95f6de339e4b0a")

	sig, err := s.SignSchnorr(data, key, one)
	require.NoError(t, err)
	require.Equal(t, want, sig)

	sig1, err := s.SignSchnorr(data, key, nil)
	require.NoError(t, err)
	sig2, err := s.SignSchnorr(data, key, nil)
	require.NoError(t, err)
	require.NotEqual(t, sig1, sig2)

	for _, sig := range [][]byte{sig1, sig2} {
		ok, err := s.VerifySchnorr(data, xOnly, sig)
		require.NoError(t, err)
		require.True(t, ok)
	}

	ok, err := s.VerifySchnorr(data, gX, sig)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = s.VerifySchnorr(data, offCurve[1:], sig)
	require.ErrorIs(t, err, secp256k1ops.ErrInvalidPoint)

	_, err = s.VerifySchnorr(data, xOnly, append(sig[:32:32], order...))
	require.ErrorIs(t, err, secp256k1ops.ErrInvalidSignature)
}
