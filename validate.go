// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1ops

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// These constants define the sizes of the fixed-size inputs and outputs of the
// operations in this package.
const (
	// PrivateKeySize is the size of a serialized private key.
	PrivateKeySize = 32

	// CompressedPublicKeySize is the size of a public key serialized with
	// a parity prefix and the x coordinate.
	CompressedPublicKeySize = secp256k1.PubKeyBytesLenCompressed

	// UncompressedPublicKeySize is the size of a public key serialized with
	// the 0x04 prefix and both coordinates.
	UncompressedPublicKeySize = secp256k1.PubKeyBytesLenUncompressed

	// XOnlySize is the size of an x-only public key as defined by BIP-340.
	XOnlySize = 32

	// TweakSize is the size of a serialized tweak scalar.
	TweakSize = 32

	// HashSize is the size of the digests signed by ECDSA and the data
	// signed by Schnorr.
	HashSize = 32

	// SignatureSize is the size of a compact ECDSA signature and of a
	// BIP-340 signature.
	SignatureSize = 64

	// EntropySize is the size of caller provided extra entropy.
	EntropySize = 32
)

// Compression selects the serialization of a returned public key.
type Compression uint8

const (
	// CompressionDefault uses the operation's default.  For operations
	// that transform a single public key that is the encoding of the input,
	// otherwise it is the compressed encoding.  When validating, it
	// accepts either encoding.
	CompressionDefault Compression = iota

	// CompressionCompressed selects the 33-byte encoding.
	CompressionCompressed

	// CompressionUncompressed selects the 65-byte encoding.
	CompressionUncompressed
)

// String returns the compression as a human-readable name.
func (c Compression) String() string {
	switch c {
	case CompressionDefault:
		return "default"
	case CompressionCompressed:
		return "compressed"
	case CompressionUncompressed:
		return "uncompressed"
	}
	return fmt.Sprintf("Compression(%d)", uint8(c))
}

// compressed resolves the compression to a concrete choice, using def for
// CompressionDefault.
func (c Compression) compressed(def bool) bool {
	switch c {
	case CompressionCompressed:
		return true
	case CompressionUncompressed:
		return false
	}
	return def
}

// assertSize returns ErrMalformedInput when b is not exactly size bytes.
func assertSize(name string, b []byte, size int) error {
	if len(b) != size {
		str := fmt.Sprintf("%s must be %d bytes, got %d", name, size, len(b))
		return makeError(ErrMalformedInput, str)
	}
	return nil
}

// assertPublicKeySize returns ErrMalformedInput when b does not have the
// length of either public key encoding.
func assertPublicKeySize(name string, b []byte) error {
	switch len(b) {
	case CompressedPublicKeySize, UncompressedPublicKeySize:
		return nil
	}
	str := fmt.Sprintf("%s must be %d or %d bytes, got %d", name,
		CompressedPublicKeySize, UncompressedPublicKeySize, len(b))
	return makeError(ErrMalformedInput, str)
}

// parsePrivateKey decodes a 32-byte private key and ensures it is in the
// range [1, N-1].  The caller is responsible for zeroing the returned key.
func parsePrivateKey(b []byte) (*secp256k1.PrivateKey, error) {
	if err := assertSize("private key", b, PrivateKeySize); err != nil {
		return nil, err
	}

	var d secp256k1.ModNScalar
	overflow := d.SetByteSlice(b)
	if overflow || d.IsZero() {
		d.Zero()
		return nil, makeError(ErrInvalidPrivateKey,
			"private key is not in the range [1, N-1]")
	}
	priv := secp256k1.NewPrivateKey(&d)
	d.Zero()
	return priv, nil
}

// parseTweak decodes a 32-byte tweak and ensures it is less than the group
// order.  A zero tweak is allowed.
func parseTweak(b []byte) (*secp256k1.ModNScalar, error) {
	if err := assertSize("tweak", b, TweakSize); err != nil {
		return nil, err
	}

	var t secp256k1.ModNScalar
	if overflow := t.SetByteSlice(b); overflow {
		return nil, makeError(ErrMalformedInput, "tweak is malformed: "+
			"not less than the group order")
	}
	return &t, nil
}

// parsePublicKey decodes a compressed or uncompressed public key.  Hybrid
// encodings are rejected.
func parsePublicKey(name string, b []byte) (*secp256k1.PublicKey, error) {
	if err := assertPublicKeySize(name, b); err != nil {
		return nil, err
	}

	format := b[0]
	switch {
	case len(b) == CompressedPublicKeySize &&
		(format == secp256k1.PubKeyFormatCompressedEven ||
			format == secp256k1.PubKeyFormatCompressedOdd):
	case len(b) == UncompressedPublicKeySize &&
		format == secp256k1.PubKeyFormatUncompressed:
	default:
		str := fmt.Sprintf("invalid point: unsupported %s format 0x%02x",
			name, format)
		return nil, makeError(ErrInvalidPoint, str)
	}

	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		str := fmt.Sprintf("invalid point: %v", err)
		return nil, makeError(ErrInvalidPoint, str)
	}
	return pub, nil
}

// parseXOnly decodes a BIP-340 x-only public key into the point with that x
// coordinate and an even y coordinate.
func parseXOnly(b []byte) (*secp256k1.PublicKey, error) {
	if err := assertSize("x-only public key", b, XOnlySize); err != nil {
		return nil, err
	}

	pub, err := schnorr.ParsePubKey(b)
	if err != nil {
		str := fmt.Sprintf("invalid point: %v", err)
		return nil, makeError(ErrInvalidPoint, str)
	}
	return pub, nil
}

// PrivateKeyIsValid returns whether the passed bytes are a 32-byte big-endian
// scalar in the range [1, N-1].
func PrivateKeyIsValid(privateKey []byte) bool {
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return false
	}
	priv.Zero()
	return true
}

// PublicKeyIsValid returns whether the passed bytes are a valid compressed or
// uncompressed encoding of a point on the curve.  When compression is not
// CompressionDefault, the encoding must additionally be of that kind.
func PublicKeyIsValid(publicKey []byte, compression Compression) bool {
	switch compression {
	case CompressionCompressed:
		if len(publicKey) != CompressedPublicKeySize {
			return false
		}
	case CompressionUncompressed:
		if len(publicKey) != UncompressedPublicKeySize {
			return false
		}
	}
	_, err := parsePublicKey("public key", publicKey)
	return err == nil
}

// XOnlyIsValid returns whether the passed bytes are a 32-byte x coordinate of
// a point on the curve.
func XOnlyIsValid(xOnly []byte) bool {
	_, err := parseXOnly(xOnly)
	return err == nil
}
