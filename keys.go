// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1ops

import (
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// serializePubKey returns a newly allocated encoding of the public key.
func serializePubKey(pub *secp256k1.PublicKey, compressed bool) []byte {
	if compressed {
		return pub.SerializeCompressed()
	}
	return pub.SerializeUncompressed()
}

// PrivateKeyToPublicKey returns the public key d*G for the passed private key
// d.  CompressionDefault produces the compressed encoding.
func PrivateKeyToPublicKey(privateKey []byte, compression Compression) ([]byte, error) {
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	return serializePubKey(priv.PubKey(), compression.compressed(true)), nil
}

// PrivateKeyToXOnly returns the BIP-340 x-only public key for the passed
// private key.
func PrivateKeyToXOnly(privateKey []byte) ([]byte, error) {
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	return schnorr.SerializePubKey(priv.PubKey()), nil
}

// PublicKeyConvert re-encodes a valid public key with the requested
// compression.  The result is always a copy, even when the encoding is
// unchanged.
func PublicKeyConvert(publicKey []byte, compressed bool) ([]byte, error) {
	pub, err := parsePublicKey("public key", publicKey)
	if err != nil {
		return nil, err
	}
	return serializePubKey(pub, compressed), nil
}

// PublicKeyToX returns the 32-byte x coordinate of a valid public key, which
// is its BIP-340 x-only encoding.
func PublicKeyToX(publicKey []byte) ([]byte, error) {
	pub, err := parsePublicKey("public key", publicKey)
	if err != nil {
		return nil, err
	}
	return schnorr.SerializePubKey(pub), nil
}
