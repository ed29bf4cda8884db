// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1ops

import (
	"bytes"
	"errors"
	"testing"
)

// bip340SignVectors houses the BIP-340 test vectors that include a private
// key.
var bip340SignVectors = []struct {
	name    string
	key     string
	pubKey  string
	auxRand string
	msg     string
	sig     string
}{{
	name:    "vector 0",
	key:     "0000000000000000000000000000000000000000000000000000000000000003",
	pubKey:  "f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9",
	auxRand: "0000000000000000000000000000000000000000000000000000000000000000",
	msg:     "0000000000000000000000000000000000000000000000000000000000000000",
	sig: "e907831f80848d1069a5371b402410364bdf1c5f8307b0084c55f1ce2dca8215" +
		"25f66a4a85ea8b71e482a74f382d2ce5ebeee8fdb2172f477df4900d310536c0",
}, {
	name:    "vector 1",
	key:     "b7e151628aed2a6abf7158809cf4f3c762e7160f38b4da56a784d9045190cfef",
	pubKey:  "dff1d77f2a671c5f36183726db2341be58feae1da2deced843240f7b502ba659",
	auxRand: "0000000000000000000000000000000000000000000000000000000000000001",
	msg:     "243f6a8885a308d313198a2e03707344a4093822299f31d0082efa98ec4e6c89",
	sig: "6896bd60eeae296db48a229ff71dfe071bde413e6d43f917dc8dcf8c78de3341" +
		"8906d11ac976abccb20b091292bff4ea897efcb639ea871cfa95f6de339e4b0a",
}, {
	name:    "vector 2",
	key:     "c90fdaa22168c234c4c6628b80dc1cd129024e088a67cc74020bbea63b14e5c9",
	pubKey:  "dd308afec5777e13121fa72b9cc1b7cc0139715309b086c960e18fd969774eb8",
	auxRand: "c87aa53824b4d7ae2eb035a2b5bbbccc080e76cdc6d1692c4b0b62d798e6d906",
	msg:     "7e2d58d8b3bcdf1abadec7829054f90dda9805aab56c77333024b9d0a508b75c",
	sig: "5831aaeed7b44bb74e5eab94ba9d4294c49bcf2a60728d8b4c200f50dd313c1b" +
		"ab745879a5ad954a72c45a91c3a51d3c7adea98d82f8481e0e1e03674a6f3fb7",
}, {
	name:    "vector 3",
	key:     "0b432b2677937381aef05bb02a66ecd012773062cf3fa2549e44f58ed2401710",
	pubKey:  "25d1dff95105f5253c4022f628a996ad3a0d95fbf21d468a1b33f8c160d8f517",
	auxRand: "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
	msg:     "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
	sig: "7eb0509757e246f19449885651611cb965ecc1a187dd51b64fda1edc9637d5ec" +
		"97582b9cb13db3933705b32ba982af5af25fd78881ebb32771fc5922efc66ea3",
}}

// TestSchnorrSignVectors ensures signing with pinned auxiliary randomness
// produces the BIP-340 test vector signatures and that they verify.
func TestSchnorrSignVectors(t *testing.T) {
	t.Parallel()

	for _, test := range bip340SignVectors {
		key := hexToBytes(test.key)
		msg := hexToBytes(test.msg)
		pubKey := hexToBytes(test.pubKey)

		xOnly, err := PrivateKeyToXOnly(key)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if !bytes.Equal(xOnly, pubKey) {
			t.Errorf("%s: mismatched public key -- got %x, want %x",
				test.name, xOnly, pubKey)
			continue
		}

		sig, err := SchnorrSign(msg, key, hexToBytes(test.auxRand))
		if err != nil {
			t.Errorf("%s: unexpected sign error: %v", test.name, err)
			continue
		}
		want := hexToBytes(test.sig)
		if !bytes.Equal(sig, want) {
			t.Errorf("%s: mismatched signature -- got %x, want %x",
				test.name, sig, want)
			continue
		}

		verified, err := SchnorrVerify(sig, msg, pubKey)
		if err != nil || !verified {
			t.Errorf("%s: signature did not verify: %v", test.name, err)
		}
	}
}

// TestSchnorrVerifyVectors ensures the BIP-340 verification test vectors
// produce the expected result, with structurally invalid keys and signatures
// reported as errors rather than a false result.
func TestSchnorrVerifyVectors(t *testing.T) {
	t.Parallel()

	const (
		pubKey = "dff1d77f2a671c5f36183726db2341be58feae1da2deced843240f7b502ba659"
		msg    = "243f6a8885a308d313198a2e03707344a4093822299f31d0082efa98ec4e6c89"
	)

	tests := []struct {
		name    string
		pubKey  string
		sig     string
		wantErr error
	}{{
		name:   "vector 5: public key not on the curve",
		pubKey: "eefdea4cdb677750a420fee807eacf21eb9898ae79b9768766e4faa04a2d4a34",
		sig: "6cff5c3ba86c69ea4b7376f31a9bcb4f74c1976089b2d9963da2e5543e177769" +
			"69e89b4c5564d00349106b8497785dd7d1d713a8ae82b32fa79d5f7fc407d39b",
		wantErr: ErrInvalidPoint,
	}, {
		name:   "vector 6: R has odd y",
		pubKey: pubKey,
		sig: "fff97bd5755eeea420453a14355235d382f6472f8568a18b2f057a1460297556" +
			"3cc27944640ac607cd107ae10923d9ef7a73c643e166be5ebeafa34b1ac553e2",
	}, {
		name:   "vector 7: negated message",
		pubKey: pubKey,
		sig: "1fa62e331edbc21c394792d2ab1100a7b432b013df3f6ff4f99fcb33e0e1515f" +
			"28890b3edb6e7189b630448b515ce4f8622a954cfe545735aaea5134fccdb2bd",
	}, {
		name:   "vector 9: r is zero",
		pubKey: pubKey,
		sig: "0000000000000000000000000000000000000000000000000000000000000000" +
			"123dda8328af9c23a94c1feecfd123ba4fb73476f0d594dcb65c6425bd186051",
		wantErr: ErrInvalidSignature,
	}, {
		name:   "vector 12: r equal to the field prime",
		pubKey: pubKey,
		sig: "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f" +
			"69e89b4c5564d00349106b8497785dd7d1d713a8ae82b32fa79d5f7fc407d39b",
		wantErr: ErrInvalidSignature,
	}, {
		name:   "vector 13: s equal to the group order",
		pubKey: pubKey,
		sig: "6cff5c3ba86c69ea4b7376f31a9bcb4f74c1976089b2d9963da2e5543e177769" +
			"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		wantErr: ErrInvalidSignature,
	}, {
		name:   "vector 14: public key exceeds the field size",
		pubKey: "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc30",
		sig: "6cff5c3ba86c69ea4b7376f31a9bcb4f74c1976089b2d9963da2e5543e177769" +
			"69e89b4c5564d00349106b8497785dd7d1d713a8ae82b32fa79d5f7fc407d39b",
		wantErr: ErrInvalidPoint,
	}, {
		name:   "s is zero",
		pubKey: pubKey,
		sig: "6cff5c3ba86c69ea4b7376f31a9bcb4f74c1976089b2d9963da2e5543e177769" +
			"0000000000000000000000000000000000000000000000000000000000000000",
		wantErr: ErrInvalidSignature,
	}, {
		name:   "short signature",
		pubKey: pubKey,
		sig: "6cff5c3ba86c69ea4b7376f31a9bcb4f74c1976089b2d9963da2e5543e177769" +
			"69e89b4c5564d00349106b8497785dd7d1d713a8ae82b32fa79d5f7fc407d3",
		wantErr: ErrMalformedInput,
	}}

	for _, test := range tests {
		got, err := SchnorrVerify(hexToBytes(test.sig), hexToBytes(msg),
			hexToBytes(test.pubKey))
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.wantErr)
			continue
		}
		if got {
			t.Errorf("%s: invalid signature verified", test.name)
		}
	}
}

// TestSchnorrSignEntropy ensures signing without auxiliary randomness differs
// between calls, pinned randomness is reproducible, and malformed inputs are
// rejected.
func TestSchnorrSignEntropy(t *testing.T) {
	t.Parallel()

	key := hexToBytes(bip340SignVectors[1].key)
	pubKey := hexToBytes(bip340SignVectors[1].pubKey)
	msg := hexToBytes(bip340SignVectors[1].msg)

	sig1, err := SchnorrSign(msg, key, nil)
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}
	sig2, err := SchnorrSign(msg, key, nil)
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}
	if bytes.Equal(sig1, sig2) {
		t.Fatalf("random aux produced identical signatures %x", sig1)
	}
	for _, sig := range [][]byte{sig1, sig2} {
		verified, err := SchnorrVerify(sig, msg, pubKey)
		if err != nil || !verified {
			t.Fatalf("signature %x did not verify: %v", sig, err)
		}
	}

	zeroAux := make([]byte, EntropySize)
	pinned1, err := SchnorrSign(msg, key, zeroAux)
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}
	pinned2, err := SchnorrSign(msg, key, zeroAux)
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}
	if !bytes.Equal(pinned1, pinned2) {
		t.Fatalf("pinned aux is not reproducible: %x vs %x", pinned1, pinned2)
	}

	tests := []struct {
		name    string
		msg     []byte
		key     []byte
		aux     []byte
		wantErr error
	}{
		{"short data", msg[:31], key, zeroAux, ErrMalformedInput},
		{"long data", append(msg, 0), key, zeroAux, ErrMalformedInput},
		{"short aux", msg, key, zeroAux[:31], ErrMalformedInput},
		{"empty aux", msg, key, []byte{}, ErrMalformedInput},
		{"zero key", msg, hexToBytes(scalarZero), zeroAux, ErrInvalidPrivateKey},
		{"key equal to N", msg, hexToBytes(scalarN), zeroAux, ErrInvalidPrivateKey},
	}
	for _, test := range tests {
		sig, err := SchnorrSign(test.msg, test.key, test.aux)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.wantErr)
			continue
		}
		if sig != nil {
			t.Errorf("%s: partial result %x returned", test.name, sig)
		}
	}
}
