// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/decred/secp256k1ops"
)

// Request is a call of a named method with named parameters.  Byte parameters
// are hex strings and boolean parameters are JSON booleans.
type Request struct {
	Method string                     `json:"method"`
	Params map[string]json.RawMessage `json:"params"`
}

// SignResult is the result of an ECDSA signing method when a recovery id was
// requested.  Signature is either []byte or a hex string depending on the
// requested format.
type SignResult struct {
	Signature any  `json:"signature"`
	Recovery  byte `json:"recovery"`
}

// handlerFunc implements a method.  The parameters have already been checked
// against the allow-list of the method.
type handlerFunc func(p *params) (any, error)

// handler pairs a method implementation with the names of the parameters it
// accepts.
type handler struct {
	options []string
	fn      handlerFunc
}

// handlers maps method names to their handlers.
var handlers = map[string]handler{
	"privateKeyIsValid": {
		options: []string{"privateKey"},
		fn:      handlePrivateKeyIsValid,
	},
	"privateKeyToPublicKey": {
		options: []string{"privateKey", "compressed", "format"},
		fn:      handlePrivateKeyToPublicKey,
	},
	"publicKeyIsValid": {
		options: []string{"publicKey", "compressed"},
		fn:      handlePublicKeyIsValid,
	},
	"publicKeyConvert": {
		options: []string{"publicKey", "compressed", "format"},
		fn:      handlePublicKeyConvert,
	},
	"publicKeyToX": {
		options: []string{"publicKey", "format"},
		fn:      handlePublicKeyToX,
	},
	"xOnlyIsValid": {
		options: []string{"xOnly"},
		fn:      handleXOnlyIsValid,
	},
	"privateKeyTweakAdd": {
		options: []string{"privateKey", "tweak", "format"},
		fn:      handlePrivateKeyTweak(secp256k1ops.PrivateKeyTweakAdd),
	},
	"privateKeyTweakSubtract": {
		options: []string{"privateKey", "tweak", "format"},
		fn:      handlePrivateKeyTweak(secp256k1ops.PrivateKeyTweakSubtract),
	},
	"privateKeyTweakNegate": {
		options: []string{"privateKey", "format"},
		fn:      handlePrivateKeyTweakNegate,
	},
	"publicKeyTweakAddPoint": {
		options: []string{"publicKey", "tweakPoint", "compressed", "format"},
		fn: handlePublicKeyTweak("publicKey", "tweakPoint",
			secp256k1ops.PublicKeyTweakAddPoint),
	},
	"publicKeyTweakAddScalar": {
		options: []string{"publicKey", "tweak", "compressed", "format"},
		fn: handlePublicKeyTweak("publicKey", "tweak",
			secp256k1ops.PublicKeyTweakAddScalar),
	},
	"publicKeyTweakMultiply": {
		options: []string{"publicKey", "tweak", "compressed", "format"},
		fn: handlePublicKeyTweak("publicKey", "tweak",
			secp256k1ops.PublicKeyTweakMultiply),
	},
	"xOnlyTweakAdd": {
		options: []string{"xOnly", "tweak", "compressed", "format"},
		fn: handlePublicKeyTweak("xOnly", "tweak",
			secp256k1ops.XOnlyTweakAdd),
	},
	"ecdsaSignHash": {
		options: []string{"hash", "privateKey", "extraEntropy", "der",
			"recovery", "format"},
		fn: handleECDSASign("hash", secp256k1ops.ECDSASignHash),
	},
	"ecdsaVerifyHash": {
		options: []string{"signature", "hash", "publicKey"},
		fn:      handleECDSAVerify("hash", secp256k1ops.ECDSAVerifyHash),
	},
	"ecdsaSignMessage": {
		options: []string{"message", "privateKey", "extraEntropy", "der",
			"recovery", "format"},
		fn: handleECDSASign("message", secp256k1ops.ECDSASignMessage),
	},
	"ecdsaVerifyMessage": {
		options: []string{"signature", "message", "publicKey"},
		fn:      handleECDSAVerify("message", secp256k1ops.ECDSAVerifyMessage),
	},
	"schnorrSign": {
		options: []string{"data", "privateKey", "extraEntropy", "format"},
		fn:      handleSchnorrSign,
	},
	"schnorrVerify": {
		options: []string{"signature", "data", "xOnly"},
		fn:      handleSchnorrVerify,
	},
}

// Methods returns the sorted names of all supported methods.
func Methods() []string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return methods
}

// AcceptsOption returns whether the method accepts the named parameter.
func AcceptsOption(method, name string) bool {
	h, ok := handlers[method]
	if !ok {
		return false
	}
	for _, option := range h.options {
		if option == name {
			return true
		}
	}
	return false
}

// Call invokes the requested method.  Returned buffers are []byte unless the
// "format" parameter selects "hex", in which case they are lowercase hex
// strings.  Validity and verification methods return a bool.
func Call(req *Request) (any, error) {
	h, ok := handlers[req.Method]
	if !ok {
		str := fmt.Sprintf("unknown method %q", req.Method)
		return nil, makeError(ErrUnknownMethod, str)
	}
	p := &params{method: req.Method, raw: req.Params}
	if err := p.checkAllowed(h.options); err != nil {
		return nil, err
	}

	log.Debugf("Calling %s", req.Method)
	result, err := h.fn(p)
	if err != nil {
		log.Debugf("%s failed: %v", req.Method, err)
		return nil, err
	}
	return result, nil
}

// encodeResult applies the requested output format to a returned buffer.
func encodeResult(p *params, b []byte, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	f, err := p.format()
	if err != nil {
		return nil, err
	}
	return f.encode(b), nil
}

// handlePrivateKeyIsValid handles the privateKeyIsValid method.  Parameters
// that are not hex strings are invalid keys rather than an error.
func handlePrivateKeyIsValid(p *params) (any, error) {
	privateKey, err := p.bytes("privateKey")
	if err != nil {
		return false, nil
	}
	return secp256k1ops.PrivateKeyIsValid(privateKey), nil
}

// handlePrivateKeyToPublicKey handles the privateKeyToPublicKey method.
func handlePrivateKeyToPublicKey(p *params) (any, error) {
	privateKey, err := p.bytes("privateKey")
	if err != nil {
		return nil, err
	}
	compression, err := p.compression()
	if err != nil {
		return nil, err
	}
	if _, err := p.format(); err != nil {
		return nil, err
	}
	publicKey, err := secp256k1ops.PrivateKeyToPublicKey(privateKey, compression)
	return encodeResult(p, publicKey, err)
}

// handlePublicKeyIsValid handles the publicKeyIsValid method.
func handlePublicKeyIsValid(p *params) (any, error) {
	compression, err := p.compression()
	if err != nil {
		return nil, err
	}
	publicKey, err := p.bytes("publicKey")
	if err != nil {
		return false, nil
	}
	return secp256k1ops.PublicKeyIsValid(publicKey, compression), nil
}

// handlePublicKeyConvert handles the publicKeyConvert method.  Unlike the
// other methods, compressed is required.
func handlePublicKeyConvert(p *params) (any, error) {
	publicKey, err := p.bytes("publicKey")
	if err != nil {
		return nil, err
	}
	compressed, err := p.bool("compressed")
	if err != nil {
		return nil, err
	}
	if _, err := p.format(); err != nil {
		return nil, err
	}
	converted, err := secp256k1ops.PublicKeyConvert(publicKey, compressed)
	return encodeResult(p, converted, err)
}

// handlePublicKeyToX handles the publicKeyToX method.
func handlePublicKeyToX(p *params) (any, error) {
	publicKey, err := p.bytes("publicKey")
	if err != nil {
		return nil, err
	}
	if _, err := p.format(); err != nil {
		return nil, err
	}
	x, err := secp256k1ops.PublicKeyToX(publicKey)
	return encodeResult(p, x, err)
}

// handleXOnlyIsValid handles the xOnlyIsValid method.
func handleXOnlyIsValid(p *params) (any, error) {
	xOnly, err := p.bytes("xOnly")
	if err != nil {
		return false, nil
	}
	return secp256k1ops.XOnlyIsValid(xOnly), nil
}

// handlePrivateKeyTweak returns a handler for a private key tweak that takes
// privateKey and tweak parameters.
func handlePrivateKeyTweak(fn func(privateKey, tweak []byte) ([]byte, error)) handlerFunc {
	return func(p *params) (any, error) {
		privateKey, err := p.bytes("privateKey")
		if err != nil {
			return nil, err
		}
		tweak, err := p.bytes("tweak")
		if err != nil {
			return nil, err
		}
		if _, err := p.format(); err != nil {
			return nil, err
		}
		result, err := fn(privateKey, tweak)
		return encodeResult(p, result, err)
	}
}

// handlePrivateKeyTweakNegate handles the privateKeyTweakNegate method.
func handlePrivateKeyTweakNegate(p *params) (any, error) {
	privateKey, err := p.bytes("privateKey")
	if err != nil {
		return nil, err
	}
	if _, err := p.format(); err != nil {
		return nil, err
	}
	result, err := secp256k1ops.PrivateKeyTweakNegate(privateKey)
	return encodeResult(p, result, err)
}

// handlePublicKeyTweak returns a handler for a public key tweak taking the
// named key and tweak parameters and the optional compressed parameter.
func handlePublicKeyTweak(keyName, tweakName string,
	fn func(key, tweak []byte, compression secp256k1ops.Compression) ([]byte, error)) handlerFunc {

	return func(p *params) (any, error) {
		key, err := p.bytes(keyName)
		if err != nil {
			return nil, err
		}
		tweak, err := p.bytes(tweakName)
		if err != nil {
			return nil, err
		}
		compression, err := p.compression()
		if err != nil {
			return nil, err
		}
		if _, err := p.format(); err != nil {
			return nil, err
		}
		result, err := fn(key, tweak, compression)
		return encodeResult(p, result, err)
	}
}

// handleECDSASign returns a handler for an ECDSA signing method that signs the
// named input parameter.
func handleECDSASign(inputName string,
	fn func(input, privateKey []byte, opts *secp256k1ops.ECDSASignOptions) (*secp256k1ops.ECDSASignature, error)) handlerFunc {

	return func(p *params) (any, error) {
		input, err := p.bytes(inputName)
		if err != nil {
			return nil, err
		}
		privateKey, err := p.bytes("privateKey")
		if err != nil {
			return nil, err
		}
		var opts secp256k1ops.ECDSASignOptions
		if opts.ExtraEntropy, err = p.ecdsaEntropy(); err != nil {
			return nil, err
		}
		if opts.DER, err = p.optBool("der", false); err != nil {
			return nil, err
		}
		if opts.Recovery, err = p.optBool("recovery", false); err != nil {
			return nil, err
		}
		f, err := p.format()
		if err != nil {
			return nil, err
		}

		sig, err := fn(input, privateKey, &opts)
		if err != nil {
			return nil, err
		}
		if !sig.Recoverable {
			return f.encode(sig.Signature), nil
		}
		return &SignResult{
			Signature: f.encode(sig.Signature),
			Recovery:  sig.RecoveryID,
		}, nil
	}
}

// handleECDSAVerify returns a handler for an ECDSA verification method that
// verifies the named input parameter.
func handleECDSAVerify(inputName string,
	fn func(signature, input, publicKey []byte) (bool, error)) handlerFunc {

	return func(p *params) (any, error) {
		signature, err := p.bytes("signature")
		if err != nil {
			return nil, err
		}
		input, err := p.bytes(inputName)
		if err != nil {
			return nil, err
		}
		publicKey, err := p.bytes("publicKey")
		if err != nil {
			return nil, err
		}
		return fn(signature, input, publicKey)
	}
}

// handleSchnorrSign handles the schnorrSign method.
func handleSchnorrSign(p *params) (any, error) {
	data, err := p.bytes("data")
	if err != nil {
		return nil, err
	}
	privateKey, err := p.bytes("privateKey")
	if err != nil {
		return nil, err
	}
	auxRand, err := p.schnorrAuxRand()
	if err != nil {
		return nil, err
	}
	if _, err := p.format(); err != nil {
		return nil, err
	}
	sig, err := secp256k1ops.SchnorrSign(data, privateKey, auxRand)
	return encodeResult(p, sig, err)
}

// handleSchnorrVerify handles the schnorrVerify method.
func handleSchnorrVerify(p *params) (any, error) {
	signature, err := p.bytes("signature")
	if err != nil {
		return nil, err
	}
	data, err := p.bytes("data")
	if err != nil {
		return nil, err
	}
	xOnly, err := p.bytes("xOnly")
	if err != nil {
		return nil, err
	}
	return secp256k1ops.SchnorrVerify(signature, data, xOnly)
}
