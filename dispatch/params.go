// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/decred/secp256k1ops"
)

// format identifies the encoding of returned buffers.
type format string

const (
	formatBytes format = "bytes"
	formatHex   format = "hex"
)

// jsonNull is the JSON encoding of null.
var jsonNull = []byte("null")

// params provides typed access to the named arguments of a request.
type params struct {
	method string
	raw    map[string]json.RawMessage
}

// malformed returns an ErrMalformedInput error for the named parameter.
func (p *params) malformed(name, format string, args ...any) error {
	str := fmt.Sprintf("%s: %s: %s", p.method, name, fmt.Sprintf(format, args...))
	return makeError(secp256k1ops.ErrMalformedInput, str)
}

// checkAllowed returns ErrUnexpectedOption when any parameter is not in the
// passed allow-list.
func (p *params) checkAllowed(allowed []string) error {
	var unexpected []string
	for name := range p.raw {
		found := false
		for _, a := range allowed {
			if name == a {
				found = true
				break
			}
		}
		if !found {
			unexpected = append(unexpected, name)
		}
	}
	if len(unexpected) == 0 {
		return nil
	}
	sort.Strings(unexpected)
	str := fmt.Sprintf("%s: unexpected options %q", p.method, unexpected)
	return makeError(secp256k1ops.ErrUnexpectedOption, str)
}

// lookup returns the raw value of the named parameter and whether it was
// provided.
func (p *params) lookup(name string) (json.RawMessage, bool) {
	v, ok := p.raw[name]
	return v, ok
}

// decodeHex decodes a JSON string of hex into bytes.
func (p *params) decodeHex(name string, v json.RawMessage) ([]byte, error) {
	var s string
	if bytes.Equal(v, jsonNull) || json.Unmarshal(v, &s) != nil {
		return nil, p.malformed(name, "expected a hex string")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, p.malformed(name, "invalid hex: %v", err)
	}
	return b, nil
}

// bytes returns the required byte parameter with the passed name.
func (p *params) bytes(name string) ([]byte, error) {
	v, ok := p.lookup(name)
	if !ok {
		return nil, p.malformed(name, "required parameter is missing")
	}
	return p.decodeHex(name, v)
}

// optBool returns the named boolean parameter or def when it is not provided.
func (p *params) optBool(name string, def bool) (bool, error) {
	v, ok := p.lookup(name)
	if !ok {
		return def, nil
	}
	var b bool
	if bytes.Equal(v, jsonNull) || json.Unmarshal(v, &b) != nil {
		return false, p.malformed(name, "expected a boolean")
	}
	return b, nil
}

// bool returns the required boolean parameter with the passed name.
func (p *params) bool(name string) (bool, error) {
	if _, ok := p.lookup(name); !ok {
		return false, p.malformed(name, "required parameter is missing")
	}
	return p.optBool(name, false)
}

// compression returns the compression selected by the optional "compressed"
// boolean.
func (p *params) compression() (secp256k1ops.Compression, error) {
	if _, ok := p.lookup("compressed"); !ok {
		return secp256k1ops.CompressionDefault, nil
	}
	compressed, err := p.optBool("compressed", false)
	if err != nil {
		return secp256k1ops.CompressionDefault, err
	}
	if compressed {
		return secp256k1ops.CompressionCompressed, nil
	}
	return secp256k1ops.CompressionUncompressed, nil
}

// ecdsaEntropy returns the ECDSA extra entropy.  It is random when absent or
// true, disabled when null, and fixed when a hex string.
func (p *params) ecdsaEntropy() (secp256k1ops.Entropy, error) {
	const name = "extraEntropy"
	v, ok := p.lookup(name)
	if !ok {
		return secp256k1ops.RandomEntropy(), nil
	}
	if bytes.Equal(v, jsonNull) {
		return secp256k1ops.NoEntropy, nil
	}
	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		if !b {
			return secp256k1ops.Entropy{}, p.malformed(name,
				"expected true, null, or a hex string")
		}
		return secp256k1ops.RandomEntropy(), nil
	}
	data, err := p.decodeHex(name, v)
	if err != nil {
		return secp256k1ops.Entropy{}, err
	}
	return secp256k1ops.FixedEntropy(data), nil
}

// schnorrAuxRand returns the BIP-340 auxiliary randomness, or nil to draw it
// randomly when it is absent.
func (p *params) schnorrAuxRand() ([]byte, error) {
	v, ok := p.lookup("extraEntropy")
	if !ok {
		return nil, nil
	}
	return p.decodeHex("extraEntropy", v)
}

// format returns the selected output format.
func (p *params) format() (format, error) {
	v, ok := p.lookup("format")
	if !ok {
		return formatBytes, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", p.malformed("format", "expected a string")
	}
	switch f := format(s); f {
	case formatBytes, formatHex:
		return f, nil
	}
	return "", p.malformed("format", "unknown format %q", s)
}

// encode applies the output format to a returned buffer.
func (f format) encode(b []byte) any {
	if f == formatHex {
		return hex.EncodeToString(b)
	}
	return b
}
