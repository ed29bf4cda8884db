// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1ops

// Pending is the deferred result of an operation started by one of the Async
// functions.  The operation always runs to completion and there is no way to
// cancel it.
type Pending[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// goAsync runs fn on a new goroutine and returns a Pending that resolves to
// its results.
func goAsync[T any](fn func() (T, error)) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}
	go func() {
		p.val, p.err = fn()
		close(p.done)
	}()
	return p
}

// Done returns a channel that is closed once the result is available.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the operation completes and returns its results.  It is
// safe to call multiple times and from multiple goroutines.
func (p *Pending[T]) Wait() (T, error) {
	<-p.done
	return p.val, p.err
}

// ECDSASignHashAsync is the deferred form of ECDSASignHash.
func ECDSASignHashAsync(hash, privateKey []byte, opts *ECDSASignOptions) *Pending[*ECDSASignature] {
	return goAsync(func() (*ECDSASignature, error) {
		return ECDSASignHash(hash, privateKey, opts)
	})
}

// ECDSAVerifyHashAsync is the deferred form of ECDSAVerifyHash.
func ECDSAVerifyHashAsync(signature, hash, publicKey []byte) *Pending[bool] {
	return goAsync(func() (bool, error) {
		return ECDSAVerifyHash(signature, hash, publicKey)
	})
}

// ECDSASignMessageAsync is the deferred form of ECDSASignMessage.
func ECDSASignMessageAsync(message, privateKey []byte, opts *ECDSASignOptions) *Pending[*ECDSASignature] {
	return goAsync(func() (*ECDSASignature, error) {
		return ECDSASignMessage(message, privateKey, opts)
	})
}

// ECDSAVerifyMessageAsync is the deferred form of ECDSAVerifyMessage.
func ECDSAVerifyMessageAsync(signature, message, publicKey []byte) *Pending[bool] {
	return goAsync(func() (bool, error) {
		return ECDSAVerifyMessage(signature, message, publicKey)
	})
}

// SchnorrSignAsync is the deferred form of SchnorrSign.
func SchnorrSignAsync(data, privateKey, auxRand []byte) *Pending[[]byte] {
	return goAsync(func() ([]byte, error) {
		return SchnorrSign(data, privateKey, auxRand)
	})
}

// SchnorrVerifyAsync is the deferred form of SchnorrVerify.
func SchnorrVerifyAsync(signature, data, xOnly []byte) *Pending[bool] {
	return goAsync(func() (bool, error) {
		return SchnorrVerify(signature, data, xOnly)
	})
}
