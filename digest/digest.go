// Package digest abstracts the cryptographic hash function this scheme is
// built over. Concrete algorithms (SHA-2, SHA-3, BLAKE2, Whirlpool, SHAKE)
// are collaborators selected by the caller, never hard-coded into the
// signing/verification logic — see spec.md §4.A.
//
// A Digest exposes three core operations: its output size in bits, a
// deterministic digest function, and a way to draw a freshly randomized
// [bits, bytes] matrix for key generation; it also reports its name and its
// output size in bytes. Two shapes are supported: Fixed,
// for hash functions with a native output size, and Extendable, for XOFs
// (SHAKE), which this package canonically pins to 32 output bytes (256
// bits) per spec.md §4.A — callers may not vary that length.
package digest

import (
	"hash"
	"io"

	"github.com/lux-crypto/lamport/lamerr"
	"github.com/lux-crypto/lamport/matrix"
)

// ExtendableOutputSize is the canonical output length, in bytes, this
// package requests from an XOF-backed Digest. It is fixed by design; see
// spec.md's Design Notes on "Extendable-output canonical length."
const ExtendableOutputSize = 32

// Digest is the capability this scheme needs from a hash function: its
// output size, a pure digest operation, and a way to fill a key matrix with
// cryptographically random bytes.
type Digest interface {
	// Name identifies the algorithm, e.g. "SHA-256" or "SHAKE-128".
	Name() string

	// BitSize returns B, the digest output size in bits. B is always a
	// positive multiple of 8.
	BitSize() int

	// ByteSize returns Y = B/8.
	ByteSize() int

	// Sum returns the Y-byte digest of data. Sum is a pure function of its
	// input: no hidden state, no side effects.
	Sum(data []byte) []byte

	// RandomMatrix returns a freshly allocated [BitSize, ByteSize] matrix of
	// uniformly random bytes drawn from rng, which must be a
	// cryptographically secure source.
	RandomMatrix(rng io.Reader) (*matrix.Matrix, error)
}

// fixed wraps a hash function with a native output size.
type fixed struct {
	name    string
	newHash func() hash.Hash
	bytes   int
}

// NewFixed constructs a Digest over a native-output-size hash function, the
// way dchest-wots's Scheme wraps a func() hash.Hash. newHash().Size() is
// used to derive the byte size; it must be positive.
func NewFixed(name string, newHash func() hash.Hash) Digest {
	size := newHash().Size()
	if size <= 0 {
		panic("digest: hash output size must be positive")
	}
	return &fixed{name: name, newHash: newHash, bytes: size}
}

func (f *fixed) Name() string  { return f.name }
func (f *fixed) ByteSize() int { return f.bytes }
func (f *fixed) BitSize() int  { return f.bytes * 8 }

func (f *fixed) Sum(data []byte) []byte {
	h := f.newHash()
	h.Write(data)
	return h.Sum(nil)
}

func (f *fixed) RandomMatrix(rng io.Reader) (*matrix.Matrix, error) {
	return matrix.Random(f.BitSize(), f.ByteSize(), rng)
}

// xof is the interface satisfied by golang.org/x/crypto/sha3's ShakeHash
// (and any other extendable-output hash with a Read-based squeeze step).
type xof interface {
	io.Writer
	io.Reader
	Reset()
}

// extendable wraps an XOF, pinning its output to ExtendableOutputSize bytes.
type extendable struct {
	name   string
	newXOF func() xof
}

// NewExtendable constructs a Digest over an XOF (e.g. SHAKE-128/256),
// canonically fixed to ExtendableOutputSize bytes per spec.md §4.A.
func NewExtendable(name string, newXOF func() xof) Digest {
	return &extendable{name: name, newXOF: newXOF}
}

func (e *extendable) Name() string  { return e.name }
func (e *extendable) ByteSize() int { return ExtendableOutputSize }
func (e *extendable) BitSize() int  { return ExtendableOutputSize * 8 }

func (e *extendable) Sum(data []byte) []byte {
	h := e.newXOF()
	h.Write(data)
	out := make([]byte, ExtendableOutputSize)
	if _, err := io.ReadFull(h, out); err != nil {
		// A XOF squeeze of a fixed, small length cannot fail short of a
		// broken implementation; treat it as the programming-bug case
		// spec.md §7 reserves for internal invariants.
		panic(lamerr.General("digest: xof squeeze failed: " + err.Error()))
	}
	return out
}

func (e *extendable) RandomMatrix(rng io.Reader) (*matrix.Matrix, error) {
	return matrix.Random(e.BitSize(), e.ByteSize(), rng)
}
