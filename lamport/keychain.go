package lamport

import (
	"io"

	"github.com/lux-crypto/lamport/digest"
	"github.com/lux-crypto/lamport/lamerr"
)

// KeyChain manages a sequence of one-time SigningKeys so a caller can keep
// signing without manually generating and tracking a fresh SigningKey per
// message.
type KeyChain struct {
	d       digest.Digest
	keys    []*SigningKey
	current int
}

// NewKeyChain generates a KeyChain of n fresh SigningKeys for digest d.
func NewKeyChain(d digest.Digest, n int, rng io.Reader) (*KeyChain, error) {
	if n <= 0 {
		return nil, lamerr.General("lamport: key chain length must be positive")
	}
	keys := make([]*SigningKey, n)
	for i := 0; i < n; i++ {
		sk, err := NewSigningKey(d, rng)
		if err != nil {
			return nil, err
		}
		keys[i] = sk
	}
	return &KeyChain{d: d, keys: keys, current: 0}, nil
}

// Current returns the active (unused) SigningKey, or
// lamerr.ErrPrivateKeyReuse if the chain is exhausted.
func (kc *KeyChain) Current() (*SigningKey, error) {
	if kc.current >= len(kc.keys) {
		return nil, lamerr.ErrPrivateKeyReuse
	}
	return kc.keys[kc.current], nil
}

// Advance marks the current key's slot as spent and moves to the next one.
// Call this after signing with the key returned by Current.
func (kc *KeyChain) Advance() error {
	if kc.current >= len(kc.keys) {
		return lamerr.ErrPrivateKeyReuse
	}
	kc.current++
	return nil
}

// Remaining returns the number of unused keys left in the chain.
func (kc *KeyChain) Remaining() int { return len(kc.keys) - kc.current }

// Zero wipes every key in the chain, used or not.
func (kc *KeyChain) Zero() {
	for _, sk := range kc.keys {
		sk.Zero()
	}
}
