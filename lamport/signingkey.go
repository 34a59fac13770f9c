// Package lamport implements Lamport's one-time hash-based signature
// scheme, generalized over the digest.Digest capability: random key
// generation, one-time signing, verification, and canonical byte encoding.
//
// A SigningKey MUST only be used to sign ONE message: signing twice reveals
// half of the secret key and can allow forgery of a third message. This is
// the scheme's defining property, not an implementation shortcut.
package lamport

import (
	"io"

	"github.com/lux-crypto/lamport/digest"
	"github.com/lux-crypto/lamport/lamerr"
	"github.com/lux-crypto/lamport/matrix"
)

// SigningKey is a one-time Lamport private key: two [B, Y] matrices of
// uniformly random bytes (Z holding each digest-bit's zero secret, O
// holding each digest-bit's one secret), and a single-use flag that can
// only flip from false to true.
type SigningKey struct {
	d    digest.Digest
	z, o *matrix.Matrix
	used bool
}

// NewSigningKey draws a fresh SigningKey for digest d from rng, which must
// be a cryptographically secure source (e.g. crypto/rand.Reader). Z and O
// are drawn independently.
func NewSigningKey(d digest.Digest, rng io.Reader) (*SigningKey, error) {
	z, err := d.RandomMatrix(rng)
	if err != nil {
		return nil, err
	}
	o, err := d.RandomMatrix(rng)
	if err != nil {
		return nil, err
	}
	return &SigningKey{d: d, z: z, o: o, used: false}, nil
}

// Digest returns the digest capability this key was created with.
func (sk *SigningKey) Digest() digest.Digest { return sk.d }

// Used reports whether this key has already signed a message.
func (sk *SigningKey) Used() bool { return sk.used }

// Shape returns (B, Y): the number of digest bits and bytes per row.
func (sk *SigningKey) Shape() (int, int) { return sk.z.Shape() }

// ZeroValues returns the length, in bytes, of the flattened zero-secret
// matrix, i.e. B*Y.
func (sk *SigningKey) ZeroValues() int { return sk.z.Len() }

// OneValues returns the length, in bytes, of the flattened one-secret
// matrix, i.e. B*Y.
func (sk *SigningKey) OneValues() int { return sk.o.Len() }

// ZRow returns the zero-secret row for digest-bit i.
func (sk *SigningKey) ZRow(i int) []byte { return sk.z.Row(i) }

// ORow returns the one-secret row for digest-bit i.
func (sk *SigningKey) ORow(i int) []byte { return sk.o.Row(i) }

// Zero wipes both secret matrices in place. Call this once a SigningKey is
// no longer needed, whether or not it was ever used to sign.
func (sk *SigningKey) Zero() {
	sk.z.Zero()
	sk.o.Zero()
}

// Bytes encodes sk to its canonical form: used(1) || Z(B*Y) || O(B*Y).
func (sk *SigningKey) Bytes() []byte {
	out := make([]byte, 1+sk.z.Len()+sk.o.Len())
	if sk.used {
		out[0] = 1
	}
	copy(out[1:], sk.z.Bytes())
	copy(out[1+sk.z.Len():], sk.o.Bytes())
	return out
}

// SigningKeyFromBytes decodes a SigningKey for digest d from its canonical
// form. data must have length exactly 1 + 2*B*Y, else
// lamerr.ErrInvalidPrivateKeyBytes is returned.
func SigningKeyFromBytes(d digest.Digest, data []byte) (*SigningKey, error) {
	bits, bytesPerRow := d.BitSize(), d.ByteSize()
	want := 1 + 2*bits*bytesPerRow
	if len(data) != want {
		return nil, lamerr.ErrInvalidPrivateKeyBytes
	}
	half := bits * bytesPerRow
	z, err := matrix.FromBytes(bits, bytesPerRow, append([]byte(nil), data[1:1+half]...))
	if err != nil {
		return nil, lamerr.ErrInvalidPrivateKeyBytes
	}
	o, err := matrix.FromBytes(bits, bytesPerRow, append([]byte(nil), data[1+half:]...))
	if err != nil {
		return nil, lamerr.ErrInvalidPrivateKeyBytes
	}
	return &SigningKey{d: d, z: z, o: o, used: data[0] == 1}, nil
}

// VerifyingKey is the public counterpart of a SigningKey: the digest of
// every secret row in Z and O, arranged in the same [B, Y] shape.
type VerifyingKey struct {
	d    digest.Digest
	z, o *matrix.Matrix
}

// DeriveVerifyingKey hashes every secret row of sk to produce its
// VerifyingKey. sk is not mutated or consumed.
func DeriveVerifyingKey(sk *SigningKey) *VerifyingKey {
	bits, bytesPerRow := sk.Shape()
	z := matrix.New(bits, bytesPerRow)
	o := matrix.New(bits, bytesPerRow)
	for i := 0; i < bits; i++ {
		z.SetRow(i, sk.d.Sum(sk.ZRow(i)))
		o.SetRow(i, sk.d.Sum(sk.ORow(i)))
	}
	return &VerifyingKey{d: sk.d, z: z, o: o}
}

// Digest returns the digest capability this key was derived with.
func (vk *VerifyingKey) Digest() digest.Digest { return vk.d }

// Shape returns (B, Y): the number of digest bits and bytes per row.
func (vk *VerifyingKey) Shape() (int, int) { return vk.z.Shape() }

// ZRow returns the zero-secret digest row for digest-bit i.
func (vk *VerifyingKey) ZRow(i int) []byte { return vk.z.Row(i) }

// ORow returns the one-secret digest row for digest-bit i.
func (vk *VerifyingKey) ORow(i int) []byte { return vk.o.Row(i) }

// Equal reports whether vk and other hash to identical Z and O matrices.
func (vk *VerifyingKey) Equal(other *VerifyingKey) bool {
	if other == nil {
		return false
	}
	return vk.z.Equal(other.z) && vk.o.Equal(other.o)
}

// Bytes encodes vk to its canonical form: Z(B*Y) || O(B*Y).
func (vk *VerifyingKey) Bytes() []byte {
	out := make([]byte, vk.z.Len()+vk.o.Len())
	copy(out, vk.z.Bytes())
	copy(out[vk.z.Len():], vk.o.Bytes())
	return out
}

// VerifyingKeyFromBytes decodes a VerifyingKey for digest d from its
// canonical form. data must have length exactly 2*B*Y, else
// lamerr.ErrInvalidSignatureBytes is returned.
func VerifyingKeyFromBytes(d digest.Digest, data []byte) (*VerifyingKey, error) {
	bits, bytesPerRow := d.BitSize(), d.ByteSize()
	half := bits * bytesPerRow
	if len(data) != 2*half {
		return nil, lamerr.ErrInvalidSignatureBytes
	}
	z, err := matrix.FromBytes(bits, bytesPerRow, append([]byte(nil), data[:half]...))
	if err != nil {
		return nil, lamerr.ErrInvalidSignatureBytes
	}
	o, err := matrix.FromBytes(bits, bytesPerRow, append([]byte(nil), data[half:]...))
	if err != nil {
		return nil, lamerr.ErrInvalidSignatureBytes
	}
	return &VerifyingKey{d: d, z: z, o: o}, nil
}
