package lamport

import (
	"github.com/lux-crypto/lamport/lamerr"
	"github.com/lux-crypto/lamport/matrix"
)

// Signature is a Lamport signature: one revealed secret row per digest bit,
// arranged as a [B, Y] matrix.
type Signature struct {
	rows *matrix.Matrix
}

// Shape returns (B, Y): the number of digest bits and bytes per row.
func (sig *Signature) Shape() (int, int) { return sig.rows.Shape() }

// Row returns the revealed secret row for digest-bit i.
func (sig *Signature) Row(i int) []byte { return sig.rows.Row(i) }

// Bytes encodes sig to its canonical form: B rows of Y bytes, concatenated.
func (sig *Signature) Bytes() []byte { return sig.rows.Bytes() }

// bitAt returns bit i of digest (0 or 1): position 8*k+j reads bit j (least
// significant first) of byte k, matching spec.md's normative bit ordering.
func bitAt(digestBytes []byte, i int) byte {
	byteIdx := i / 8
	bitIdx := i % 8
	return (digestBytes[byteIdx] >> uint(bitIdx)) & 1
}

// Sign produces a one-time Lamport signature over message using sk, which
// must not have signed before. sk is marked used on success; calling Sign
// again on the same key, even after an error, returns
// lamerr.ErrPrivateKeyReuse.
func (sk *SigningKey) Sign(message []byte) (*Signature, error) {
	if sk.used {
		return nil, lamerr.ErrPrivateKeyReuse
	}
	sk.used = true

	digested := sk.d.Sum(message)
	bits, bytesPerRow := sk.Shape()
	rows := matrix.New(bits, bytesPerRow)
	for i := 0; i < bits; i++ {
		bit := bitAt(digested, i)
		matrix.SelectRow(rows.Row(i), sk.ZRow(i), sk.ORow(i), bit)
	}
	return &Signature{rows: rows}, nil
}

// SignatureFromBytes decodes a Signature of shape [bits, bytesPerRow] from
// its canonical form. data must have length exactly bits*bytesPerRow, else
// lamerr.ErrInvalidSignatureBytes is returned.
func SignatureFromBytes(bits, bytesPerRow int, data []byte) (*Signature, error) {
	rows, err := matrix.FromBytes(bits, bytesPerRow, append([]byte(nil), data...))
	if err != nil {
		return nil, lamerr.ErrInvalidSignatureBytes
	}
	return &Signature{rows: rows}, nil
}
