package threshold

import (
	"github.com/lux-crypto/lamport/digest"
	"github.com/lux-crypto/lamport/lamerr"
	"github.com/lux-crypto/lamport/matrix"
)

// SignatureShare is one party's GF(256) Shamir share of a Signature, carrying
// the same identifier and threshold as the SigningKeyShare that produced it.
type SignatureShare struct {
	id        byte
	threshold int
	bits      int
	bytes     int
	values    []byte
}

// bitAt returns bit i of digest (0 or 1): position 8*k+j reads bit j (least
// significant first) of byte k, matching spec.md's normative bit ordering
// and lamport.Signature's row selection, so that combining SignatureShares
// reproduces the same Signature a direct sk.Sign would have.
func bitAt(digestBytes []byte, i int) byte {
	byteIdx := i / 8
	bitIdx := i % 8
	return (digestBytes[byteIdx] >> uint(bitIdx)) & 1
}

// Sign produces this share's contribution to a signature over message. s
// must not have signed before; s is marked used on success.
func (s *SigningKeyShare) Sign(message []byte) (*SignatureShare, error) {
	if s.used {
		return nil, lamerr.ErrPrivateKeyReuse
	}
	s.used = true

	digested := s.d.Sum(message)
	values := make([]byte, s.bits*s.bytes)
	for i := 0; i < s.bits; i++ {
		bit := bitAt(digested, i)
		matrix.SelectRow(values[i*s.bytes:(i+1)*s.bytes], s.row(0, i), s.row(1, i), bit)
	}

	return &SignatureShare{id: s.id, threshold: s.threshold, bits: s.bits, bytes: s.bytes, values: values}, nil
}

// ID returns this share's Shamir identifier.
func (sh *SignatureShare) ID() byte { return sh.id }

// Bytes encodes sh to its canonical form: id(1) || threshold(1) || values(B*Y).
func (sh *SignatureShare) Bytes() []byte {
	out := make([]byte, 2+len(sh.values))
	out[0] = sh.id
	out[1] = byte(sh.threshold)
	copy(out[2:], sh.values)
	return out
}

// SignatureShareFromBytes decodes a SignatureShare for digest d from its
// canonical form. data must have length exactly 2 + B*Y.
func SignatureShareFromBytes(d digest.Digest, data []byte) (*SignatureShare, error) {
	bits, bytesPerRow := d.BitSize(), d.ByteSize()
	want := 2 + bits*bytesPerRow
	if len(data) != want {
		return nil, lamerr.ErrInvalidSignatureBytes
	}
	if data[0] == 0 || int(data[1]) < 2 {
		return nil, lamerr.ErrInvalidSignatureBytes
	}
	values := append([]byte(nil), data[2:]...)
	return &SignatureShare{id: data[0], threshold: int(data[1]), bits: bits, bytes: bytesPerRow, values: values}, nil
}
