package threshold

import (
	"io"

	"github.com/lux-crypto/lamport/digest"
	"github.com/lux-crypto/lamport/gf256"
	"github.com/lux-crypto/lamport/lamerr"
	"github.com/lux-crypto/lamport/lamport"
)

// SigningKeyShare is one party's GF(256) Shamir share of a lamport.SigningKey.
// Values holds one byte per byte of the underlying key's Z||O matrices, in
// the same positional order Split laid them out in, so that signing a
// message with a share and combining the resulting SignatureShares is
// equivalent to combining the keys first and signing once.
type SigningKeyShare struct {
	id        byte
	threshold int
	d         digest.Digest
	bits      int
	bytes     int
	values    []byte
	used      bool
}

// Split divides sk into count GF(256) Shamir shares requiring threshold of
// them to reconstruct. sk must not have been used to sign yet.
func Split(sk *lamport.SigningKey, threshold, count int, rng io.Reader) ([]*SigningKeyShare, error) {
	if sk.Used() {
		return nil, lamerr.ErrPrivateKeyReuse
	}
	bits, bytesPerRow := sk.Shape()
	zAndO := sk.Bytes()[1:] // drop the leading used byte; Z||O only

	gfShares, err := gf256.SplitSecret(zAndO, threshold, count, rng)
	if err != nil {
		return nil, err
	}

	shares := make([]*SigningKeyShare, len(gfShares))
	for i, s := range gfShares {
		shares[i] = &SigningKeyShare{
			id:        s.ID,
			threshold: threshold,
			d:         sk.Digest(),
			bits:      bits,
			bytes:     bytesPerRow,
			values:    s.Values,
		}
	}
	return shares, nil
}

// ID returns this share's Shamir identifier (1..255).
func (s *SigningKeyShare) ID() byte { return s.id }

// Threshold returns the number of shares required to reconstruct the key.
func (s *SigningKeyShare) Threshold() int { return s.threshold }

// Used reports whether this share has already produced a SignatureShare.
func (s *SigningKeyShare) Used() bool { return s.used }

// CombineSigningKey reconstructs a lamport.SigningKey from at least
// threshold shares. All shares must carry the same threshold, digest shape,
// and distinct identifiers.
func CombineSigningKey(shares []*SigningKeyShare) (*lamport.SigningKey, error) {
	if len(shares) == 0 {
		return nil, lamerr.ErrSharingMinThreshold
	}
	threshold := shares[0].threshold
	bits, bytesPerRow := shares[0].bits, shares[0].bytes
	d := shares[0].d
	usedAny := false
	gfShares := make([]gf256.Share, len(shares))
	for i, s := range shares {
		if s.threshold != threshold {
			return nil, lamerr.ErrThresholdMismatch
		}
		if s.bits != bits || s.bytes != bytesPerRow {
			return nil, lamerr.ErrShapeMismatch
		}
		if s.used {
			usedAny = true
		}
		gfShares[i] = gf256.Share{ID: s.id, Values: s.values}
	}

	zAndO, err := gf256.CombineShares(threshold, gfShares)
	if err != nil {
		return nil, err
	}

	usedByte := byte(0)
	if usedAny {
		usedByte = 1
	}
	encoded := make([]byte, 1+len(zAndO))
	encoded[0] = usedByte
	copy(encoded[1:], zAndO)
	return lamport.SigningKeyFromBytes(d, encoded)
}

// Bytes encodes s to its canonical form: id(1) || threshold(1) || used(1) || values.
func (s *SigningKeyShare) Bytes() []byte {
	out := make([]byte, 3+len(s.values))
	out[0] = s.id
	out[1] = byte(s.threshold)
	if s.used {
		out[2] = 1
	}
	copy(out[3:], s.values)
	return out
}

// SigningKeyShareFromBytes decodes a SigningKeyShare for digest d from its
// canonical form. data must have length exactly 3 + 2*B*Y.
func SigningKeyShareFromBytes(d digest.Digest, data []byte) (*SigningKeyShare, error) {
	bits, bytesPerRow := d.BitSize(), d.ByteSize()
	want := 3 + 2*bits*bytesPerRow
	if len(data) != want {
		return nil, lamerr.ErrInvalidPrivateKeyBytes
	}
	if data[0] == 0 {
		return nil, lamerr.ErrInvalidPrivateKeyBytes
	}
	if int(data[1]) < 2 {
		return nil, lamerr.ErrInvalidPrivateKeyBytes
	}
	values := append([]byte(nil), data[3:]...)
	return &SigningKeyShare{
		id:        data[0],
		threshold: int(data[1]),
		used:      data[2] == 1,
		d:         d,
		bits:      bits,
		bytes:     bytesPerRow,
		values:    values,
	}, nil
}

// row returns the values slice for the given matrix (0 = Z, 1 = O) and row i.
func (s *SigningKeyShare) row(which, i int) []byte {
	half := s.bits * s.bytes
	start := which*half + i*s.bytes
	return s.values[start : start+s.bytes]
}
