package lamport

import (
	"github.com/lux-crypto/lamport/lamerr"
	"github.com/lux-crypto/lamport/matrix"
)

// Verify checks sig against vk and message, hashing every revealed row and
// comparing the full set to the expected rows in constant time: every row
// is checked regardless of earlier mismatches, and mismatches accumulate
// into one OR rather than branching on each row's result, so the number of
// rows checked never depends on where (or whether) a mismatch occurs.
//
// Returns lamerr.ErrInvalidSignatureBytes if sig's shape does not match vk,
// lamerr.ErrVerificationFailed if the signature does not verify, and nil on
// success.
func (vk *VerifyingKey) Verify(sig *Signature, message []byte) error {
	bits, bytesPerRow := vk.Shape()
	sigBits, sigBytes := sig.Shape()
	if bits != sigBits || bytesPerRow != sigBytes {
		return lamerr.ErrInvalidSignatureBytes
	}

	digested := vk.d.Sum(message)
	expected := matrix.New(bits, bytesPerRow)
	actual := matrix.New(bits, bytesPerRow)
	for i := 0; i < bits; i++ {
		bit := bitAt(digested, i)
		matrix.SelectRow(expected.Row(i), vk.ZRow(i), vk.ORow(i), bit)
		actual.SetRow(i, vk.d.Sum(sig.Row(i)))
	}

	if !matrix.ConstantTimeEqual(expected.Bytes(), actual.Bytes()) {
		return lamerr.ErrVerificationFailed
	}
	return nil
}

// BatchVerify verifies a list of (verifying key, message, signature)
// triples and reports which ones verified. The three slices must have
// equal length, else every result is false.
func BatchVerify(vks []*VerifyingKey, messages [][]byte, sigs []*Signature) []bool {
	n := len(vks)
	results := make([]bool, n)
	if len(messages) != n || len(sigs) != n {
		return results
	}
	for i := 0; i < n; i++ {
		results[i] = vks[i].Verify(sigs[i], messages[i]) == nil
	}
	return results
}
