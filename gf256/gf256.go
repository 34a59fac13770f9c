// Package gf256 implements arithmetic in GF(2^8) under the AES reducing
// polynomial x^8 + x^4 + x^3 + x + 1 (0x11B), and Shamir secret sharing of
// byte slices over that field. This is the layer spec.md §4.G describes:
// splitting each secret byte independently into n shares of a degree-(t-1)
// polynomial with f(0) = secret, and reconstructing via Lagrange
// interpolation at x = 0.
//
// The share-encoding and interpolation structure mirrors the
// string-per-share approach in the sigil project's internal/shamir package,
// generalized here to operate on whole byte slices per call instead of one
// secret byte at a time, and to carry shares as structured values instead of
// formatted strings.
package gf256

import (
	"io"

	"github.com/lux-crypto/lamport/lamerr"
)

var expTable, logTable [256]byte

func init() {
	// Build exp/log tables for GF(2^8) under 0x11B by the standard
	// generator-walk construction (generator 3).
	x := byte(1)
	for i := 0; i < 255; i++ {
		expTable[i] = x
		logTable[x] = byte(i)
		x = mulSlow(x, 3)
	}
	expTable[255] = expTable[0]
}

// mulSlow multiplies a and b in GF(2^8) by long multiplication with
// reduction, used only to bootstrap the log/exp tables above.
func mulSlow(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1B
		}
		b >>= 1
	}
	return p
}

// Add returns a+b in GF(2^8), which is XOR.
func Add(a, b byte) byte { return a ^ b }

// Sub returns a-b in GF(2^8), identical to Add since the field has
// characteristic 2.
func Sub(a, b byte) byte { return a ^ b }

// Mul returns a*b in GF(2^8) via the precomputed log/exp tables.
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	sum := int(logTable[a]) + int(logTable[b])
	if sum >= 255 {
		sum -= 255
	}
	return expTable[sum]
}

// Div returns a/b in GF(2^8). b must be non-zero.
func Div(a, b byte) byte {
	if b == 0 {
		panic("gf256: division by zero")
	}
	if a == 0 {
		return 0
	}
	diff := int(logTable[a]) - int(logTable[b])
	if diff < 0 {
		diff += 255
	}
	return expTable[diff]
}

// Eval evaluates the polynomial with the given coefficients (coeffs[0] is
// the constant term, i.e. the secret byte) at point x, in GF(2^8), using
// Horner's method.
func Eval(coeffs []byte, x byte) byte {
	var result byte
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = Add(Mul(result, x), coeffs[i])
	}
	return result
}

// Share is one party's (x, f(x)) pair for every byte of a split secret: ID
// is the x-coordinate (1..255) and Values holds one output byte per input
// secret byte, in the same positional order as the secret.
type Share struct {
	ID     byte
	Values []byte
}

// SplitSecret splits secret into count shares requiring threshold of them to
// reconstruct. Each byte of secret gets its own independent degree-(threshold-1)
// polynomial with the secret byte as the constant term and uniformly random
// higher coefficients; share i carries the evaluation at x = i for every
// byte, in positional order, matching spec.md §4.C's Split description.
func SplitSecret(secret []byte, threshold, count int, rng io.Reader) ([]Share, error) {
	if threshold < 2 || count < threshold {
		return nil, lamerr.General("gf256: threshold must satisfy 2 <= threshold <= count")
	}
	if count > 255 {
		return nil, lamerr.General("gf256: count must not exceed 255")
	}
	if len(secret) == 0 {
		return nil, lamerr.General("gf256: secret must not be empty")
	}

	coeffs := make([]byte, len(secret)*(threshold-1))
	if _, err := io.ReadFull(rng, coeffs); err != nil {
		return nil, err
	}

	shares := make([]Share, count)
	for s := 0; s < count; s++ {
		id := byte(s + 1)
		values := make([]byte, len(secret))
		for i, secretByte := range secret {
			poly := make([]byte, threshold)
			poly[0] = secretByte
			copy(poly[1:], coeffs[i*(threshold-1):(i+1)*(threshold-1)])
			values[i] = Eval(poly, id)
		}
		shares[s] = Share{ID: id, Values: values}
	}
	return shares, nil
}

// CombineShares reconstructs the secret from shares via Lagrange
// interpolation at x = 0, requiring at least threshold shares with distinct,
// non-zero identifiers and identical value lengths.
func CombineShares(threshold int, shares []Share) ([]byte, error) {
	if len(shares) < threshold {
		return nil, lamerr.ErrSharingMinThreshold
	}

	seen := make(map[byte]bool, len(shares))
	secretLen := len(shares[0].Values)
	for _, s := range shares {
		if s.ID == 0 {
			return nil, lamerr.General("gf256: share identifier must not be zero")
		}
		if seen[s.ID] {
			return nil, lamerr.ErrDuplicateShareID
		}
		seen[s.ID] = true
		if len(s.Values) != secretLen {
			return nil, lamerr.ErrShapeMismatch
		}
	}

	// Lagrange weights depend only on the set of x-coordinates, so compute
	// them once and reuse across every byte position.
	weights := make([]byte, len(shares))
	for i, si := range shares {
		weight := byte(1)
		for j, sj := range shares {
			if i == j {
				continue
			}
			weight = Mul(weight, Div(sj.ID, Sub(sj.ID, si.ID)))
		}
		weights[i] = weight
	}

	secret := make([]byte, secretLen)
	for i := 0; i < secretLen; i++ {
		var acc byte
		for j, s := range shares {
			acc = Add(acc, Mul(s.Values[i], weights[j]))
		}
		secret[i] = acc
	}
	return secret, nil
}
