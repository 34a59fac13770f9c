// Package threshold splits a Lamport SigningKey into GF(256) Shamir shares
// and lets the holders of t-of-n shares jointly produce a signature the
// original VerifyingKey accepts, without ever reconstructing the whole
// signing key in one place until (optionally) CombineSigningKey is called.
//
// Each SigningKeyShare independently produces a SignatureShare over a
// message; CombineSignature reconstructs the full Signature via Lagrange
// interpolation, exactly as gf256.CombineShares reconstructs a secret.
package threshold

import (
	"errors"

	"github.com/lux-crypto/lamport/digest"
	"github.com/lux-crypto/lamport/matrix"
)

// Config describes a threshold signing ceremony's shape: how many shares
// are required (Threshold) out of how many exist (TotalParties), and an
// identifier for the local party running this process.
type Config struct {
	Threshold    int
	TotalParties int
	PartyID      string
}

var (
	// ErrInvalidThreshold indicates invalid threshold parameters.
	ErrInvalidThreshold = errors.New("threshold: invalid threshold (must be 2 <= t <= n)")

	// ErrCommitmentMismatch indicates parties disagreed on the message
	// during the digest-commitment round.
	ErrCommitmentMismatch = errors.New("threshold: commitment does not match message")
)

// NewConfig validates and constructs a Config.
func NewConfig(threshold, totalParties int, partyID string) (*Config, error) {
	if threshold < 2 || threshold > totalParties {
		return nil, ErrInvalidThreshold
	}
	return &Config{Threshold: threshold, TotalParties: totalParties, PartyID: partyID}, nil
}

// DigestCommitment is a party's commitment to a message before any signing
// material is revealed: commitment = d.Sum(message || partyID). Broadcasting
// this first and checking agreement lets every party confirm they are about
// to sign the same bytes before any share data crosses the wire.
type DigestCommitment struct {
	PartyID    string
	Commitment []byte
}

// CreateDigestCommitment commits party c.PartyID to message under digest d.
func (c *Config) CreateDigestCommitment(d digest.Digest, message []byte) DigestCommitment {
	return DigestCommitment{
		PartyID:    c.PartyID,
		Commitment: d.Sum(append(append([]byte(nil), message...), []byte(c.PartyID)...)),
	}
}

// VerifyDigestCommitment reports whether commitment matches message under d.
func VerifyDigestCommitment(d digest.Digest, commitment DigestCommitment, message []byte) bool {
	expected := d.Sum(append(append([]byte(nil), message...), []byte(commitment.PartyID)...))
	return matrix.ConstantTimeEqual(expected, commitment.Commitment)
}
