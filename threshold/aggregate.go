package threshold

import (
	"github.com/lux-crypto/lamport/digest"
	"github.com/lux-crypto/lamport/gf256"
	"github.com/lux-crypto/lamport/lamerr"
	"github.com/lux-crypto/lamport/lamport"
	"go.uber.org/zap"
)

// CombineSignature reconstructs a full lamport.Signature from at least
// threshold SignatureShares, via the same Lagrange interpolation
// gf256.CombineShares uses to reconstruct any other GF(256) secret. All
// shares must carry the same threshold and shape.
func CombineSignature(shares []*SignatureShare) (*lamport.Signature, error) {
	if len(shares) == 0 {
		return nil, lamerr.ErrSharingMinThreshold
	}
	threshold := shares[0].threshold
	bits, bytesPerRow := shares[0].bits, shares[0].bytes
	gfShares := make([]gf256.Share, len(shares))
	for i, s := range shares {
		if s.threshold != threshold {
			return nil, lamerr.ErrThresholdMismatch
		}
		if s.bits != bits || s.bytes != bytesPerRow {
			return nil, lamerr.ErrShapeMismatch
		}
		gfShares[i] = gf256.Share{ID: s.id, Values: s.values}
	}

	values, err := gf256.CombineShares(threshold, gfShares)
	if err != nil {
		return nil, err
	}
	return lamport.SignatureFromBytes(bits, bytesPerRow, values)
}

// Coordinator drives a threshold signing ceremony for one message: a
// digest-commitment round, then collection of SignatureShares until enough
// have arrived to combine and verify a complete signature. Shares are
// refused until threshold commitments have been accepted.
type Coordinator struct {
	config  *Config
	d       digest.Digest
	vk      *lamport.VerifyingKey
	message []byte
	logger  *zap.Logger

	commitments []DigestCommitment
	shares      []*SignatureShare
	phase       int // 0: collecting commitments, 1: collecting shares, 2: done
}

// NewCoordinator creates a Coordinator for signing message against vk. A nil
// logger defaults to zap.NewNop(), matching the pack's convention of never
// requiring a logger to be wired for the library to function.
func NewCoordinator(config *Config, d digest.Digest, vk *lamport.VerifyingKey, message []byte, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		config:      config,
		d:           d,
		vk:          vk,
		message:     message,
		logger:      logger,
		commitments: make([]DigestCommitment, 0, config.TotalParties),
		shares:      make([]*SignatureShare, 0, config.Threshold),
		phase:       0,
	}
}

// AddCommitment records a digest commitment (phase 0). Returns true once
// enough commitments have arrived to move to phase 1.
func (c *Coordinator) AddCommitment(commitment DigestCommitment) (bool, error) {
	if c.phase != 0 {
		return false, lamerr.General("threshold: not in commitment phase")
	}
	if !VerifyDigestCommitment(c.d, commitment, c.message) {
		return false, ErrCommitmentMismatch
	}
	c.commitments = append(c.commitments, commitment)
	c.logger.Info("received digest commitment", zap.String("party", commitment.PartyID), zap.Int("have", len(c.commitments)))

	if len(c.commitments) >= c.config.Threshold {
		c.phase = 1
		return true, nil
	}
	return false, nil
}

// AddShare records a SignatureShare (phase 1). Once threshold shares have
// arrived it combines and verifies them, returning the completed Signature.
func (c *Coordinator) AddShare(share *SignatureShare) (*lamport.Signature, error) {
	if c.phase != 1 {
		return nil, lamerr.General("threshold: not in share collection phase")
	}
	c.shares = append(c.shares, share)
	c.logger.Info("received signature share", zap.Uint8("id", share.id), zap.Int("have", len(c.shares)))

	if len(c.shares) < c.config.Threshold {
		return nil, nil
	}

	sig, err := CombineSignature(c.shares)
	if err != nil {
		return nil, err
	}
	if err := c.vk.Verify(sig, c.message); err != nil {
		return nil, err
	}
	c.phase = 2
	c.logger.Info("threshold signature complete")
	return sig, nil
}

// Phase returns the current protocol phase (0: commitments, 1: shares, 2: done).
func (c *Coordinator) Phase() int { return c.phase }
