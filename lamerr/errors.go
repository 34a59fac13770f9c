// Package lamerr centralizes the error values used across the lamport
// signature and GF(256) threshold layers, mirroring the way the teacher's
// primitives package keeps one set of sentinel errors and the way
// original_source/src/error.rs keeps one LamportError enum.
//
// Errors propagate to the caller; nothing in this module retries or panics
// on recoverable input, and the only logging is threshold.Coordinator's
// protocol-phase logging. A panic here indicates a broken internal
// invariant, not bad caller input.
package lamerr

import "errors"

var (
	// ErrPrivateKeyReuse is returned when Sign is called a second time on a
	// SigningKey or SigningKeyShare whose used flag is already set.
	ErrPrivateKeyReuse = errors.New("lamport: private key already used (one-time property violated)")

	// ErrInvalidPrivateKeyBytes is returned when decoding a signing key or
	// signing-key share from a byte blob of the wrong length, or a share
	// with id == 0 or threshold < 2.
	ErrInvalidPrivateKeyBytes = errors.New("lamport: invalid private key bytes")

	// ErrInvalidSignatureBytes is returned when decoding a signature or
	// signature share from a byte blob of the wrong length, or when
	// verifying a signature whose shape does not match the verifying key.
	ErrInvalidSignatureBytes = errors.New("lamport: invalid signature bytes")

	// ErrVerificationFailed is returned when a signature fails to verify
	// against a verifying key and message.
	ErrVerificationFailed = errors.New("lamport: signature verification failed")

	// ErrSharingMinThreshold is returned when combining fewer shares than
	// the embedded threshold requires.
	ErrSharingMinThreshold = errors.New("lamport: fewer shares supplied than the required threshold")

	// ErrDuplicateShareID is returned when two or more shares passed to a
	// combine operation carry the same identifier; Lagrange interpolation
	// is singular in that case. The scheme's own documentation flags this
	// as something implementations should reject explicitly.
	ErrDuplicateShareID = errors.New("lamport: duplicate share identifier")

	// ErrShapeMismatch is returned when shares or matrices expected to share
	// a shape do not.
	ErrShapeMismatch = errors.New("lamport: shape mismatch")

	// ErrThresholdMismatch is returned when shares expected to share a
	// threshold do not.
	ErrThresholdMismatch = errors.New("lamport: threshold mismatch")
)

// GeneralError is a parameter-out-of-range error carrying a free-form
// message, used where no single sentinel value fits (e.g. "share count
// exceeds 255").
type GeneralError struct {
	Msg string
}

func (e *GeneralError) Error() string { return "lamport: " + e.Msg }

// General constructs a GeneralError with the given message.
func General(msg string) error {
	return &GeneralError{Msg: msg}
}

// IoError wraps an underlying I/O failure from an optional streaming codec.
type IoError struct {
	Err error
}

func (e *IoError) Error() string { return "lamport: io error: " + e.Err.Error() }

func (e *IoError) Unwrap() error { return e.Err }

// WrapIo wraps err as an IoError. Returns nil if err is nil.
func WrapIo(err error) error {
	if err == nil {
		return nil
	}
	return &IoError{Err: err}
}
