package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/jzelinskie/whirlpool"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// Algorithm names as they appear in spec.md §6's supported-digest table.
const (
	NameSHA256     = "SHA-256"
	NameSHA384     = "SHA-384"
	NameSHA512     = "SHA-512"
	NameSHA3_256   = "SHA3-256"
	NameSHA3_512   = "SHA3-512"
	NameBLAKE2s256 = "BLAKE2s-256"
	NameBLAKE2b512 = "BLAKE2b-512"
	NameWhirlpool  = "Whirlpool"
	NameSHAKE128   = "SHAKE-128"
	NameSHAKE256   = "SHAKE-256"
)

// SHA-256 and SHA-512 variants come from the standard library. No pack
// example reaches for a third-party replacement for SHA-2; see DESIGN.md.

// SHA256 returns a Digest over SHA-256.
func SHA256() Digest { return NewFixed(NameSHA256, sha256.New) }

// SHA384 returns a Digest over SHA-384.
func SHA384() Digest { return NewFixed(NameSHA384, sha512.New384) }

// SHA512 returns a Digest over SHA-512.
func SHA512() Digest { return NewFixed(NameSHA512, sha512.New) }

// SHA3_256 returns a Digest over SHA3-256.
func SHA3_256() Digest { return NewFixed(NameSHA3_256, sha3.New256) }

// SHA3_512 returns a Digest over SHA3-512.
func SHA3_512() Digest { return NewFixed(NameSHA3_512, sha3.New512) }

// BLAKE2s256 returns a Digest over BLAKE2s-256.
func BLAKE2s256() Digest {
	return NewFixed(NameBLAKE2s256, func() hash.Hash {
		h, err := blake2s.New256(nil)
		if err != nil {
			panic(err)
		}
		return h
	})
}

// BLAKE2b512 returns a Digest over BLAKE2b-512.
func BLAKE2b512() Digest {
	return NewFixed(NameBLAKE2b512, func() hash.Hash {
		h, err := blake2b.New512(nil)
		if err != nil {
			panic(err)
		}
		return h
	})
}

// Whirlpool returns a Digest over the Whirlpool hash function.
func Whirlpool() Digest { return NewFixed(NameWhirlpool, whirlpool.New) }

// SHAKE128 returns a Digest over SHAKE-128, canonically fixed to 32 output
// bytes per spec.md §4.A.
func SHAKE128() Digest {
	return NewExtendable(NameSHAKE128, func() xof { return sha3.NewShake128() })
}

// SHAKE256 returns a Digest over SHAKE-256, canonically fixed to 32 output
// bytes per spec.md §4.A.
func SHAKE256() Digest {
	return NewExtendable(NameSHAKE256, func() xof { return sha3.NewShake256() })
}
