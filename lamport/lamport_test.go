package lamport

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/lux-crypto/lamport/digest"
	"github.com/lux-crypto/lamport/lamerr"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

// seededReader returns a deterministic byte stream derived from seed, for
// reproducible test fixtures. It is a thin XOF squeeze, not a general
// purpose RNG.
func seededReader(seed []byte) io.Reader {
	h := sha3.NewShake256()
	h.Write(seed)
	return h
}

func seed3() []byte {
	s := make([]byte, 32)
	for i := range s {
		s[i] = 3
	}
	return s
}

func TestSignAndVerifySHA256(t *testing.T) {
	sk, err := NewSigningKey(digest.SHA256(), seededReader(seed3()))
	require.NoError(t, err)
	require.Equal(t, 256*32, sk.ZeroValues())
	require.Equal(t, 256*32, sk.OneValues())

	vk := DeriveVerifyingKey(sk)
	sig, err := sk.Sign([]byte("hello, world!"))
	require.NoError(t, err)

	require.NoError(t, vk.Verify(sig, []byte("hello, world!")))
	require.Error(t, vk.Verify(sig, []byte("hello, world")))
}

func TestSigningKeyNotUsedBeforeSign(t *testing.T) {
	sk, err := NewSigningKey(digest.SHA3_512(), seededReader(seed3()))
	require.NoError(t, err)
	require.Equal(t, 512*64, sk.ZeroValues())
	require.Equal(t, 512*64, sk.OneValues())
	require.False(t, sk.Used())
}

func TestSignAndVerifySHAKE128(t *testing.T) {
	sk, err := NewSigningKey(digest.SHAKE128(), rand.Reader)
	require.NoError(t, err)

	vk := DeriveVerifyingKey(sk)
	sig, err := sk.Sign([]byte("hello, world!"))
	require.NoError(t, err)

	bits, bytesPerRow := sig.Shape()
	require.Equal(t, 256, bits)
	require.Equal(t, 32, bytesPerRow)
	vbits, vbytes := vk.Shape()
	require.Equal(t, 256, vbits)
	require.Equal(t, 32, vbytes)

	require.NoError(t, vk.Verify(sig, []byte("hello, world!")))
	require.Error(t, vk.Verify(sig, []byte("hello, world")))
}

func TestKeyReuseRejected(t *testing.T) {
	sk, err := NewSigningKey(digest.SHA256(), rand.Reader)
	require.NoError(t, err)

	_, err = sk.Sign([]byte("first"))
	require.NoError(t, err)
	require.True(t, sk.Used())

	_, err = sk.Sign([]byte("second"))
	require.ErrorIs(t, err, lamerr.ErrPrivateKeyReuse)
}

func TestSigningKeyRoundTrip(t *testing.T) {
	d := digest.SHA3_256()
	sk, err := NewSigningKey(d, rand.Reader)
	require.NoError(t, err)

	data := sk.Bytes()
	sk2, err := SigningKeyFromBytes(d, data)
	require.NoError(t, err)
	require.Equal(t, data, sk2.Bytes())
}

func TestVerifyingKeyAndSignatureRoundTrip(t *testing.T) {
	d := digest.SHA3_256()
	sk, err := NewSigningKey(d, rand.Reader)
	require.NoError(t, err)
	vk := DeriveVerifyingKey(sk)

	vkData := vk.Bytes()
	vk2, err := VerifyingKeyFromBytes(d, vkData)
	require.NoError(t, err)
	require.Equal(t, vkData, vk2.Bytes())

	sig, err := sk.Sign([]byte("hello, world!"))
	require.NoError(t, err)
	sigData := sig.Bytes()
	bits, bytesPerRow := sig.Shape()
	sig2, err := SignatureFromBytes(bits, bytesPerRow, sigData)
	require.NoError(t, err)
	require.Equal(t, sigData, sig2.Bytes())
	require.NoError(t, vk2.Verify(sig2, []byte("hello, world!")))
}

func TestBatchVerify(t *testing.T) {
	d := digest.SHA256()
	var vks []*VerifyingKey
	var sigs []*Signature
	var messages [][]byte

	for i := 0; i < 4; i++ {
		sk, err := NewSigningKey(d, rand.Reader)
		require.NoError(t, err)
		vk := DeriveVerifyingKey(sk)
		msg := []byte{byte(i), byte(i), byte(i)}
		sig, err := sk.Sign(msg)
		require.NoError(t, err)

		vks = append(vks, vk)
		sigs = append(sigs, sig)
		messages = append(messages, msg)
	}

	results := BatchVerify(vks, messages, sigs)
	for i, ok := range results {
		require.True(t, ok, "signature %d should verify", i)
	}

	sigs[1] = sigs[0]
	results = BatchVerify(vks, messages, sigs)
	require.False(t, results[1])
}

func TestKeyChain(t *testing.T) {
	chain, err := NewKeyChain(digest.SHA256(), 3, rand.Reader)
	require.NoError(t, err)
	require.Equal(t, 3, chain.Remaining())

	for i := 0; i < 3; i++ {
		sk, err := chain.Current()
		require.NoError(t, err)
		vk := DeriveVerifyingKey(sk)
		sig, err := sk.Sign([]byte("chained message"))
		require.NoError(t, err)
		require.NoError(t, vk.Verify(sig, []byte("chained message")))
		require.NoError(t, chain.Advance())
	}

	require.Equal(t, 0, chain.Remaining())
	_, err = chain.Current()
	require.Error(t, err)
}

// FuzzSignVerify checks that every message that successfully signs also
// verifies, and that no input makes the verifier accept a wrong message.
func FuzzSignVerify(f *testing.F) {
	f.Add([]byte("seed1"))
	f.Add([]byte("seed2"))
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		sk, err := NewSigningKey(digest.SHA256(), rand.Reader)
		if err != nil {
			return
		}
		vk := DeriveVerifyingKey(sk)
		sig, err := sk.Sign(data)
		if err != nil {
			return
		}
		if err := vk.Verify(sig, data); err != nil {
			t.Errorf("valid signature failed verification: %v", err)
		}
		wrong := append(append([]byte(nil), data...), 0)
		if err := vk.Verify(sig, wrong); err == nil {
			t.Errorf("signature verified against a different message")
		}
	})
}
