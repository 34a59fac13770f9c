package lamport_test

import (
	"crypto/rand"
	"fmt"

	"github.com/lux-crypto/lamport/digest"
	"github.com/lux-crypto/lamport/lamport"
)

// Example demonstrates the basic one-time sign/verify flow: generate a
// SigningKey, derive its VerifyingKey, sign a message once, and verify it.
func Example() {
	sk, err := lamport.NewSigningKey(digest.SHA256(), rand.Reader)
	if err != nil {
		panic(err)
	}
	vk := lamport.DeriveVerifyingKey(sk)

	sig, err := sk.Sign([]byte("hello, world!"))
	if err != nil {
		panic(err)
	}

	fmt.Println(vk.Verify(sig, []byte("hello, world!")))
	// Output:
	// <nil>
}
