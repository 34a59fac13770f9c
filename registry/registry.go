// Package registry maps the digest names spec.md §6 lists onto constructors
// from the digest package, and loads ceremony profiles from TOML so a CLI
// or integration test can select an algorithm and threshold shape by name
// instead of wiring Go constructors by hand.
package registry

import (
	"sort"

	"github.com/lux-crypto/lamport/digest"
)

// constructors maps every digest name spec.md §6 lists to its constructor.
var constructors = map[string]func() digest.Digest{
	digest.NameSHA256:     digest.SHA256,
	digest.NameSHA384:     digest.SHA384,
	digest.NameSHA512:     digest.SHA512,
	digest.NameSHA3_256:   digest.SHA3_256,
	digest.NameSHA3_512:   digest.SHA3_512,
	digest.NameBLAKE2s256: digest.BLAKE2s256,
	digest.NameBLAKE2b512: digest.BLAKE2b512,
	digest.NameWhirlpool:  digest.Whirlpool,
	digest.NameSHAKE128:   digest.SHAKE128,
	digest.NameSHAKE256:   digest.SHAKE256,
}

// Lookup returns a fresh Digest for name, and false if name is not one of
// the algorithms this module supports.
func Lookup(name string) (digest.Digest, bool) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Names returns every supported digest name, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for n := range constructors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
