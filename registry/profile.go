package registry

import (
	"bytes"
	"errors"
	"io"

	"github.com/BurntSushi/toml"
)

// Profile describes a ceremony's fixed parameters the way a config file or
// integration test fixture would supply them: which digest to sign with,
// and the threshold shape if the signing key is to be split at all.
type Profile struct {
	Digest       string `toml:"digest"`
	Threshold    int    `toml:"threshold,omitempty"`
	TotalParties int    `toml:"total_parties,omitempty"`
}

// ParseProfile decodes a Profile from TOML bytes and validates that its
// digest name is one this module supports.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return nil, err
	}
	if _, ok := constructors[p.Digest]; !ok {
		return nil, errors.New("registry: unknown digest name in profile: " + p.Digest)
	}
	if p.Threshold != 0 && p.Threshold < 2 {
		return nil, errors.New("registry: profile threshold must be at least 2 when set")
	}
	if p.Threshold != 0 && p.TotalParties < p.Threshold {
		return nil, errors.New("registry: profile total_parties must be at least threshold")
	}
	return &p, nil
}

// WriteProfile encodes p as TOML to w.
func WriteProfile(w io.Writer, p *Profile) error {
	return toml.NewEncoder(w).Encode(p)
}
