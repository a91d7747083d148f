package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// profile mirrors the subset of Options a presets file can override.
// Pointer fields distinguish "absent from the file" from "explicitly
// set to the zero value", so that flags retain precedence over
// unset preset fields and a preset can still retain precedence over
// an untouched flag default.
type profile struct {
	Seed   *uint64 `yaml:"seed"`
	Attack *string `yaml:"attack"`

	Rounds      *uint32 `yaml:"rounds"`
	MessageBits *uint32 `yaml:"message-bits"`
	HashBits    *uint32 `yaml:"hash-bits"`

	CNF *bool `yaml:"cnf"`
	OPB *bool `yaml:"opb"`

	TseitinAdders     *bool `yaml:"tseitin-adders"`
	XorClauses        *bool `yaml:"xor"`
	HalfAdderNative   *bool `yaml:"halfadder"`
	RestrictBranching *bool `yaml:"restrict-branching"`
	CompactAdders     *bool `yaml:"compact-adders"`
}

// LoadProfiles parses a YAML document mapping preset name to a
// partial set of options, as consumed by --profile/--profiles-file.
func LoadProfiles(path string) (map[string]profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading profiles file %q", path)
	}

	var profiles map[string]profile
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, errors.Wrapf(err, "parsing profiles file %q", path)
	}
	return profiles, nil
}

// ApplyProfile overlays the named preset from profiles onto o,
// wherever the corresponding flag was not explicitly set by the caller
// (as reported by changed) — explicitly set flags always win, and a
// preset value replaces a flag's default.
func ApplyProfile(o Options, profiles map[string]profile, name string, changed func(flag string) bool) (Options, error) {
	p, ok := profiles[name]
	if !ok {
		return o, errors.Errorf("--profile: no preset named %q in profiles file", name)
	}

	set := func(flag string, apply func()) {
		if !changed(flag) {
			apply()
		}
	}

	if p.Seed != nil {
		set("seed", func() { o.Seed = *p.Seed })
	}
	if p.Attack != nil {
		set("attack", func() { o.Attack = Attack(*p.Attack) })
	}
	if p.Rounds != nil {
		set("rounds", func() { o.Rounds = *p.Rounds })
	}
	if p.MessageBits != nil {
		set("message-bits", func() { o.MessageBits = *p.MessageBits })
	}
	if p.HashBits != nil {
		set("hash-bits", func() { o.HashBits = *p.HashBits })
	}
	if p.CNF != nil {
		set("cnf", func() { o.CNF = *p.CNF })
	}
	if p.OPB != nil {
		set("opb", func() { o.OPB = *p.OPB })
	}
	if p.TseitinAdders != nil {
		set("tseitin-adders", func() { o.TseitinAdders = *p.TseitinAdders })
	}
	if p.XorClauses != nil {
		set("xor", func() { o.XorClauses = *p.XorClauses })
	}
	if p.HalfAdderNative != nil {
		set("halfadder", func() { o.HalfAdderNative = *p.HalfAdderNative })
	}
	if p.RestrictBranching != nil {
		set("restrict-branching", func() { o.RestrictBranching = *p.RestrictBranching })
	}
	if p.CompactAdders != nil {
		set("compact-adders", func() { o.CompactAdders = *p.CompactAdders })
	}

	return o, nil
}

// DefaultMinimiserTimeout is the fallback --minimiser-timeout.
const DefaultMinimiserTimeout = 30 * time.Second
