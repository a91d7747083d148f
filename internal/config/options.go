// Package config validates and assembles the options a generation run
// is driven by, independent of how they were collected (CLI flags or a
// named profile loaded from a YAML presets file).
package config

import (
	"time"

	"github.com/pkg/errors"

	"github.com/vegard/sha1-sat/internal/attack"
	"github.com/vegard/sha1-sat/internal/encoder"
)

// Attack identifies which of the three instance goals to build.
type Attack string

const (
	AttackPreimage       Attack = "preimage"
	AttackSecondPreimage Attack = "second-preimage"
	AttackCollision      Attack = "collision"
)

// Format selects which output the tool writes to stdout.
type Format string

const (
	FormatCNF Format = "cnf"
	FormatOPB Format = "opb"
)

// Options is the fully-resolved, validated set of parameters for one
// generation run, assembled from CLI flags and, optionally, a named
// profile.
type Options struct {
	Seed   uint64
	Attack Attack

	Rounds      uint32
	MessageBits uint32
	HashBits    uint32

	CNF bool
	OPB bool

	TseitinAdders     bool
	XorClauses        bool
	HalfAdderNative   bool
	RestrictBranching bool
	CompactAdders     bool

	Strict bool

	MinimiserTimeout time.Duration
	MinimiserPath    string

	Verbose bool
}

// Validate checks the mutual-exclusion and range rules that cobra's
// flag parsing alone cannot express, returning a wrapped,
// user-facing error naming the offending flag.
func (o Options) Validate() error {
	switch o.Attack {
	case AttackPreimage, AttackSecondPreimage, AttackCollision:
	default:
		return errors.Errorf("--attack: unknown value %q", o.Attack)
	}

	if o.Rounds < 16 || o.Rounds > 80 {
		return errors.Errorf("--rounds: must be in [16, 80], got %d", o.Rounds)
	}
	if o.MessageBits > 512 {
		return errors.Errorf("--message-bits: must be in [0, 512], got %d", o.MessageBits)
	}
	if o.HashBits > 160 {
		return errors.Errorf("--hash-bits: must be in [0, 160], got %d", o.HashBits)
	}

	if !o.CNF && !o.OPB {
		return errors.New("at least one of --cnf or --opb is required")
	}

	if o.CompactAdders && !o.OPB {
		return errors.New("--compact-adders requires --opb")
	}
	if (o.XorClauses || o.HalfAdderNative || o.RestrictBranching) && !o.CNF {
		return errors.New("--xor, --halfadder and --restrict-branching require --cnf")
	}
	if o.TseitinAdders && o.CompactAdders {
		return errors.New("--tseitin-adders and --compact-adders are mutually exclusive")
	}

	if o.MinimiserTimeout <= 0 {
		return errors.Errorf("--minimiser-timeout: must be positive, got %s", o.MinimiserTimeout)
	}

	return nil
}

// OutputFormat returns the format this run writes, applying the
// documented precedence: CNF before OPB when both are requested.
func (o Options) OutputFormat() Format {
	if o.CNF {
		return FormatCNF
	}
	return FormatOPB
}

// EncoderConfig translates Options into the encoder.Config it drives.
func (o Options) EncoderConfig() encoder.Config {
	cfg := encoder.Config{
		XorClauses:        o.XorClauses,
		HalfAdderNative:   o.HalfAdderNative,
		RestrictBranching: o.RestrictBranching,
		Adder:             encoder.AdderHalfAdder,
	}
	switch {
	case o.TseitinAdders:
		cfg.Adder = encoder.AdderTseitin
	case o.CompactAdders:
		cfg.Adder = encoder.AdderCompact
	}
	return cfg
}

// AttackParams translates Options into the parameters the attack
// builders consume.
func (o Options) AttackParams() attack.Params {
	return attack.Params{
		Rounds:      int(o.Rounds),
		MessageBits: int(o.MessageBits),
		HashBits:    int(o.HashBits),
		Seed:        o.Seed,
	}
}
