package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validOptions() Options {
	return Options{
		Attack:           AttackPreimage,
		Rounds:           80,
		HashBits:         160,
		CNF:              true,
		MinimiserTimeout: 30 * time.Second,
		MinimiserPath:    "espresso",
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	assert.NoError(t, validOptions().Validate())
}

func TestValidateRejectsRoundsOutOfRange(t *testing.T) {
	o := validOptions()
	o.Rounds = 15
	assert.Error(t, o.Validate())

	o.Rounds = 81
	assert.Error(t, o.Validate())
}

func TestValidateRequiresAnOutputFormat(t *testing.T) {
	o := validOptions()
	o.CNF = false
	assert.Error(t, o.Validate())
}

func TestValidateRejectsCompactAdderWithoutOPB(t *testing.T) {
	o := validOptions()
	o.CompactAdders = true
	assert.Error(t, o.Validate())

	o.OPB = true
	assert.NoError(t, o.Validate())
}

func TestValidateRejectsCNFOnlyFlagsWithoutCNF(t *testing.T) {
	o := validOptions()
	o.CNF = false
	o.OPB = true
	o.XorClauses = true
	assert.Error(t, o.Validate())
}

func TestOutputFormatPrefersCNF(t *testing.T) {
	o := validOptions()
	o.OPB = true
	assert.Equal(t, FormatCNF, o.OutputFormat())
}

func TestApplyProfileOnlyOverridesUnchangedFlags(t *testing.T) {
	rounds := uint32(40)
	profiles := map[string]profile{
		"reduced": {Rounds: &rounds},
	}

	o := validOptions()
	o.Rounds = 80

	unchanged := func(string) bool { return false }
	result, err := ApplyProfile(o, profiles, "reduced", unchanged)
	assert.NoError(t, err)
	assert.EqualValues(t, 40, result.Rounds)

	allChanged := func(string) bool { return true }
	result, err = ApplyProfile(o, profiles, "reduced", allChanged)
	assert.NoError(t, err)
	assert.EqualValues(t, 80, result.Rounds, "an explicitly-set flag must not be overridden by the profile")
}

func TestApplyProfileRejectsUnknownName(t *testing.T) {
	_, err := ApplyProfile(validOptions(), map[string]profile{}, "missing", func(string) bool { return false })
	assert.Error(t, err)
}
