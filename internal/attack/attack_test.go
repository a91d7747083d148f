package attack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vegard/sha1-sat/internal/encoder"
)

func newTestEncoder() *encoder.Encoder {
	return encoder.New(context.Background(), encoder.Config{Adder: encoder.AdderTseitin}, nil)
}

func TestPreimageIsDeterministicForAGivenSeed(t *testing.T) {
	p := Params{Rounds: 16, MessageBits: 32, HashBits: 32, Seed: 42}

	e1 := newTestEncoder()
	Preimage(e1, p)

	e2 := newTestEncoder()
	Preimage(e2, p)

	assert.Equal(t, e1.CNF(), e2.CNF())
	assert.Equal(t, e1.OPB(), e2.OPB())
}

func TestPreimageDiffersAcrossSeeds(t *testing.T) {
	e1 := newTestEncoder()
	Preimage(e1, Params{Rounds: 16, MessageBits: 32, HashBits: 32, Seed: 1})

	e2 := newTestEncoder()
	Preimage(e2, Params{Rounds: 16, MessageBits: 32, HashBits: 32, Seed: 2})

	assert.NotEqual(t, e1.CNF(), e2.CNF())
}

func TestSecondPreimageFlipsFirstFixedMessageBit(t *testing.T) {
	p := Params{Rounds: 16, MessageBits: 1, HashBits: 0, Seed: 7}

	preimage := newTestEncoder()
	Preimage(preimage, p)

	second := newTestEncoder()
	SecondPreimage(second, p)

	// Both instances fix exactly one message bit (plus its surrounding
	// scaffolding), but to opposite values, so their CNF bodies must
	// differ.
	assert.NotEqual(t, preimage.CNF(), second.CNF())
}

func TestSecondPreimageWithZeroMessageBitsDoesNotPanic(t *testing.T) {
	e := newTestEncoder()
	assert.NotPanics(t, func() {
		SecondPreimage(e, Params{Rounds: 16, MessageBits: 0, HashBits: 16, Seed: 3})
	})
}

func TestCollisionBuildsTwoDistinctlyNamedPipelines(t *testing.T) {
	e := newTestEncoder()
	f, g := Collision(e, Params{Rounds: 16, MessageBits: 0, HashBits: 32, Seed: 9})

	assert.NotEqual(t, f.Name, g.Name)
	assert.Equal(t, "0", f.Name)
	assert.Equal(t, "1", g.Name)
}
