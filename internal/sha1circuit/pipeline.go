// Package sha1circuit compiles the SHA-1 compression function into
// the bit-blasted encoder.Encoder, and separately provides a plain
// software evaluator used to produce known-good (message, digest)
// pairs for the attack builders in internal/attack.
package sha1circuit

import (
	"fmt"

	"github.com/vegard/sha1-sat/internal/encoder"
)

// Round constants and initial hash values from FIPS 180-4.
const (
	k0 uint32 = 0x5a827999
	k1 uint32 = 0x6ed9eba1
	k2 uint32 = 0x8f1bbcdc
	k3 uint32 = 0xca62c1d6

	h0 uint32 = 0x67452301
	h1 uint32 = 0xefcdab89
	h2 uint32 = 0x98badcfe
	h3 uint32 = 0x10325476
	h4 uint32 = 0xc3d2e1f0
)

// MinRounds and MaxRounds bound the configurable round count: SHA-1
// proper runs MaxRounds rounds, but the whole point of this generator
// is to attack reduced-round variants.
const (
	MinRounds = 16
	MaxRounds = 80
)

// Pipeline is one instantiation of the SHA-1 circuit: the message
// schedule, eighty (or fewer) compression rounds, and finalisation.
// Collision attacks instantiate two pipelines with distinct Name
// suffixes so their variables never collide.
type Pipeline struct {
	Rounds int
	Name   string

	// W holds the 16 input message words; these are the only
	// variables in a Pipeline that an attack builder fixes directly
	// to drive a chosen message, and the only ones ever marked as
	// decision variables under branching restriction.
	W [16]encoder.Word

	// HOut holds the five 32-bit digest words produced by this
	// pipeline.
	HOut [5]encoder.Word

	hIn [5]encoder.Word
	a   []encoder.Word

	// schedule holds the pre-rotation message-schedule words wt[16:],
	// and f the per-round round-function output words; both are kept
	// only so tests can assign every wire of a fully fixed instance,
	// not because any gadget outside NewPipeline consumes them.
	schedule []encoder.Word
	f        []encoder.Word
	k        [4]encoder.Word
}

// NewPipeline allocates and constrains one full SHA-1 pipeline of the
// given round count (16 <= rounds <= 80) within enc. name is embedded
// in the labels of the message-schedule and h_in/h_out words so the
// comments of multiple pipelines can be told apart; the other labels
// (a, k, f, adder scratch) do not carry it.
func NewPipeline(enc *encoder.Encoder, rounds int, name string) *Pipeline {
	if rounds < MinRounds || rounds > MaxRounds {
		panic(fmt.Sprintf("sha1circuit: rounds must be in [%d, %d], got %d", MinRounds, MaxRounds, rounds))
	}

	enc.Comment("sha1")
	enc.Comment(fmt.Sprintf("parameter nr_rounds = %d", rounds))

	p := &Pipeline{Rounds: rounds, Name: name}

	for i := 0; i < 16; i++ {
		p.W[i] = enc.Allocate(fmt.Sprintf("w%s[%d]", name, i), 32, true)
	}

	w := make([]encoder.Word, rounds)
	copy(w[:16], p.W[:])

	wt := make([]encoder.Word, rounds)
	for i := 16; i < rounds; i++ {
		wt[i] = enc.Allocate(fmt.Sprintf("w%s[%d]", name, i), 32, false)
	}

	for i := 0; i < 5; i++ {
		p.hIn[i] = enc.Allocate(fmt.Sprintf("h%s_in%d", name, i), 32, false)
	}
	for i := 0; i < 5; i++ {
		p.HOut[i] = enc.Allocate(fmt.Sprintf("h%s_out%d", name, i), 32, false)
	}

	p.a = make([]encoder.Word, rounds+5)
	for i := 0; i < rounds; i++ {
		p.a[i+5] = enc.Allocate(fmt.Sprintf("a[%d]", i+5), 32, false)
	}

	for i := 16; i < rounds; i++ {
		enc.Xor4(wt[i], w[i-3], w[i-8], w[i-14], w[i-16])
		w[i] = encoder.Rotl(wt[i], 1)
	}
	p.schedule = wt

	k := [4]encoder.Word{
		enc.NewConstant("k[0]", k0),
		enc.NewConstant("k[1]", k1),
		enc.NewConstant("k[2]", k2),
		enc.NewConstant("k[3]", k3),
	}
	p.k = k

	enc.Constant32(p.hIn[0], h0)
	enc.Constant32(p.hIn[1], h1)
	enc.Constant32(p.hIn[2], h2)
	enc.Constant32(p.hIn[3], h3)
	enc.Constant32(p.hIn[4], h4)

	// Seed the pre-rotated working-state history: a[0..5) holds E,D,C,B,A
	// (a[0] through a[4]) in the rotated form every round's uses expect.
	p.a[4] = encoder.Rotl(p.hIn[0], 0)
	p.a[3] = encoder.Rotl(p.hIn[1], 0)
	p.a[2] = encoder.Rotl(p.hIn[2], 2)
	p.a[1] = encoder.Rotl(p.hIn[3], 2)
	p.a[0] = encoder.Rotl(p.hIn[4], 2)

	p.f = make([]encoder.Word, rounds)
	for i := 0; i < rounds; i++ {
		prevA := encoder.Rotl(p.a[i+4], 5)
		b := p.a[i+3]
		c := encoder.Rotl(p.a[i+2], 30)
		d := encoder.Rotl(p.a[i+1], 30)
		e := encoder.Rotl(p.a[i+0], 30)

		f := enc.RoundF(i, b, c, d)
		p.f[i] = f

		enc.Add5(fmt.Sprintf("a[%d]", i+5), p.a[i+5], prevA, f, e, k[i/20], w[i])
	}

	c := encoder.Rotl(p.a[rounds+2], 30)
	d := encoder.Rotl(p.a[rounds+1], 30)
	e := encoder.Rotl(p.a[rounds+0], 30)

	enc.Add2("h_out", p.HOut[0], p.hIn[0], p.a[rounds+4])
	enc.Add2("h_out", p.HOut[1], p.hIn[1], p.a[rounds+3])
	enc.Add2("h_out", p.HOut[2], p.hIn[2], c)
	enc.Add2("h_out", p.HOut[3], p.hIn[3], d)
	enc.Add2("h_out", p.HOut[4], p.hIn[4], e)

	return p
}
