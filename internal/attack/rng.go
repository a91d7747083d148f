// Package attack builds the three supported SAT-instance goals
// (preimage, second-preimage, collision) on top of one or two
// sha1circuit.Pipelines: it decides which message and digest bits get
// fixed to concrete values, and emits those fixes (or cross-pipeline
// equalities, for collisions) via the shared encoder.Encoder.
package attack

import (
	"math/rand"

	"github.com/vegard/sha1-sat/internal/sha1circuit"
)

// NewRNGs derives two independent generators from a single user seed:
// one that produces the known-good message used to seed the attack,
// and one that drives the Fisher-Yates shuffle over bit indices when
// choosing which bits to fix. The shuffle generator's seed is the
// first output of the message generator, so a given seed
// deterministically reproduces both streams without the caller having
// to manage two independent seed values.
func NewRNGs(seed uint64) (message, shuffle *rand.Rand) {
	message = rand.New(rand.NewSource(int64(seed)))
	shuffle = rand.New(rand.NewSource(message.Int63()))
	return message, shuffle
}

// shuffledIndices returns a Fisher-Yates shuffle of [0, n) drawn from
// r.
func shuffledIndices(r *rand.Rand, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	r.Shuffle(n, func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})
	return idx
}

// randomPair draws 16 random message words from msgRand and evaluates
// the reduced-round reference SHA-1 on them, producing a known-good
// (message, digest) pair an attack builder can partially fix.
func randomPair(msgRand *rand.Rand, rounds int) (w [80]uint32, h [5]uint32) {
	for i := 0; i < 16; i++ {
		w[i] = msgRand.Uint32()
	}
	h = sha1circuit.Reference(rounds, &w)
	return w, h
}
