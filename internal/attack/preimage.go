package attack

import (
	"math/rand"

	"github.com/vegard/sha1-sat/internal/encoder"
	"github.com/vegard/sha1-sat/internal/sha1circuit"
)

// Params bundles the parameters shared by all three attack builders.
type Params struct {
	Rounds      int
	MessageBits int
	HashBits    int
	Seed        uint64
}

// Preimage builds a single SHA-1 pipeline, draws one known-good
// (message, digest) pair from Params.Seed, and fixes MessageBits
// message bits and HashBits digest bits — chosen by a Fisher-Yates
// shuffle over the respective bit indices — to that pair's values.
func Preimage(enc *encoder.Encoder, p Params) *sha1circuit.Pipeline {
	pipe := sha1circuit.NewPipeline(enc, p.Rounds, "")

	msgRand, shuffleRand := NewRNGs(p.Seed)
	w, h := randomPair(msgRand, p.Rounds)

	enc.Comment("fix %d message bits", p.MessageBits)
	fixMessageBits(enc, pipe.W[:], shuffleRand, w, p.MessageBits, false)

	enc.Comment("fix %d hash bits", p.HashBits)
	fixHashBits(enc, pipe.HOut[:], shuffleRand, h, p.HashBits)

	return pipe
}

// fixMessageBits fixes the first n bits of a Fisher-Yates shuffle over
// the 512 message bits of msg to their values in w. When flipFirst is
// set (second-preimage only), the very first fixed bit is inverted
// instead of copied, guaranteeing the fixed message differs from w in
// at least one bit.
func fixMessageBits(enc *encoder.Encoder, msg []encoder.Word, shuffleRand *rand.Rand, w [80]uint32, n int, flipFirst bool) {
	indices := shuffledIndices(shuffleRand, 32*len(msg))
	for i := 0; i < n; i++ {
		pos := indices[i]
		word, bit := pos/32, pos%32
		val := (w[word]>>uint(bit))&1 != 0
		if i == 0 && flipFirst {
			val = !val
		}
		enc.Constant(msg[word][bit], val)
	}
}

// fixHashBits fixes the first n bits of a Fisher-Yates shuffle over the
// 160 digest bits of digest to their values in h.
func fixHashBits(enc *encoder.Encoder, digest []encoder.Word, shuffleRand *rand.Rand, h [5]uint32, n int) {
	indices := shuffledIndices(shuffleRand, 32*len(digest))
	for i := 0; i < n; i++ {
		pos := indices[i]
		word, bit := pos/32, pos%32
		val := (h[word]>>uint(bit))&1 != 0
		enc.Constant(digest[word][bit], val)
	}
}
