package attack

import (
	"github.com/sirupsen/logrus"

	"github.com/vegard/sha1-sat/internal/encoder"
	"github.com/vegard/sha1-sat/internal/sha1circuit"
)

// Collision builds two independent SHA-1 pipelines ("0" and "1"),
// forces one message bit to differ between them, and asserts HashBits
// digest bits are equal between them. A satisfying assignment is then
// two distinct messages whose digests agree on at least those bits.
//
// Collision attacks do not use a fixed known-good message, so unlike
// Preimage and SecondPreimage no message bit is fixed to a value:
// Params.MessageBits is ignored here and a warning is logged if it is
// non-zero.
func Collision(enc *encoder.Encoder, p Params) (f, g *sha1circuit.Pipeline) {
	if p.MessageBits > 0 {
		logrus.Warn("collision attacks do not fix message bits; ignoring non-zero --message-bits")
	}

	f = sha1circuit.NewPipeline(enc, p.Rounds, "0")
	g = sha1circuit.NewPipeline(enc, p.Rounds, "1")

	_, shuffleRand := NewRNGs(p.Seed)

	enc.Comment("force one randomly chosen message bit to differ between the two messages")
	msgIndices := shuffledIndices(shuffleRand, 32*len(f.W))
	word, bit := msgIndices[0]/32, msgIndices[0]%32
	enc.Neq(encoder.Word{f.W[word][bit]}, encoder.Word{g.W[word][bit]})

	enc.Comment("fix %d hash bits equal between the two digests", p.HashBits)
	hashIndices := shuffledIndices(shuffleRand, 32*len(f.HOut))
	for i := 0; i < p.HashBits; i++ {
		pos := hashIndices[i]
		word, bit := pos/32, pos%32
		enc.Eq(encoder.Word{f.HOut[word][bit]}, encoder.Word{g.HOut[word][bit]})
	}

	return f, g
}
