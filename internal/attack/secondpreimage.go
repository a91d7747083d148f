package attack

import (
	"github.com/sirupsen/logrus"

	"github.com/vegard/sha1-sat/internal/encoder"
	"github.com/vegard/sha1-sat/internal/sha1circuit"
)

// SecondPreimage builds a single SHA-1 pipeline the same way Preimage
// does, except the first fixed message bit is forced to differ from
// the known-good message rather than copied from it: any satisfying
// assignment is then guaranteed to describe a second message distinct
// from the one the (message, digest) pair was drawn from.
//
// With MessageBits == 0 no bit is flipped and the instance degenerates
// to an ordinary preimage search; this is allowed, not rejected, but
// is logged since it is unlikely to be what the caller intended.
func SecondPreimage(enc *encoder.Encoder, p Params) *sha1circuit.Pipeline {
	if p.MessageBits == 0 {
		logrus.Warn("second-preimage attack with --message-bits=0 fixes no message bit; the instance is indistinguishable from a preimage search")
	}

	pipe := sha1circuit.NewPipeline(enc, p.Rounds, "")

	msgRand, shuffleRand := NewRNGs(p.Seed)
	w, h := randomPair(msgRand, p.Rounds)

	enc.Comment("fix %d message bits (first bit inverted)", p.MessageBits)
	fixMessageBits(enc, pipe.W[:], shuffleRand, w, p.MessageBits, true)

	enc.Comment("fix %d hash bits", p.HashBits)
	fixHashBits(enc, pipe.HOut[:], shuffleRand, h, p.HashBits)

	return pipe
}
