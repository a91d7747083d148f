package sha1circuit

import "math/bits"

// Reference computes the reduced-round SHA-1 compression function in
// plain 32-bit arithmetic: the same recursive definition the circuit
// compiler bit-blasts in NewPipeline, used by the attack builders to
// derive a known-good (message, digest) pair to partially fix.
//
// w holds the 80-word message schedule; only w[0:16] need be supplied
// by the caller; w[16:rounds] is filled in by Reference itself. Only
// a single 512-bit block is handled — there is no Merkle-Damgard
// padding or multi-block chaining here, matching the tool's
// single-block scope.
func Reference(rounds int, w *[80]uint32) (hOut [5]uint32) {
	for i := 16; i < rounds; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := h0, h1, h2, h3, h4

	for i := 0; i < rounds; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f, k = (b&c)|(^b&d), k0
		case i < 40:
			f, k = b^c^d, k1
		case i < 60:
			f, k = (b&c)|(b&d)|(c&d), k2
		default:
			f, k = b^c^d, k3
		}

		t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		e, d, c, b, a = d, c, bits.RotateLeft32(b, 30), a, t
	}

	hOut[0] = h0 + a
	hOut[1] = h1 + b
	hOut[2] = h2 + c
	hOut[3] = h3 + d
	hOut[4] = h4 + e
	return hOut
}
