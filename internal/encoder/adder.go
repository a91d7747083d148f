package encoder

// Add2 constrains r to equal (a + b) mod 2^32, encoded according to
// e's configured AdderMode; under AdderCompact the sum is not reduced
// and must fit in 32 bits (see add2Compact). r must already be allocated by the
// caller (it is typically a wire that also feeds later gadgets, such
// as a round's working-state update or the finalisation add2 calls).
func (e *Encoder) Add2(label string, r, a, b Word) {
	e.Comment("add2")
	switch e.cfg.Adder {
	case AdderTseitin:
		e.add2Tseitin(r, a, b)
	case AdderCompact:
		e.add2Compact(r, a, b)
	default:
		e.add2HalfAdder(label, r, a, b)
	}
}

// Add5 constrains r to equal (a + b + c + d + f) mod 2^32, encoded
// according to e's configured AdderMode; under AdderCompact the sum is
// not reduced and must fit in 32 bits (see add2Compact).
func (e *Encoder) Add5(label string, r, a, b, c, d, f Word) {
	e.Comment("add5")
	switch e.cfg.Adder {
	case AdderTseitin:
		e.add5Tseitin(label, r, a, b, c, d, f)
	case AdderCompact:
		e.add5Compact(r, a, b, c, d, f)
	default:
		e.add5HalfAdder(label, r, a, b, c, d, f)
	}
}
