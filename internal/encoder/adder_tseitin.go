package encoder

// add2Tseitin builds a 32-bit ripple-carry adder out of the gadget
// library: one carry bit per bit position above bit 0, each derived
// from the half-adder identities c_i = a_i&b_i (bit 0) and, for
// higher bits, c_i = (a_i^b_i)&c_{i-1} | a_i&b_i. Overflow out of bit
// 31 is silently discarded (the addition is modular).
func (e *Encoder) add2Tseitin(r, a, b Word) {
	carry := e.Allocate("carry", 31, false)
	t0 := e.Allocate("t0", 31, false)
	t1 := e.Allocate("t1", 31, false)
	t2 := e.Allocate("t2", 31, false)

	e.And2(carry[:1], a[:1], b[:1])
	e.Xor2(r[:1], a[:1], b[:1])

	e.Xor2(t0, a[1:], b[1:])
	e.And2(t1, a[1:], b[1:])
	e.And2(t2, t0, carry[:len(t0)])
	e.Or2(carry[1:], t1[:len(carry)-1], t2[:len(carry)-1])
	e.Xor2(r[1:], t0, carry)
}

// add5Tseitin decomposes a 5-input add into three chained 2-input
// Tseitin adds: (((a+b)+(c+d))+f).
func (e *Encoder) add5Tseitin(label string, r, a, b, c, d, f Word) {
	t0 := e.AllocateWord32("t0")
	t1 := e.AllocateWord32("t1")
	t2 := e.AllocateWord32("t2")

	e.add2Tseitin(t0, a, b)
	e.add2Tseitin(t1, c, d)
	e.add2Tseitin(t2, t0, t1)
	e.add2Tseitin(r, t2, f)
}
