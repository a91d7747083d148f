package encoder

import "fmt"

// add2Compact and add5Compact emit a single OPB linear equality in
// place of a bit-level circuit: the weighted sum of the addends'
// variables equals the weighted sum of r's variables. No CNF is
// produced by these calls at all.
//
// The equation is over the integers and has no term for a carry out of
// bit 31, and no variable is allocated for one: it holds only when the
// full sum of the addends fits in 32 bits, so an assignment whose
// addends sum to 2^32 or more satisfies it for no value of r. The
// addition is therefore not reduced mod 2^32 in this mode.
func (e *Encoder) add2Compact(r, a, b Word) {
	e.writeCompactSum(r, a, b)
}

func (e *Encoder) add5Compact(r, a, b, c, d, f Word) {
	e.writeCompactSum(r, a, b, c, d, f)
}

func (e *Encoder) writeCompactSum(r Word, addends ...Word) {
	for _, addend := range addends {
		for i, l := range addend {
			fmt.Fprintf(&e.opb, "%d x%d ", int64(1)<<uint(i), l.Var())
		}
	}
	for i, l := range r {
		fmt.Fprintf(&e.opb, "-%d x%d ", int64(1)<<uint(i), l.Var())
	}
	fmt.Fprint(&e.opb, "= 0;\n")

	e.nrConstraints++
}
