package encoder

import "fmt"

// numAdderColumns is the number of addend columns tracked while
// decomposing a 32-bit add into per-bit popcount constraints: 32 data
// bits plus headroom for the carries a wide addend list can produce
// (5 inputs need at most 3 carry bits per column).
const numAdderColumns = 32 + 5

func (e *Encoder) add2HalfAdder(label string, r, a, b Word) {
	e.halfAdderDecompose(label, r, a, b)
}

func (e *Encoder) add5HalfAdder(label string, r, a, b, c, d, f Word) {
	e.halfAdderDecompose(label, r, a, b, c, d, f)
}

// halfAdderDecompose implements the default 32-bit adder encoding:
// every bit position is treated as a column of addend bits (the
// corresponding bit from each input word, plus carries pushed in from
// lower columns), and the column's output plus its outgoing carries
// are related to its addend bits by a single half-adder (popcount)
// constraint. Columns at index len(r) and above only exist to receive
// carries; they are never themselves given an output and are
// discarded once the loop ends.
func (e *Encoder) halfAdderDecompose(label string, r Word, addends ...Word) {
	columns := make([]Word, numAdderColumns)
	for _, word := range addends {
		for i, lit := range word {
			columns[i] = append(columns[i], lit)
		}
	}

	for i := 0; i < len(r); i++ {
		carryCount := ilog2(len(columns[i]))
		rhs := make(Word, 1+carryCount)
		rhs[0] = r[i]
		if carryCount > 0 {
			carries := e.Allocate(fmt.Sprintf("%s_rhs[%d]", label, i), carryCount, false)
			copy(rhs[1:], carries)
		}
		for j := 1; j <= carryCount; j++ {
			columns[i+j] = append(columns[i+j], rhs[j])
		}

		e.haConstraint(columns[i], rhs)
	}
}
