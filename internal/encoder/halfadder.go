package encoder

import "fmt"

// haKey identifies a half-adder clause shape by its input and output
// widths. The oracle's answer for a given key is reusable for every
// column in the instance that happens to have the same shape, so the
// cache is keyed on (n, m) rather than on the actual variables
// involved.
type haKey struct {
	N, M int
}

// haConstraint relates lhs (the popcount inputs of one addend column)
// to rhs (that column's output bit, LSB, followed by its outgoing
// carries) via a half-adder constraint: popcount(lhs) == value(rhs).
// It always emits the OPB linear-equality form of that relation. For
// CNF it either emits a native "h" marker or expands the relation into
// plain clauses via the minimiser oracle, depending on
// Config.HalfAdderNative.
func (e *Encoder) haConstraint(lhs, rhs Word) {
	if e.cfg.HalfAdderNative {
		e.writeHALine(lhs, rhs)
	} else {
		for _, local := range e.haClauses(len(lhs), len(rhs)) {
			e.cnfClause(substituteHA(local, lhs, rhs))
		}
	}

	e.writeHaOPBEquation(lhs, rhs)
	e.nrConstraints++
}

// haClauses returns the cached (or freshly computed) local-numbered
// clause set for shape (n, m), consulting the minimiser oracle at
// most once per distinct shape for the lifetime of the Encoder.
func (e *Encoder) haClauses(n, m int) []Word {
	key := haKey{N: n, M: m}
	if clauses, ok := e.haCache[key]; ok {
		return clauses
	}

	clauses, err := e.minimiser.Minimise(e.ctx, n, m)
	if err != nil {
		panic(fmt.Sprintf("half-adder oracle failed for (n=%d, m=%d): %v", n, m, err))
	}
	e.haCache[key] = clauses
	return clauses
}

// substituteHA renumbers a clause expressed in the oracle's local
// variable numbering (1..n local to this shape) into the real
// literals it stands for in this call: local ids 1..n map to lhs in
// order, local ids n+1..n+m map to rhs *reversed*, since the oracle's
// output columns are MSB-first while rhs is stored LSB-first. Getting
// this reversal backwards silently corrupts the encoding without
// making it obviously wrong, so it is pinned by a dedicated test.
func substituteHA(local Word, lhs, rhs Word) Word {
	n, m := len(lhs), len(rhs)
	out := make(Word, len(local))
	for i, l := range local {
		v := l.Var()
		var real Literal
		if v <= n {
			real = lhs[v-1]
		} else {
			j := v - n - 1
			real = rhs[m-1-j]
		}
		if !l.Positive() {
			real = -real
		}
		out[i] = real
	}
	return out
}

// cnfClause appends a plain CNF clause with no OPB counterpart. It is
// used for the clauses expanded from a half-adder relation, which
// already has its own single OPB linear equation rather than one
// ">= 1" inequality per clause.
func (e *Encoder) cnfClause(lits Word) {
	for _, l := range lits {
		writeLiteral(&e.cnf, l)
	}
	fmt.Fprint(&e.cnf, "0\n")
	e.nrClauses++
}

// writeHALine emits the native "h lhs... 0 rhs... 0" marker some
// solvers understand directly, without ever consulting the oracle.
// Per the count-parity testable property, h-lines are not counted
// among nr_clauses.
func (e *Encoder) writeHALine(lhs, rhs Word) {
	fmt.Fprint(&e.cnf, "h ")
	for _, l := range lhs {
		fmt.Fprintf(&e.cnf, "%d ", int32(l))
	}
	fmt.Fprint(&e.cnf, "0 ")
	for _, l := range rhs {
		fmt.Fprintf(&e.cnf, "%d ", int32(l))
	}
	fmt.Fprint(&e.cnf, "0\n")
}

// writeHaOPBEquation emits "Σ lhs - Σ 2^j*rhs[j] = 0;", the linear
// form of popcount(lhs) == value(rhs).
func (e *Encoder) writeHaOPBEquation(lhs, rhs Word) {
	for _, l := range lhs {
		fmt.Fprintf(&e.opb, "1 x%d ", l.Var())
	}
	for j, l := range rhs {
		fmt.Fprintf(&e.opb, "-%d x%d ", int64(1)<<uint(j), l.Var())
	}
	fmt.Fprint(&e.opb, "= 0;\n")
}
