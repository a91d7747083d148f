package encoder

// AdderMode selects one of the three interchangeable encodings of
// 32-bit modular addition.
type AdderMode int

const (
	// AdderHalfAdder decomposes each output bit into popcount columns
	// resolved by the half-adder clause oracle. This is the default:
	// it produces the smallest clauses at the cost of one oracle
	// lookup per distinct (n, m) column shape.
	AdderHalfAdder AdderMode = iota
	// AdderTseitin builds a ripple-carry adder out of the gadget
	// library (ands, ors, xors), introducing one auxiliary variable
	// per carry bit.
	AdderTseitin
	// AdderCompact emits a single OPB linear equality per add2/add5
	// call and no CNF at all. Only meaningful when the Encoder is
	// writing OPB output.
	AdderCompact
)

func (m AdderMode) String() string {
	switch m {
	case AdderHalfAdder:
		return "half-adder"
	case AdderTseitin:
		return "tseitin"
	case AdderCompact:
		return "compact"
	default:
		return "unknown"
	}
}

// Config selects the encoding variants used by an Encoder for the
// lifetime of one generation run. The zero value is the half-adder
// decomposition in plain CNF with unrestricted branching, matching
// the tool's historical defaults.
type Config struct {
	// XorClauses, when true, makes Eq/Neq/Xor2/Xor3/Xor4 emit native
	// "x ..." XOR clauses instead of enumerating the equivalent plain
	// clauses. Only meaningful for CNF output.
	XorClauses bool

	// HalfAdderNative, when true, makes the half-adder decomposition
	// adder mode emit a native "h lhs 0 rhs 0" marker instead of
	// expanding the popcount relation into plain clauses via the
	// minimiser oracle. Only meaningful when Adder == AdderHalfAdder
	// and the Encoder is writing CNF output.
	HalfAdderNative bool

	// RestrictBranching, when true, annotates every allocated
	// variable with a "d v 0" (decision) or "d -v 0" (non-decision)
	// line, restricting a cooperating solver's branching heuristic to
	// the hinted variables (the 16 input message words of every
	// pipeline, so both pipelines of a collision instance).
	RestrictBranching bool

	// Adder selects the 32-bit addition encoding.
	Adder AdderMode
}
