package encoder

import "fmt"

// Literal is a signed reference to a Boolean variable: a positive
// value denotes the variable itself, a negative value its complement.
// The variable id is abs(l); 0 is never a valid Literal.
type Literal int32

// Var returns the variable id referenced by l, irrespective of sign.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Negated returns -l.
func (l Literal) Negated() Literal {
	return -l
}

// Positive reports whether l refers to the variable itself rather
// than its complement.
func (l Literal) Positive() bool {
	return l > 0
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int32(l))
}

// Word is an ordered bit-vector of literals, index 0 is the
// least-significant bit. Most gadgets operate on 32-bit Words, but
// the adder and half-adder plumbing also use narrower ones for
// carries.
type Word []Literal

// Lit builds a Literal from a variable id and a negation flag, the
// inverse of Literal.Var/Positive.
func Lit(v int, negated bool) Literal {
	if negated {
		return Literal(-v)
	}
	return Literal(v)
}
