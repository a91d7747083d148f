package encoder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// exhaustiveCheck enumerates every assignment of the three named
// input variables (ids 2, 3, 4 with output f at id 1, matching a
// single-bit Word{Literal(1)} for f), and checks that among the two
// possible values of f exactly one satisfies clauses, and that it
// matches want(b, c, d).
func exhaustiveCheck(t *testing.T, clauses [][]int, want func(b, c, d bool) bool) {
	t.Helper()
	for bi := 0; bi < 2; bi++ {
		for ci := 0; ci < 2; ci++ {
			for di := 0; di < 2; di++ {
				b, c, d := bi != 0, ci != 0, di != 0
				satisfiedBy := map[bool]bool{}
				for _, f := range []bool{false, true} {
					assign := map[int]bool{1: f, 2: b, 3: c, 4: d}
					satisfiedBy[f] = satisfies(clauses, assign)
				}

				want := want(b, c, d)
				assert.True(t, satisfiedBy[want], "b=%v c=%v d=%v: expected f=%v to satisfy", b, c, d, want)
				assert.False(t, satisfiedBy[!want], "b=%v c=%v d=%v: f=%v must not also satisfy (encoding is not a function)", b, c, d, !want)
			}
		}
	}
}

func TestChoiceFIsExhaustivelyCorrect(t *testing.T) {
	enc := New(context.Background(), Config{}, nil)
	f := enc.Allocate("f", 1, false)
	b := enc.Allocate("b", 1, false)
	c := enc.Allocate("c", 1, false)
	d := enc.Allocate("d", 1, false)

	enc.choiceF(f, b, c, d)

	clauses := parseClauses(t, enc.CNF())
	exhaustiveCheck(t, clauses, func(b, c, d bool) bool {
		return (b && c) || (!b && d)
	})
}

func TestMajorityFIsExhaustivelyCorrect(t *testing.T) {
	enc := New(context.Background(), Config{}, nil)
	f := enc.Allocate("f", 1, false)
	b := enc.Allocate("b", 1, false)
	c := enc.Allocate("c", 1, false)
	d := enc.Allocate("d", 1, false)

	enc.majorityF(f, b, c, d)

	clauses := parseClauses(t, enc.CNF())
	exhaustiveCheck(t, clauses, func(b, c, d bool) bool {
		count := 0
		for _, x := range []bool{b, c, d} {
			if x {
				count++
			}
		}
		return count >= 2
	})
}

func TestParityFIsExhaustivelyCorrect(t *testing.T) {
	enc := New(context.Background(), Config{}, nil)
	f := enc.Allocate("f", 1, false)
	b := enc.Allocate("b", 1, false)
	c := enc.Allocate("c", 1, false)
	d := enc.Allocate("d", 1, false)

	enc.Xor3(f, b, c, d)

	clauses := parseClauses(t, enc.CNF())
	exhaustiveCheck(t, clauses, func(b, c, d bool) bool {
		return b != (c != d)
	})
}
