package encoder

import "context"

// fakeMinimiser implements Minimiser without shelling out to a real
// espresso binary, so the half-adder oracle contract can be exercised
// in tests that must not depend on an external tool being installed.
// It returns the unminimised canonical CNF of the popcount-equality
// relation — one blocking clause per assignment outside the relation —
// which is exactly as correct as espresso's minimised cover, just
// larger.
type fakeMinimiser struct{}

func (fakeMinimiser) Minimise(ctx context.Context, n, m int) ([]Word, error) {
	var clauses []Word
	for i := 0; i < 1<<uint(n); i++ {
		for j := 0; j < 1<<uint(m); j++ {
			if popcount(i) == j {
				continue
			}

			clause := make(Word, 0, n+m)
			for k := 0; k < n; k++ {
				bit := (i >> uint(k)) & 1
				v := k + 1
				if bit == 1 {
					clause = append(clause, Literal(-v))
				} else {
					clause = append(clause, Literal(v))
				}
			}
			for k := 0; k < m; k++ {
				// Output columns are MSB-first: local id n+1 is the
				// most significant output bit.
				bit := (j >> uint(m-1-k)) & 1
				v := n + k + 1
				if bit == 1 {
					clause = append(clause, Literal(-v))
				} else {
					clause = append(clause, Literal(v))
				}
			}
			clauses = append(clauses, clause)
		}
	}
	return clauses, nil
}
