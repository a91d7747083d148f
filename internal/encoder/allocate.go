package encoder

import "fmt"

// Allocate hands out width fresh variable ids, tags them with label
// in a comment emitted to both sinks, and returns them as positive
// literals. When the Encoder is restricting branching variables,
// decisionHint controls the polarity of the "d" annotation emitted
// for each of the new variables: true marks them as branching
// candidates, false excludes them.
func (e *Encoder) Allocate(label string, width int, decisionHint bool) Word {
	w := make(Word, width)
	for i := range w {
		e.nextVar++
		w[i] = Literal(e.nextVar)
	}

	e.comment(fmt.Sprintf("var %d/%d %s", int(w[0]), width, label))

	if e.cfg.RestrictBranching {
		for _, l := range w {
			if decisionHint {
				fmt.Fprintf(&e.cnf, "d %d 0\n", int(l))
			} else {
				fmt.Fprintf(&e.cnf, "d -%d 0\n", int(l))
			}
		}
	}

	return w
}

// AllocateWord32 is a convenience wrapper around Allocate for the
// common case of a 32-bit word with no decision-variable hint.
func (e *Encoder) AllocateWord32(label string) Word {
	return e.Allocate(label, 32, false)
}
