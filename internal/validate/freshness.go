// Package validate provides post-construction sanity checks over an
// Encoder's output that the compiler's own invariants are supposed to
// make impossible, wired in behind the CLI's --strict flag rather than
// run on every generation.
package validate

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"

	"github.com/vegard/sha1-sat/internal/encoder"
)

// CheckFreshness scans enc's CNF body and confirms every literal
// referenced by a clause, XOR clause, or half-adder line names a
// variable in [1, enc.NumVariables()]. It uses a bitset sized to the
// variable count purely as a fast membership set; it does not (and
// cannot, from the CNF body alone) confirm every allocated variable is
// actually used.
func CheckFreshness(enc *encoder.Encoder) error {
	nrVars := enc.NumVariables()
	valid := bitset.New(uint(nrVars + 1))
	for v := 1; v <= nrVars; v++ {
		valid.Set(uint(v))
	}

	scanner := bufio.NewScanner(bytes.NewReader(enc.CNF()))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		switch line[0] {
		case 'c', 'p':
			continue
		case 'd', 'x', 'h':
			if err := checkFields(valid, line[1:], lineNo); err != nil {
				return err
			}
		default:
			if err := checkFields(valid, line, lineNo); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "scanning CNF body")
	}
	return nil
}

// checkFields validates every whitespace-separated signed integer in
// fields except trailing terminator zeroes, against valid.
func checkFields(valid *bitset.BitSet, fields string, lineNo int) error {
	for _, tok := range strings.Fields(fields) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return errors.Wrapf(err, "line %d: malformed literal %q", lineNo, tok)
		}
		if n == 0 {
			continue
		}
		v := n
		if v < 0 {
			v = -v
		}
		if !valid.Test(uint(v)) {
			return errors.Errorf("line %d: literal %d references variable %d outside [1, %d]", lineNo, n, v, valid.Len()-1)
		}
	}
	return nil
}
