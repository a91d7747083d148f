package encoder

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Minimiser produces a minimised CNF clause set, in local variable
// numbering, for the relation popcount(x_1..x_n) == value(y_1..y_m).
// Clause literals use local variable ids 1..n+m: ids 1..n refer to
// the n popcount inputs in argument order, ids n+1..n+m refer to the
// m output bits in the minimiser's own (MSB-first) column order.
// Callers are responsible for renumbering into real variables.
type Minimiser interface {
	Minimise(ctx context.Context, n, m int) ([]Word, error)
}

// EspressoMinimiser talks to an espresso-compatible two-valued logic
// minimiser over a pair of OS pipes, following the classic PLA
// format: a truth table is written to the child's stdin and a
// minimised cube list is read back from its stdout.
type EspressoMinimiser struct {
	// Path is the executable to run, resolved via the process search
	// path unless it contains a path separator. Defaults to
	// "espresso".
	Path string
	// Timeout bounds one request/response round trip. Defaults to 30s.
	Timeout time.Duration
}

func (m *EspressoMinimiser) path() string {
	if m.Path == "" {
		return "espresso"
	}
	return m.Path
}

func (m *EspressoMinimiser) timeout() time.Duration {
	if m.Timeout <= 0 {
		return 30 * time.Second
	}
	return m.Timeout
}

// Minimise implements Minimiser by running one espresso subprocess
// per call. It writes the on-set of "popcount(inputs) != value" (the
// negation, per the protocol espresso expects to cover) as a truth
// table and translates espresso's minimised cube list back into
// clauses over the requested n+m local variables.
func (e *EspressoMinimiser) Minimise(ctx context.Context, n, m int) ([]Word, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, e.path())

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "opening minimiser stdin pipe")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "opening minimiser stdout pipe")
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logrus.WithFields(logrus.Fields{"n": n, "m": m, "path": e.path()}).Debug("invoking half-adder clause minimiser")

	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "starting minimiser %q", e.path())
	}

	var g errgroup.Group
	g.Go(func() error {
		defer stdin.Close()
		return writeTruthTable(stdin, n, m)
	})

	var clauses []Word
	g.Go(func() error {
		var readErr error
		clauses, readErr = readCubes(stdout, n, m)
		return readErr
	})

	waitErr := g.Wait()
	if err := cmd.Wait(); err != nil {
		return nil, errors.Wrapf(err, "minimiser %q failed, stderr: %q", e.path(), stderr.String())
	}
	if waitErr != nil {
		return nil, errors.Wrapf(waitErr, "minimiser protocol error, stderr: %q", stderr.String())
	}
	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "minimiser timed out")
	}

	return clauses, nil
}

// writeTruthTable writes the espresso PLA input describing the
// on-set of "popcount(i) != j" over all (i, j) in [0,2^n) x [0,2^m).
// Each input column is written as the complement of the corresponding
// bit, per the minimiser protocol: this lets espresso cover the
// on-set of the negated relation, which is exactly the popcount
// equality we want once read back.
func writeTruthTable(w io.Writer, n, m int) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, ".i %d\n", n+m); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, ".o 1\n"); err != nil {
		return err
	}

	for i := 0; i < 1<<uint(n); i++ {
		for j := 0; j < 1<<uint(m); j++ {
			for k := n - 1; k >= 0; k-- {
				bit := 1 - ((i >> uint(k)) & 1)
				if _, err := fmt.Fprintf(bw, "%d", bit); err != nil {
					return err
				}
			}
			for k := m - 1; k >= 0; k-- {
				bit := 1 - ((j >> uint(k)) & 1)
				if _, err := fmt.Fprintf(bw, "%d", bit); err != nil {
					return err
				}
			}

			out := 0
			if popcount(i) != j {
				out = 1
			}
			if _, err := fmt.Fprintf(bw, " %d\n", out); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprint(bw, ".e\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// readCubes reads espresso's minimised PLA output and translates each
// cube into a clause over local variables 1..n+m: a '0' at position p
// becomes a negative literal on variable p+1, a '1' a positive
// literal, and a '-' (don't care) is omitted from the clause.
func readCubes(r io.Reader, n, m int) ([]Word, error) {
	var clauses []Word

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		switch {
		case hasPrefix(line, ".i"), hasPrefix(line, ".o"), hasPrefix(line, ".p"):
			continue
		case hasPrefix(line, ".e"):
			return clauses, nil
		}

		if len(line) < n+m {
			return nil, errors.Errorf("malformed minimiser cube %q: want at least %d columns", line, n+m)
		}

		var clause Word
		for p := 0; p < n+m; p++ {
			switch line[p] {
			case '0':
				clause = append(clause, Literal(-(p + 1)))
			case '1':
				clause = append(clause, Literal(p+1))
			case '-':
				// don't care: omit from the clause
			default:
				return nil, errors.Errorf("malformed minimiser cube %q: unexpected column %q", line, line[p])
			}
		}
		clauses = append(clauses, clause)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading minimiser output")
	}
	return clauses, nil
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
