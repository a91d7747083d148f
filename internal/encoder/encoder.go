package encoder

import (
	"bytes"
	"context"
)

// Encoder is the process-wide (per generation run) state of the
// bit-blasted circuit compiler: the variable counter, the two output
// buffers, their clause/constraint counts, and the half-adder clause
// cache. Callers construct one Encoder per run and pass it by pointer
// into the circuit compiler and attack builder rather than relying on
// package-level globals.
type Encoder struct {
	cfg Config
	ctx context.Context

	minimiser Minimiser

	nextVar int

	nrClauses     uint64
	nrXorClauses  uint64
	nrConstraints uint64

	cnf bytes.Buffer
	opb bytes.Buffer

	haCache map[haKey][]Word
}

// New returns an Encoder configured with cfg. minimiser may be nil if
// cfg.Adder != AdderHalfAdder or cfg.HalfAdderNative is true, since
// those configurations never consult the oracle. A nil ctx defaults
// to context.Background().
func New(ctx context.Context, cfg Config, minimiser Minimiser) *Encoder {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Encoder{
		cfg:       cfg,
		ctx:       ctx,
		minimiser: minimiser,
		haCache:   make(map[haKey][]Word),
	}
}

// Config returns the Encoder's configuration.
func (e *Encoder) Config() Config {
	return e.cfg
}

// NumVariables returns the number of variables allocated so far.
func (e *Encoder) NumVariables() int {
	return e.nextVar
}

// NumClauses returns the number of plain CNF clauses emitted so far
// (not counting XOR clauses or half-adder markers).
func (e *Encoder) NumClauses() uint64 {
	return e.nrClauses
}

// NumXorClauses returns the number of XOR clauses emitted so far.
func (e *Encoder) NumXorClauses() uint64 {
	return e.nrXorClauses
}

// NumConstraints returns the number of OPB constraints emitted so
// far.
func (e *Encoder) NumConstraints() uint64 {
	return e.nrConstraints
}

// CNF returns the accumulated CNF body, without the "p cnf ..."
// header.
func (e *Encoder) CNF() []byte {
	return e.cnf.Bytes()
}

// OPB returns the accumulated OPB body, without the "* #variable=
// ..." header.
func (e *Encoder) OPB() []byte {
	return e.opb.Bytes()
}
