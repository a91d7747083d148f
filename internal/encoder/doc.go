// Package encoder is the bit-blasted circuit compiler at the core of
// sha1-sat. It owns variable allocation, the CNF/OPB text sinks, the
// Boolean gadget library (equality, bitwise ops, rotation, the SHA-1
// round function) and the three interchangeable 32-bit adder
// encodings (Tseitin ripple-carry, compact pseudo-Boolean, and
// espresso-minimised half-adder decomposition).
//
// Every exported method hangs off *Encoder rather than package-level
// state: callers construct one Encoder per generation run and thread
// it through the circuit compiler and attack builder explicitly.
package encoder
