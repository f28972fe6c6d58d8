// Package exact implements §4.E's exact XMG synthesis via incremental
// SAT: for a target truth table on n variables, iteratively deepen over
// gate count k, encoding one MAJ/XOR gate per level with a bit-vector
// selector field (sel_{g,i}) choosing which prior signal feeds each
// gate input, a negation bit (neg_{g,i}), and a type bit (MAJ/XOR).
// Symmetry-breaking variants are toggled by the flag letters C, I, s,
// a, l, t, y named in §4.E.
//
// Grounded on original_source/.../xmg_exact.cpp's xmg_exact_instance:
// the wire/gate encoding, the row-constraint structure, and each
// symmetry-breaking method are transcribed from Z3 bit-vector theory
// into plain CNF via satenc's hand-encoded bit-vector helpers, since
// gini (the one SAT library in the retrieved pack) has no bit-vector
// theory — see SPEC_FULL.md §B and DESIGN.md for why this is the one
// place the module does "by hand" what a BV-SMT solver would do
// natively.
package exact
