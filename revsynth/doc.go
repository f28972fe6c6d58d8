// Package revsynth implements §3's reversible circuit data model and
// §4.G's LUT-based reversible synthesis pipeline: an AIG/XMG already
// mapped into k-feasible cuts (cut.Manager) is lowered into an ordered
// Toffoli/Fredkin/STG network over the original inputs, the outputs,
// and a dynamic LIFO pool of ancilla lines.
//
// Each LUT's classical function is synthesized by computing its
// positive-polarity Reed-Muller (ESOP) expansion and emitting one
// (possibly multi-controlled) Toffoli gate per product term — §3's
// Toffoli gate already allows an arbitrary control set, so no further
// decomposition into 2-control gates is needed. Synthesized gate lists
// are cached by truth table so that repeated LUT functions across a
// mapped network are built once.
//
// The execution order follows a two-pass defer heuristic: a dry run
// tracks, for every LUT, how many live consumers remain at the moment
// it would be synthesized, scheduling an uncompute step (gate list run
// in reverse, since every gate here is a classical involution) the
// moment a LUT's last consumer has fired; a second pass actually
// allocates ancilla lines from a LIFO pool and emits the COMPUTE/
// UNCOMPUTE/PI/PO steps. When the dry run's peak ancilla count exceeds
// Options.MaxAncilla, mergeUntilFeasible (dsu-backed) folds adjacent
// LUTs together and retries, each merged group being synthesized from
// its own ESOP expansion; when nothing is left to fold, Synthesize fails
// with ErrAncillaExhausted.
package revsynth
