// Package ttable implements the fixed-width truth-table and cube kernel:
// boolean algebra over 2^n-row truth tables, cofactor/support/permute/
// shrink operations, hex and sum-of-products parsing, the expression AST,
// and the cube (product-term) algebra used by ESOP minimization,
// including EXORLINK cube reshaping and the T-count cost table.
//
// A TT is a value type: every operation returns a new TT (or mutates a
// receiver obtained via Clone), so callers may copy a TT freely the way
// they would an int.
//
// Complexity: every TT operation below is O(2^n) in the number of
// variables n, since it must inspect every row; WalshSpectrum is
// O(n·2^n) (one butterfly pass per variable).
package ttable
