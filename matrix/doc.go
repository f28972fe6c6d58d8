// Package matrix provides flat, row-major matrix storage. The LNN
// reordering pass's global mode keeps its per-line nearest-neighbor-cost
// impact vector in a 1×n Grid (§4.I).
//
// Dense holds float64 values; Grid holds int values. Both check index
// bounds on every access and do not validate the values they store.
package matrix
