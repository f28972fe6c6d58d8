// Package netlist implements §6's external netlist formats: BENCH, PLA,
// a Verilog subset, and YIG on the read side; BENCH, a Verilog subset,
// and SMT-LIB2 (equivalence-miter export) on the write side.
//
// Every reader builds onto a shared xmg.XMG, since XMG's And/Or/Xor/Maj
// vocabulary is general enough to express every source primitive:
// AND/OR/XOR map directly, NAND/NOR/NOT are their De Morgan duals via
// dag.Edge.Not (no extra node), BUF is a net alias, Verilog's 3-input
// majority becomes a native Maj node, and BENCH LUT lines and YIG's
// k-input majority gates are expanded through lut.go's
// Shannon-decomposition builder.
//
// bench_reader.go and verilog_reader.go both resolve forward references
// (a gate may be used before its own defining line appears) through
// builder.go's memoized recursive resolve: resolving a net's dependencies
// before the net itself is exactly a depth-first post-order topological
// sort, so no separate sorting pass is needed even though §6 calls out
// Verilog's module body as "topologically sorted post-parse" — the
// recursion performs that sort as a side effect of correctness rather
// than as a distinct step.
package netlist
