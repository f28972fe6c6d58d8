// Package lsynth is a logic-synthesis and reversible-circuit-synthesis
// toolkit: truth tables and cubes in, optimized combinational and
// reversible netlists out.
//
// What is lsynth?
//
//	A modern, thread-safe library that brings together:
//
//	  - Graph primitives: a single hash-consed DAG arena shared by every
//	    higher-level representation (AIG, XMG)
//	  - Classic algorithms: BFS, DFS, Dijkstra, DSU; BFS and Dijkstra
//	    serve cut enumeration and DSU the reversible pipeline's LUT
//	    merging
//	  - A BDD kernel with ITE, restrict, and unateness classification
//	  - Exact XMG synthesis over a SAT encoding, ESOP minimization via
//	    EXORLINK, and a LUT-based reversible-logic pipeline
//	  - Netlist readers/writers for BENCH, PLA, a Verilog subset, YIG,
//	    and SMT-LIB2 equivalence miters
//
// Package layout:
//
//	dag/      — hash-consed node arena shared by aig and xmg
//	dfs/bfs/dijkstra/dsu/matrix/ — general-purpose graph algorithms
//	bdd/      — reduced ordered BDD manager (Ite, Restrict)
//	ttable/   — dense bitset-backed truth tables and cubes
//	aig/xmg/  — AND-inverter and majority-inverter graphs over dag.Arena
//	cut/      — k-feasible structural cut enumeration
//	satenc/   — cardinality encoders shared by exact and tbs
//	exact/    — exact XMG synthesis via SAT
//	rewrite/  — cut-cost-guided NPN functional-hash rewriting
//	esop/     — ESOP minimization (EXORLINK)
//	revsynth/ — reversible-logic embedding and LUT mapping
//	tbs/      — symbolic transformation-based synthesis
//	lnn/      — linear-nearest-neighbor window/global reordering
//	unate/    — BDD-based unateness classification
//	netlist/  — BENCH/PLA/Verilog/YIG readers, BENCH/Verilog/SMT-LIB2 writers
//	store/    — session-scoped statistics and UUID bookkeeping
//	cli/      — the external CLI surface as a plain Config struct
//
// store.Manager records per-entry statistics and logs through its own
// *logrus.Logger. The synthesis passes in the other packages take no
// logger, emit no progress lines and do not report to a store.Manager.
package lsynth
