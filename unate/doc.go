// Package unate implements §4.B's unateness check: for a BDD node f and
// a variable v, whether f is monotone non-decreasing (positive unate),
// non-increasing (negative unate), independent of v, or neither
// (binate).
//
// compare.go's recursive node comparator is the textbook BDD-implication
// walk: two refs are compared by recursing on the higher of their two
// variable levels (treating the side that doesn't yet depend on that
// level as unchanged across both branches) and combining the resulting
// child verdicts, exactly mirroring how bdd.Manager.Ite itself recurses
// on the higher variable index (§4.B). Because a bdd.Manager's node
// table is fully reduced and hash-consed, two distinct refs are never
// semantically equal, so EQ only ever arises from the refs being
// literally identical — a useful invariant classify.go relies on.
//
// classify.go walks every node reachable from f once; at each node
// whose variable is v, it compares that node's high child against its
// low child (high > low at every such node across the whole graph means
// f only increases as v goes 0→1: positive unate; high < low at every
// one means negative unate; any Incomparable verdict, or a mix of both
// directions, means binate in v; v never appearing in the graph at all
// means f is independent of it) rather than a single cof0-vs-cof1 check
// at the root, since v may recur at more than one node below a shared
// ancestor.
//
// parallel.go adds §5's two opt-in concurrent entry points: one
// goroutine per output merging each output's variable-support bitset
// (github.com/bits-and-blooms/bitset, already in the dependency graph
// via ttable) into one combined bitset under a mutex, and one goroutine
// per input variable computing, independently of every other input's
// goroutine, whether that variable is used by any output — combined
// into a bitset afterward with no locking needed since each task's
// result is collected off a channel rather than written concurrently.
// Both entry points run over a bounded worker pool sized to
// runtime.GOMAXPROCS(0), matching §5's "tasks are created via a bounded
// thread pool."
package unate
