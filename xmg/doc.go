// Package xmg implements the XOR-Majority Graph half of §3's data model:
// a DAG of MAJ-3 and XOR-2 nodes over an optional constant, with an
// inverter-edge encoding. And/Or are derived from MAJ via the identities
// MAJ(0,a,b)=a∧b and MAJ(1,a,b)=a∨b; XOR(0,a)=a recovers plain wires.
//
// Like aig, xmg is a thin view over the shared dag.Arena kernel — it
// only ever calls AddMaj/AddXor, so Kind(ref) is guaranteed to return
// KindConst0, KindPI, KindXor or KindMaj for any ref it produces.
package xmg
