// Package aig implements the And-Inverter Graph half of §3's data model:
// a DAG of two-input AND nodes with complemented edges, primary inputs,
// primary outputs, and structural hashing on (left,right) fanin pairs.
//
// aig is a thin, AND-only view over the shared dag.Arena kernel — it
// never calls AddXor or AddMaj, and Kind returns only KindConst0, KindPI
// or KindAnd for any ref it produces. Or/Xor/Mux are expressed in terms
// of And and Edge.Not via De Morgan's laws, matching the AIG literature's
// convention that inversion is free (carried on the edge) and every
// other connective is built from AND + NOT.
package aig
