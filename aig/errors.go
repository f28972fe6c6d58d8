package aig

import "errors"

// Sentinel errors for aig package operations.
var (
	// ErrNilGraph indicates an operation was attempted on a nil *AIG.
	ErrNilGraph = errors.New("aig: nil graph")

	// ErrUnknownInput indicates Simulate was called without a binding for
	// some primary input.
	ErrUnknownInput = errors.New("aig: missing input binding")

	// ErrNotAnAIGNode indicates a dag.Ref belongs to a kind the AIG view
	// never produces (e.g. KindXor, KindMaj) — a sign the ref came from a
	// different graph sharing the same arena.
	ErrNotAnAIGNode = errors.New("aig: ref is not an AIG node kind")
)
