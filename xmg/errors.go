package xmg

import "errors"

// Sentinel errors for xmg package operations.
var (
	// ErrUnknownInput indicates Simulate was called without a binding for
	// some primary input reachable from the evaluated edge.
	ErrUnknownInput = errors.New("xmg: missing input binding")

	// ErrNotAnXMGNode indicates a dag.Ref belongs to a kind the xmg view
	// never produces (e.g. KindAnd) — a sign the ref came from a
	// different graph sharing the same arena.
	ErrNotAnXMGNode = errors.New("xmg: ref is not an XMG node kind")

	// ErrTooManyLeaves indicates ToTruthTable was asked to enumerate more
	// leaves than is practical for a dense truth table.
	ErrTooManyLeaves = errors.New("xmg: too many leaves for a dense truth table")
)
