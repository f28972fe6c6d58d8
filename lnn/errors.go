package lnn

import "errors"

// Sentinel errors for lnn package operations.
var (
	// ErrNilCircuit indicates a nil *revsynth.Circuit was passed to Reorder.
	ErrNilCircuit = errors.New("lnn: circuit is nil")

	// ErrMultiControlGate indicates a gate carries more than one control,
	// so it has no single control/target pair to route between adjacent
	// lines.
	ErrMultiControlGate = errors.New("lnn: gate has more than one control")

	// ErrUnsupportedGateKind indicates a gate kind other than Toffoli was
	// encountered; Fredkin and Tag gates are not a two-input
	// control/target pair and are out of this pass's scope.
	ErrUnsupportedGateKind = errors.New("lnn: only single-control toffoli gates are supported")

	// ErrUnknownMode indicates an unrecognised Mode value.
	ErrUnknownMode = errors.New("lnn: unknown reordering mode")
)
