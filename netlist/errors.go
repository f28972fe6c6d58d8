package netlist

import "errors"

// ErrParse is the sentinel wrapped by every malformed-input error from a
// reader: bad header, unknown gate kind, malformed PLA cube row,
// unresolvable forward reference, malformed hex. Callers match it with
// errors.Is rather than inspecting message text.
var ErrParse = errors.New("netlist: parse error")

// ErrUnsupportedGate indicates a writer was asked to emit a gate kind
// its target format has no representation for.
var ErrUnsupportedGate = errors.New("netlist: unsupported gate kind for this format")

// ErrNoOutputs indicates a writer was asked to emit a netlist with zero
// primary outputs (e.g. an SMT-LIB2 equivalence miter needs at least one).
var ErrNoOutputs = errors.New("netlist: netlist has no primary outputs")
