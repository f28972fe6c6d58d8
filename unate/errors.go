package unate

import "errors"

// ErrNilManager is returned when a nil *bdd.Manager is passed to any
// entry point in this package.
var ErrNilManager = errors.New("unate: nil bdd manager")
