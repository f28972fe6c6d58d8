package lnn

// Mode selects a reordering strategy, matching §6's reordering_mode
// CLI values (0:none, 1:naive, 2:local, 3:global).
type Mode int

const (
	ModeNone Mode = iota
	ModeNaive
	ModeLocal
	ModeGlobal
)
