// Package store implements the §6 CLI store bookkeeping surface: a
// session-scoped table of synthesis entries, each tagged with a
// github.com/google/uuid identifier so later CLI commands (`show`,
// `export`, `stats`) can refer to a previously-synthesized circuit,
// AIG, XMG, or BDD stably across a run.
//
// Every entry tracks the §7 structured statistics (runtime, cache
// hits, cube count, literal count, assignment count, last attempted
// size) and follows §7's error-propagation policy: a ParseError or
// InvalidInput result is reported straight to the caller without
// touching the entry (Manager.RecordParseError / RecordInvalidInput
// are deliberate no-ops beyond returning the wrapped error), a
// BudgetExhaustion result is non-fatal and records the last attempted
// budget value alongside whatever the entry already held, and a
// successful pass overwrites the entry's statistics and emits one
// structured logrus.Info line carrying those fields, gated by the
// configured logger (a disabled/io.Discard logger by default).
package store
