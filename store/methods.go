package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Manager is a session-scoped, concurrency-safe table of Entry values
// keyed by uuid.
type Manager struct {
	mu      sync.Mutex
	opts    options
	entries map[uuid.UUID]*Entry
}

// New builds an empty Manager.
func New(opts ...Option) *Manager {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager{opts: o, entries: make(map[uuid.UUID]*Entry)}
}

// Put creates a new Pending entry tagged with a fresh uuid and
// returns its id.
func (m *Manager) Put(label string) (uuid.UUID, error) {
	if label == "" {
		return uuid.Nil, ErrEmptyLabel
	}
	now := time.Now()
	e := &Entry{
		ID:        uuid.New(),
		Label:     label,
		Status:    Pending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.ID] = e
	m.opts.logger.WithFields(logrus.Fields{"id": e.ID, "label": label}).Debug("store: entry created")
	return e.ID, nil
}

// Get returns a copy of the entry named by id.
func (m *Manager) Get(id uuid.UUID) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return *e, nil
}

// Delete removes the entry named by id.
func (m *Manager) Delete(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(m.entries, id)
	return nil
}

// List returns a snapshot of every entry currently held, in no
// particular order.
func (m *Manager) List() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, *e)
	}
	return out
}

// RecordSuccess overwrites the entry's statistics on a successful
// pass and emits one structured logrus.Info line carrying Stats.Fields
// (§7: "Structured statistics ... are written into the statistics
// store on success").
func (m *Manager) RecordSuccess(id uuid.UUID, stats Stats) error {
	m.mu.Lock()
	e, ok := m.entries[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	e.Status = Success
	e.Stats = stats
	e.UpdatedAt = time.Now()
	label := e.Label
	m.mu.Unlock()

	m.opts.logger.WithFields(stats.Fields()).WithField("id", id).WithField("label", label).Info("synthesis pass completed")
	return nil
}

// RecordBudgetExhaustion records a non-fatal budget exhaustion (§7:
// "the caller receives a well-formed empty result plus the last
// attempted budget value"): the entry's status and last-attempted
// size are updated, but any statistics from a prior successful pass
// are left untouched.
func (m *Manager) RecordBudgetExhaustion(id uuid.UUID, lastAttemptedSize int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	e.Status = BudgetExhausted
	e.LastAttemptedSize = lastAttemptedSize
	e.UpdatedAt = time.Now()
	m.opts.logger.WithField("id", id).WithField("last_attempted_size", lastAttemptedSize).Info("synthesis budget exhausted")
	return nil
}

// RecordParseError reports err to the caller unchanged: per §7's
// propagation policy, a ParseError never mutates the current store
// entry. It exists so call sites can route every terminal outcome
// through the Manager uniformly without a type switch at the
// caller's end.
func (m *Manager) RecordParseError(id uuid.UUID, err error) error {
	m.opts.logger.WithField("id", id).WithError(err).Debug("parse error, entry left unchanged")
	return err
}

// RecordInvalidInput reports err to the caller unchanged, for the
// same reason as RecordParseError (§7: InvalidInput does not mutate
// the current store entry).
func (m *Manager) RecordInvalidInput(id uuid.UUID, err error) error {
	m.opts.logger.WithField("id", id).WithError(err).Debug("invalid input, entry left unchanged")
	return err
}
