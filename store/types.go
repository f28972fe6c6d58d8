package store

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Status is the last outcome recorded against an Entry.
type Status int

const (
	// Pending is an entry's status before any result has been recorded.
	Pending Status = iota

	// Success means the last recorded pass completed and Stats holds
	// its structured statistics.
	Success

	// BudgetExhausted means the last recorded pass ran out of budget;
	// LastAttemptedSize holds the size it was attempting when it gave up.
	BudgetExhausted
)

// String renders s for logging and display.
func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Success:
		return "success"
	case BudgetExhausted:
		return "budget_exhausted"
	default:
		return "unknown"
	}
}

// Stats holds the §7 structured statistics written into the store on
// a successful pass.
type Stats struct {
	Runtime         time.Duration
	CacheHits       int
	CubeCount       int
	LiteralCount    int
	AssignmentCount int
}

// Fields renders s as logrus.Fields for structured logging.
func (s Stats) Fields() logrus.Fields {
	return logrus.Fields{
		"runtime_ms":       s.Runtime.Milliseconds(),
		"cache_hits":       s.CacheHits,
		"cube_count":       s.CubeCount,
		"literal_count":    s.LiteralCount,
		"assignment_count": s.AssignmentCount,
	}
}

// Entry is one stored circuit/AIG/XMG/BDD plus its bookkeeping.
type Entry struct {
	ID    uuid.UUID
	Label string

	Status            Status
	Stats             Stats
	LastAttemptedSize int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// options configures a Manager.
type options struct {
	logger *logrus.Logger
}

func defaultOptions() options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return options{logger: l}
}

// Option mutates a Manager's options.
type Option func(*options)

// WithLogger sets the *logrus.Logger a Manager emits progress and
// statistics lines to. A nil logger is ignored.
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
