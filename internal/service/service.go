package service

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hsmb/treasury/internal/ledger"
	"github.com/hsmb/treasury/internal/models"
)

// ErrEmptyWindowSet is returned when the configured spans produce no
// historical windows. The projection's trailing averages divide by the
// historical window count, so this is a fatal configuration error, not
// a series of zeros.
var ErrEmptyWindowSet = errors.New("no report windows in the configured span")

// Config controls the report spans and metric set.
type Config struct {
	MonthsBefore int
	MonthsAfter  int

	// AnchorDay is the day-of-month defining window boundaries, 1-28.
	AnchorDay int

	Metrics Metrics

	// SeedOverrides supplies a known joined-count for boundaries that
	// have no previous window to diff against (typically the first
	// boundary, when the prior year's books live in a separate file).
	// Keyed by boundary date in 2006-01-02 form. Keeps ledger-specific
	// patches out of the engine.
	SeedOverrides map[string]int

	// Rent overrides the projected rent schedule. Nil projects the
	// flat historical rent average.
	Rent RentSchedule
}

// Service drives the aggregation and projection engine over one loaded
// book. A Service is stateless between calls and safe to use from
// concurrent report requests: the book is read-only and every report
// is computed fresh.
type Service struct {
	book *ledger.Book
	agg  *Aggregator
	cfg  Config
	log  *logrus.Logger
}

// NewService initializes the engine over a loaded book.
func NewService(book *ledger.Book, cfg Config, log *logrus.Logger) *Service {
	return &Service{book: book, agg: NewAggregator(book, log), cfg: cfg, log: log}
}

// Report builds the full time series: the historical snapshots for the
// configured trailing span, then the projected snapshots extending the
// same distance forward.
func (s *Service) Report(today time.Time) (models.Series, error) {
	history, err := s.BuildHistory(today)
	if err != nil {
		return nil, err
	}
	return s.Project(history, today)
}
