// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quote-organizer/internal/domain"
	"github.com/jsamuelsen/quote-organizer/internal/platform/logging"
	"github.com/jsamuelsen/quote-organizer/internal/platform/metrics"
	"github.com/jsamuelsen/quote-organizer/internal/ports"
)

// Operation names used for logging and metrics.
const (
	OpInsert = "insert"
	OpList   = "list"
	OpSearch = "search"
	OpDelete = "delete"
	OpSort   = "sort"
)

// component tags every log line written by the service.
const component = "app.QuoteService"

// Recorder receives operation outcomes.
type Recorder interface {
	ObserveOperation(operation, outcome string)
	SetStored(n int)
}

var _ Recorder = (*metrics.Metrics)(nil)

// QuoteService orchestrates quote use cases over a ports.QuoteStore.
type QuoteService struct {
	store    ports.QuoteStore
	recorder Recorder
	logger   *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Store    ports.QuoteStore
	Recorder Recorder
	Logger   *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// It panics when no store is given.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: QuoteServiceConfig.Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		store:    cfg.Store,
		recorder: cfg.Recorder,
		logger:   logger,
	}
}

// Add stores a new quote at the end of the list.
func (s *QuoteService) Add(ctx context.Context, q domain.Quote) error {
	logger := s.loggerFor(ctx)
	logger.DebugContext(ctx, "inserting quote", slog.String("author", q.Author), slog.String("date", q.Date))

	err := s.store.Insert(ctx, q)
	s.observe(OpInsert, err)

	if err != nil {
		logger.WarnContext(ctx, "quote not inserted", slog.Any("error", err))
		return err
	}

	logger.InfoContext(ctx, "quote inserted", slog.Int("count", s.store.Len()))

	return nil
}

// ListAll returns every stored quote in current order.
func (s *QuoteService) ListAll(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.store.List(ctx)
	s.observe(OpList, err)

	s.loggerFor(ctx).DebugContext(ctx, "listed quotes", slog.Int("count", len(quotes)))

	return quotes, err
}

// Search returns quotes whose text or author contains term.
func (s *QuoteService) Search(ctx context.Context, term string) ([]domain.SearchResult, error) {
	results, err := s.store.Search(ctx, term)
	s.observe(OpSearch, err)

	s.loggerFor(ctx).DebugContext(ctx, "searched quotes",
		slog.String("term", term),
		slog.Int("matches", len(results)),
	)

	return results, err
}

// Delete removes the first quote whose text equals text exactly.
func (s *QuoteService) Delete(ctx context.Context, text string) error {
	logger := s.loggerFor(ctx)

	err := s.store.DeleteByText(ctx, text)
	s.observe(OpDelete, err)

	if err != nil {
		logger.DebugContext(ctx, "quote not deleted", slog.Any("error", err))
		return err
	}

	logger.InfoContext(ctx, "quote deleted", slog.Int("count", s.store.Len()))

	return nil
}

// SortByDate reorders quotes by ascending date, keeping ties in place.
func (s *QuoteService) SortByDate(ctx context.Context) error {
	err := s.store.SortByDate(ctx)
	s.observe(OpSort, err)

	if err != nil {
		return err
	}

	s.loggerFor(ctx).InfoContext(ctx, "quotes sorted", slog.Int("count", s.store.Len()))

	return nil
}

// Count returns the number of stored quotes.
func (s *QuoteService) Count() int {
	return s.store.Len()
}

// Full reports whether a bounded store cannot take another quote.
func (s *QuoteService) Full() bool {
	capacity := s.store.Capacity()
	return capacity > 0 && s.store.Len() >= capacity
}

// loggerFor prefers the session logger carried by ctx and tags it with the
// service component.
func (s *QuoteService) loggerFor(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger).With(slog.String("component", component))
}

func (s *QuoteService) observe(operation string, err error) {
	if s.recorder == nil {
		return
	}

	s.recorder.ObserveOperation(operation, Outcome(err))
	s.recorder.SetStored(s.store.Len())
}

// Outcome classifies an operation result for metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case domain.IsCapacityExceeded(err):
		return metrics.OutcomeCapacityExceeded
	case domain.IsStoreEmpty(err):
		return metrics.OutcomeEmpty
	case domain.IsNotFound(err):
		return metrics.OutcomeNotFound
	case domain.IsNoMatch(err):
		return metrics.OutcomeNoMatch
	default:
		return metrics.OutcomeError
	}
}
