// Package memory provides the in-memory quote store adapter.
package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/jsamuelsen/quote-organizer/internal/domain"
	"github.com/jsamuelsen/quote-organizer/internal/ports"
)

// DefaultCapacity matches the classic fixed bound of the organizer.
const DefaultCapacity = 100

// Compile-time check that QuoteStore implements the port.
var _ ports.QuoteStore = (*QuoteStore)(nil)

// QuoteStore is an ordered, optionally bounded sequence of quotes.
// It is not safe for concurrent use; the console session is single-threaded.
type QuoteStore struct {
	quotes   []domain.Quote
	capacity int
}

// NewQuoteStore creates an empty store. A capacity of 0 (or less) means unbounded.
func NewQuoteStore(capacity int) *QuoteStore {
	capacity = max(capacity, 0)

	return &QuoteStore{
		quotes:   make([]domain.Quote, 0, min(capacity, DefaultCapacity)),
		capacity: capacity,
	}
}

// Insert appends q. Fields are stored verbatim.
func (s *QuoteStore) Insert(_ context.Context, q domain.Quote) error {
	if s.full() {
		return domain.NewCapacityExceededError(s.capacity)
	}

	s.quotes = append(s.quotes, q)

	return nil
}

// List returns a copy of all quotes in current order.
func (s *QuoteStore) List(_ context.Context) ([]domain.Quote, error) {
	if len(s.quotes) == 0 {
		return nil, domain.ErrStoreEmpty
	}

	return slices.Clone(s.quotes), nil
}

// Search returns matches with their 1-based positions.
func (s *QuoteStore) Search(_ context.Context, term string) ([]domain.SearchResult, error) {
	if len(s.quotes) == 0 {
		return nil, domain.ErrStoreEmpty
	}

	var results []domain.SearchResult

	for i, q := range s.quotes {
		if q.Matches(term) {
			results = append(results, domain.SearchResult{Position: i + 1, Quote: q})
		}
	}

	if len(results) == 0 {
		return nil, domain.ErrNoMatch
	}

	return results, nil
}

// DeleteByText removes the lowest-index quote whose text equals text.
func (s *QuoteStore) DeleteByText(_ context.Context, text string) error {
	if len(s.quotes) == 0 {
		return domain.ErrStoreEmpty
	}

	idx := slices.IndexFunc(s.quotes, func(q domain.Quote) bool {
		return q.Text == text
	})
	if idx < 0 {
		return domain.NewNotFoundError("quote", text)
	}

	s.quotes = slices.Delete(s.quotes, idx, idx+1)

	return nil
}

// SortByDate orders quotes by raw date string; equal dates keep their relative order.
func (s *QuoteStore) SortByDate(_ context.Context) error {
	if len(s.quotes) == 0 {
		return domain.ErrStoreEmpty
	}

	slices.SortStableFunc(s.quotes, func(a, b domain.Quote) int {
		return strings.Compare(a.Date, b.Date)
	})

	return nil
}

// Len returns the number of stored quotes.
func (s *QuoteStore) Len() int {
	return len(s.quotes)
}

// Capacity returns the configured bound, 0 when unbounded.
func (s *QuoteStore) Capacity() int {
	return s.capacity
}

func (s *QuoteStore) full() bool {
	return s.capacity > 0 && len(s.quotes) >= s.capacity
}
