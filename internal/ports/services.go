// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never adapter-specific types
//   - Error returns use domain error types (ErrNotFound, ErrStoreEmpty, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/jsamuelsen/quote-organizer/internal/domain"
)

// QuoteStore is the ordered collection of quotes the application manages.
//
// Positions are 1-based and stable only until the next Insert,
// DeleteByText or SortByDate. Implementations return copies; callers never
// hold references into the store.
type QuoteStore interface {
	// Insert appends a quote to the end of the sequence.
	// Returns domain.ErrCapacityExceeded when a bounded store is full.
	Insert(ctx context.Context, q domain.Quote) error

	// List returns every quote in current order.
	// Returns domain.ErrStoreEmpty when there are no quotes.
	List(ctx context.Context) ([]domain.Quote, error)

	// Search returns quotes whose text or author contains term, in store order.
	// Returns domain.ErrStoreEmpty when there are no quotes and
	// domain.ErrNoMatch when nothing matches.
	Search(ctx context.Context, term string) ([]domain.SearchResult, error)

	// DeleteByText removes the first quote whose text equals text exactly.
	// Returns domain.ErrStoreEmpty or domain.ErrNotFound, leaving the store unchanged.
	DeleteByText(ctx context.Context, text string) error

	// SortByDate stably reorders quotes by ascending lexical date.
	// Returns domain.ErrStoreEmpty when there is nothing to sort.
	SortByDate(ctx context.Context) error

	// Len returns the number of stored quotes.
	Len() int

	// Capacity returns the maximum number of quotes, or 0 when unbounded.
	Capacity() int
}
