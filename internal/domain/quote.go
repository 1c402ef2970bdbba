// Package domain contains core business entities and rules.
package domain

import "strings"

// Quote represents a quotation with its author and the date it was recorded.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// Text is the quoted content.
	Text string

	// Author is who said or wrote the quote.
	Author string

	// Date is when the quote was added, expected as YYYY-MM-DD but never validated.
	Date string
}

// Matches reports whether term occurs in the quote text or author.
// Matching is case-sensitive substring containment.
func (q Quote) Matches(term string) bool {
	return strings.Contains(q.Text, term) || strings.Contains(q.Author, term)
}

// SearchResult pairs a matching quote with its 1-based position in the store.
type SearchResult struct {
	Position int
	Quote    Quote
}
