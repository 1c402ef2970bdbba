// Package domain contains business logic types and errors.
// Domain errors represent reportable conditions of the quote store, NOT
// console messages. Adapters decide how each condition is presented.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCapacityExceeded indicates a bounded store is already full.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrStoreEmpty indicates the operation needs at least one stored quote.
	ErrStoreEmpty = errors.New("store is empty")

	// ErrNoMatch indicates a search matched nothing.
	ErrNoMatch = errors.New("no match")

	// ErrInvalidSelection indicates a menu selection could not be recognized.
	ErrInvalidSelection = errors.New("invalid selection")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	Key    string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}

// CapacityExceededError provides context for capacity errors.
type CapacityExceededError struct {
	Capacity int
}

// Error implements the error interface.
func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded: store holds at most %d quotes", e.Capacity)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// NewCapacityExceededError creates a capacity error for the given bound.
func NewCapacityExceededError(capacity int) error {
	return &CapacityExceededError{Capacity: capacity}
}

// InvalidSelectionError provides context for unrecognized menu input.
type InvalidSelectionError struct {
	Input string
}

// Error implements the error interface.
func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid selection %q", e.Input)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *InvalidSelectionError) Unwrap() error {
	return ErrInvalidSelection
}

// NewInvalidSelectionError creates an invalid selection error for the raw input.
func NewInvalidSelectionError(input string) error {
	return &InvalidSelectionError{Input: input}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsCapacityExceeded checks if an error is a capacity error.
func IsCapacityExceeded(err error) bool {
	return errors.Is(err, ErrCapacityExceeded)
}

// IsStoreEmpty checks if an error reports an empty store.
func IsStoreEmpty(err error) bool {
	return errors.Is(err, ErrStoreEmpty)
}

// IsNoMatch checks if an error reports an empty search result.
func IsNoMatch(err error) bool {
	return errors.Is(err, ErrNoMatch)
}

// IsInvalidSelection checks if an error is an invalid selection error.
func IsInvalidSelection(err error) bool {
	return errors.Is(err, ErrInvalidSelection)
}
