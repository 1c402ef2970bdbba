// Package console provides the interactive, menu-driven shell over the quote service.
package console

import (
	"strconv"
	"strings"

	"github.com/jsamuelsen/quote-organizer/internal/domain"
)

// Selection is a validated menu choice.
type Selection int

// Menu selections, numbered as displayed.
const (
	SelectionInsert Selection = iota + 1
	SelectionDisplay
	SelectionSearch
	SelectionDelete
	SelectionSort
	SelectionExit
)

// menuItems holds the menu labels in display order.
var menuItems = []struct {
	selection Selection
	label     string
}{
	{SelectionInsert, "Insert new quote"},
	{SelectionDisplay, "Display all quotes"},
	{SelectionSearch, "Search quotes"},
	{SelectionDelete, "Delete a quote"},
	{SelectionSort, "Sort quotes by date"},
	{SelectionExit, "Exit"},
}

// ParseSelection turns one input line into a Selection.
// Surrounding whitespace is ignored; anything that is not an integer in
// 1..6 yields a domain.InvalidSelectionError.
func ParseSelection(input string) (Selection, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < int(SelectionInsert) || n > int(SelectionExit) {
		return 0, domain.NewInvalidSelectionError(input)
	}

	return Selection(n), nil
}

// String returns the operation name used in logs.
func (s Selection) String() string {
	switch s {
	case SelectionInsert:
		return "insert"
	case SelectionDisplay:
		return "display"
	case SelectionSearch:
		return "search"
	case SelectionDelete:
		return "delete"
	case SelectionSort:
		return "sort"
	case SelectionExit:
		return "exit"
	default:
		return "selection(" + strconv.Itoa(int(s)) + ")"
	}
}
