package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-organizer/internal/adapters/memory"
	"github.com/jsamuelsen/quote-organizer/internal/app"
	"github.com/jsamuelsen/quote-organizer/internal/domain"
)

var _ QuoteService = (*app.QuoteService)(nil)

const menu = "\nMenu:\n" +
	"1. Insert new quote\n" +
	"2. Display all quotes\n" +
	"3. Search quotes\n" +
	"4. Delete a quote\n" +
	"5. Sort quotes by date\n" +
	"6. Exit\n" +
	"Choose an option: "

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runSession feeds input to a fresh shell over a store of the given capacity
// and returns everything written to the output.
func runSession(t *testing.T, capacity int, input string) (string, *app.QuoteService) {
	t.Helper()

	svc := app.NewQuoteService(app.QuoteServiceConfig{
		Store:  memory.NewQuoteStore(capacity),
		Logger: discardLogger(),
	})

	var out bytes.Buffer

	sh := New(Config{
		Service: svc,
		In:      strings.NewReader(input),
		Out:     &out,
		Color:   false,
		Logger:  discardLogger(),
	})

	require.NoError(t, sh.Run(context.Background()))

	return out.String(), svc
}

func TestNew_PanicsWithoutService(t *testing.T) {
	assert.Panics(t, func() {
		New(Config{In: strings.NewReader(""), Out: io.Discard})
	})
}

func TestShell_ExitImmediately(t *testing.T) {
	out, _ := runSession(t, memory.DefaultCapacity, "6\n")

	assert.Equal(t, "Welcome to Daily Quote Organizer!\n"+menu+"Goodbye!\n", out)
}

func TestShell_InsertAndDisplay(t *testing.T) {
	input := "1\nKnow thyself.\nSocrates\n2024-05-05\n" +
		"2\n" +
		"6\n"

	out, svc := runSession(t, memory.DefaultCapacity, input)

	expected := "Welcome to Daily Quote Organizer!\n" +
		menu +
		"Enter quote text: Enter author name: Enter date (e.g., 2025-07-02): " +
		"Quote added successfully!\n" +
		menu +
		"\n--- All Quotes ---\n" +
		"Quote #1:\n" +
		"Text  : Know thyself.\n" +
		"Author: Socrates\n" +
		"Date  : 2024-05-05\n" +
		"------------------------\n" +
		menu +
		"Goodbye!\n"

	assert.Equal(t, expected, out)
	assert.Equal(t, 1, svc.Count())
}

func TestShell_FieldsKeptVerbatim(t *testing.T) {
	input := "1\n  padded\ttext  \r\n\n2024-13-45\n2\n6\n"

	out, _ := runSession(t, memory.DefaultCapacity, input)

	assert.Contains(t, out, "Text  :   padded\ttext  \n")
	assert.Contains(t, out, "Author: \n")
	assert.Contains(t, out, "Date  : 2024-13-45\n")
}

func TestShell_InvalidSelections(t *testing.T) {
	input := "abc\n0\n7\n\n 2 \n6\n"

	out, _ := runSession(t, memory.DefaultCapacity, input)

	assert.Equal(t, 4, strings.Count(out, "Invalid option, please try again.\n"))
	assert.Contains(t, out, "No quotes to display.\n")
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
}

func TestShell_EmptyStoreMessages(t *testing.T) {
	out, _ := runSession(t, memory.DefaultCapacity, "2\n3\n4\n5\n6\n")

	assert.Contains(t, out, "No quotes to display.\n")
	assert.Contains(t, out, "No quotes stored to search.\n")
	assert.Contains(t, out, "No quotes stored to delete.\n")
	assert.Contains(t, out, "No quotes to sort.\n")
	assert.NotContains(t, out, "Enter search term")
	assert.NotContains(t, out, "Enter exact quote text")
}

func TestShell_CapacityReached(t *testing.T) {
	input := "1\nfirst\na\n2024-01-01\n" +
		"1\n" +
		"6\n"

	out, svc := runSession(t, 1, input)

	assert.Equal(t, 1, strings.Count(out, "Enter quote text: "))
	assert.Contains(t, out, "Quote list is full! Cannot add more quotes.\n")
	assert.Equal(t, 1, svc.Count())
}

func TestShell_Search(t *testing.T) {
	input := "1\nKnow thyself.\nSocrates\n2024-05-05\n" +
		"1\nCarpe diem.\nHorace\n2023-01-01\n" +
		"3\nHorace\n" +
		"3\nnobody\n" +
		"6\n"

	out, _ := runSession(t, memory.DefaultCapacity, input)

	assert.Contains(t, out, "Enter search term (keyword or author name): \n--- Search Results ---\n"+
		"Quote #2:\n"+
		"Text  : Carpe diem.\n"+
		"Author: Horace\n"+
		"Date  : 2023-01-01\n"+
		"------------------------\n")
	assert.Contains(t, out, "--- Search Results ---\nNo quotes found matching the search term.\n")
	assert.NotContains(t, out, "Quote #1:")
}

func TestShell_Delete(t *testing.T) {
	input := "1\nsame\na\n2024-01-01\n" +
		"1\nsame\nb\n2024-01-02\n" +
		"4\nsam\n" +
		"4\nsame\n" +
		"2\n" +
		"6\n"

	out, svc := runSession(t, memory.DefaultCapacity, input)

	assert.Contains(t, out, "Quote not found.\n")
	assert.Contains(t, out, "Quote deleted successfully.\n")
	assert.Contains(t, out, "Author: b\n")
	assert.NotContains(t, out, "Author: a\n")
	assert.Equal(t, 1, svc.Count())
}

func TestShell_SortByDate(t *testing.T) {
	input := "1\nC\nx\n2024-03-01\n" +
		"1\nA\ny\n2024-01-01\n" +
		"1\nB\nz\n2024-01-01\n" +
		"5\n" +
		"6\n"

	out, svc := runSession(t, memory.DefaultCapacity, input)

	assert.Contains(t, out, "Quotes sorted by date successfully.\n")

	quotes, err := svc.ListAll(context.Background())
	require.NoError(t, err)

	texts := make([]string, 0, len(quotes))
	for _, q := range quotes {
		texts = append(texts, q.Text)
	}

	assert.Equal(t, []string{"A", "B", "C"}, texts)
}

func TestShell_EndOfInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
	}{
		{"empty input", "", 0},
		{"during menu", "1\nq\na\n2024-01-01\n", 1},
		{"during insert prompts", "1\nhalf a quote\n", 0},
		{"final line without newline", "1\nq\na\n2024-01-01", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, svc := runSession(t, memory.DefaultCapacity, tt.input)

			assert.NotContains(t, out, "Goodbye!")
			assert.Equal(t, tt.count, svc.Count())
		})
	}
}

func TestShell_ReadError(t *testing.T) {
	readErr := errors.New("terminal gone")

	sh := New(Config{
		Service: app.NewQuoteService(app.QuoteServiceConfig{Store: memory.NewQuoteStore(0), Logger: discardLogger()}),
		In:      iotest.ErrReader(readErr),
		Out:     io.Discard,
		Logger:  discardLogger(),
	})

	err := sh.Run(context.Background())

	require.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "reading input")
}

func TestShell_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer

	sh := New(Config{
		Service: app.NewQuoteService(app.QuoteServiceConfig{Store: memory.NewQuoteStore(0), Logger: discardLogger()}),
		In:      strings.NewReader("6\n"),
		Out:     &out,
		Logger:  discardLogger(),
	})

	err := sh.Run(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Welcome to Daily Quote Organizer!\n", out.String())
}

// stubService returns fixed errors so the shell's fallback branches run.
type stubService struct {
	addErr error
}

func (s *stubService) Add(context.Context, domain.Quote) error { return s.addErr }
func (s *stubService) ListAll(context.Context) ([]domain.Quote, error) {
	return nil, domain.ErrStoreEmpty
}
func (s *stubService) Search(context.Context, string) ([]domain.SearchResult, error) {
	return nil, domain.ErrNoMatch
}
func (s *stubService) Delete(context.Context, string) error { return domain.ErrNotFound }
func (s *stubService) SortByDate(context.Context) error { return domain.ErrStoreEmpty }
func (s *stubService) Count() int { return 0 }
func (s *stubService) Full() bool { return false }

func TestShell_InsertRejectedByService(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"capacity race", domain.NewCapacityExceededError(3), "Quote list is full! Cannot add more quotes.\n"},
		{"other failure", errors.New("disk full"), "Could not add quote: disk full\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			sh := New(Config{
				Service: &stubService{addErr: tt.err},
				In:      strings.NewReader("1\nt\na\nd\n6\n"),
				Out:     &out,
				Logger:  discardLogger(),
			})

			require.NoError(t, sh.Run(context.Background()))
			assert.Contains(t, out.String(), tt.expected)
			assert.NotContains(t, out.String(), "Quote added successfully!")
		})
	}
}

func TestShell_DispatchRejectsUnknownSelection(t *testing.T) {
	var out bytes.Buffer

	sh := New(Config{
		Service: &stubService{},
		In:      strings.NewReader(""),
		Out:     &out,
		Logger:  discardLogger(),
	})

	err := sh.dispatch(context.Background(), Selection(9))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler for selection selection(9)")
	assert.Empty(t, out.String())
}
