package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/quote-organizer/internal/domain"
	"github.com/jsamuelsen/quote-organizer/internal/platform/logging"
)

const separator = "------------------------"

// QuoteService is the subset of app.QuoteService the shell drives.
type QuoteService interface {
	Add(ctx context.Context, q domain.Quote) error
	ListAll(ctx context.Context) ([]domain.Quote, error)
	Search(ctx context.Context, term string) ([]domain.SearchResult, error)
	Delete(ctx context.Context, text string) error
	SortByDate(ctx context.Context) error
	Count() int
	Full() bool
}

// Config contains the shell dependencies.
type Config struct {
	Service QuoteService
	In      io.Reader
	Out     io.Writer
	Color   bool
	Logger  *slog.Logger
}

// Shell runs the numbered menu loop, one store operation per iteration.
type Shell struct {
	service QuoteService
	in      *bufio.Reader
	out     io.Writer
	theme   theme
	logger  *slog.Logger
}

// New creates a shell. It panics when no service is given.
func New(cfg Config) *Shell {
	if cfg.Service == nil {
		panic("console: Config.Service is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Shell{
		service: cfg.Service,
		in:      bufio.NewReader(cfg.In),
		out:     cfg.Out,
		theme:   newTheme(cfg.Out, cfg.Color),
		logger:  logger.With(slog.String("component", "console.Shell")),
	}
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
// Exit and end of input return nil; cancellation returns ctx.Err().
func (s *Shell) Run(ctx context.Context) error {
	s.println(s.theme.heading.Render("Welcome to Daily Quote Organizer!"))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()

		line, err := s.prompt("Choose an option: ")
		if err != nil {
			return s.sessionEnd(ctx, err)
		}

		selection, err := ParseSelection(line)
		if err != nil {
			s.logger.Log(ctx, logging.LevelTrace, "unrecognized selection", slog.Any("error", err))
			s.failure("Invalid option, please try again.")

			continue
		}

		if selection == SelectionExit {
			s.println(s.theme.heading.Render("Goodbye!"))
			return nil
		}

		if err := s.dispatch(logging.WithOperation(ctx, selection.String()), selection); err != nil {
			return s.sessionEnd(ctx, err)
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, selection Selection) error {
	switch selection {
	case SelectionInsert:
		return s.insert(ctx)
	case SelectionDisplay:
		s.displayAll(ctx)
		return nil
	case SelectionSearch:
		return s.search(ctx)
	case SelectionDelete:
		return s.delete(ctx)
	case SelectionSort:
		s.sort(ctx)
		return nil
	default:
		return fmt.Errorf("no handler for selection %s", selection)
	}
}

func (s *Shell) insert(ctx context.Context) error {
	if s.service.Full() {
		s.failure("Quote list is full! Cannot add more quotes.")
		return nil
	}

	var q domain.Quote

	fields := []struct {
		label string
		dst   *string
	}{
		{"Enter quote text: ", &q.Text},
		{"Enter author name: ", &q.Author},
		{"Enter date (e.g., 2025-07-02): ", &q.Date},
	}

	for _, f := range fields {
		value, err := s.prompt(f.label)
		if err != nil {
			return err
		}

		*f.dst = value
	}

	switch err := s.service.Add(ctx, q); {
	case err == nil:
		s.success("Quote added successfully!")
	case domain.IsCapacityExceeded(err):
		s.failure("Quote list is full! Cannot add more quotes.")
	default:
		s.failure("Could not add quote: " + err.Error())
	}

	return nil
}

func (s *Shell) displayAll(ctx context.Context) {
	quotes, err := s.service.ListAll(ctx)
	if err != nil {
		s.failure("No quotes to display.")
		return
	}

	s.println("")
	s.println(s.theme.heading.Render("--- All Quotes ---"))

	for i, q := range quotes {
		s.printQuote(i+1, q)
	}
}

func (s *Shell) search(ctx context.Context) error {
	if s.service.Count() == 0 {
		s.failure("No quotes stored to search.")
		return nil
	}

	term, err := s.prompt("Enter search term (keyword or author name): ")
	if err != nil {
		return err
	}

	s.println("")
	s.println(s.theme.heading.Render("--- Search Results ---"))

	results, err := s.service.Search(ctx, term)
	switch {
	case err == nil:
		for _, r := range results {
			s.printQuote(r.Position, r.Quote)
		}
	case domain.IsStoreEmpty(err):
		s.failure("No quotes stored to search.")
	default:
		s.failure("No quotes found matching the search term.")
	}

	return nil
}

func (s *Shell) delete(ctx context.Context) error {
	if s.service.Count() == 0 {
		s.failure("No quotes stored to delete.")
		return nil
	}

	target, err := s.prompt("Enter exact quote text to delete: ")
	if err != nil {
		return err
	}

	switch err := s.service.Delete(ctx, target); {
	case err == nil:
		s.success("Quote deleted successfully.")
	case domain.IsStoreEmpty(err):
		s.failure("No quotes stored to delete.")
	default:
		s.failure("Quote not found.")
	}

	return nil
}

func (s *Shell) sort(ctx context.Context) {
	if err := s.service.SortByDate(ctx); err != nil {
		s.failure("No quotes to sort.")
		return
	}

	s.success("Quotes sorted by date successfully.")
}

func (s *Shell) printMenu() {
	s.println("")
	s.println(s.theme.heading.Render("Menu:"))

	for _, item := range menuItems {
		s.println(s.theme.item.Render(fmt.Sprintf("%d. %s", item.selection, item.label)))
	}
}

func (s *Shell) printQuote(position int, q domain.Quote) {
	s.println(s.theme.item.Render(fmt.Sprintf("Quote #%d:", position)))
	s.println("Text  : " + q.Text)
	s.println("Author: " + q.Author)
	s.println("Date  : " + q.Date)
	s.println(separator)
}

// prompt writes label and reads one line. Only the line terminator is
// removed; a final line without a terminator is still returned. End of
// input is reported as io.EOF, other read failures are wrapped.
func (s *Shell) prompt(label string) (string, error) {
	_, _ = io.WriteString(s.out, s.theme.heading.Render(label))

	line, err := s.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", io.EOF
		}
	default:
		return "", fmt.Errorf("reading input: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

// sessionEnd ends the session quietly on EOF and returns anything else.
func (s *Shell) sessionEnd(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		s.println("")
		s.logger.DebugContext(ctx, "input closed, ending session")

		return nil
	}

	return err
}

func (s *Shell) success(msg string) {
	s.println(s.theme.success.Render(msg))
}

func (s *Shell) failure(msg string) {
	s.println(s.theme.failure.Render(msg))
}

func (s *Shell) println(line string) {
	_, _ = io.WriteString(s.out, line+"\n")
}
