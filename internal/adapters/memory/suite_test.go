package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/jsamuelsen/quote-organizer/internal/domain"
)

// storeContext holds state shared across step definitions within a scenario.
type storeContext struct {
	store   *QuoteStore
	results []domain.SearchResult
	err     error
}

// outcomes maps feature wording to the domain sentinel it asserts.
var outcomes = map[string]error{
	"capacity exceeded": domain.ErrCapacityExceeded,
	"empty":             domain.ErrStoreEmpty,
	"not found":         domain.ErrNotFound,
	"no match":          domain.ErrNoMatch,
}

// InitializeScenario registers step definitions for each scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	sc := &storeContext{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*sc = storeContext{}
		return ctx, nil
	})

	ctx.Step(`^an empty quote store$`, sc.anEmptyQuoteStore)
	ctx.Step(`^an empty quote store with capacity (\d+)$`, sc.anEmptyQuoteStoreWithCapacity)
	ctx.Step(`^I insert the quote "([^"]*)" by "([^"]*)" dated "([^"]*)"$`, sc.iInsertTheQuote)
	ctx.Step(`^I search for "([^"]*)"$`, sc.iSearchFor)
	ctx.Step(`^I delete the quote "([^"]*)"$`, sc.iDeleteTheQuote)
	ctx.Step(`^I sort the quotes by date$`, sc.iSortTheQuotesByDate)
	ctx.Step(`^the last operation should report "([^"]*)"$`, sc.theLastOperationShouldReport)
	ctx.Step(`^the store should hold (\d+) quotes$`, sc.theStoreShouldHold)
	ctx.Step(`^the search should return (\d+) results$`, sc.theSearchShouldReturn)
	ctx.Step(`^the texts should be "([^"]*)"$`, sc.theTextsShouldBe)
	ctx.Step(`^the authors should be "([^"]*)"$`, sc.theAuthorsShouldBe)
}

func (sc *storeContext) anEmptyQuoteStore() error {
	sc.store = NewQuoteStore(DefaultCapacity)
	return nil
}

func (sc *storeContext) anEmptyQuoteStoreWithCapacity(capacity int) error {
	sc.store = NewQuoteStore(capacity)
	return nil
}

func (sc *storeContext) iInsertTheQuote(text, author, date string) error {
	sc.err = sc.store.Insert(context.Background(), domain.Quote{Text: text, Author: author, Date: date})
	return nil
}

func (sc *storeContext) iSearchFor(term string) error {
	sc.results, sc.err = sc.store.Search(context.Background(), term)
	return nil
}

func (sc *storeContext) iDeleteTheQuote(text string) error {
	sc.err = sc.store.DeleteByText(context.Background(), text)
	return nil
}

func (sc *storeContext) iSortTheQuotesByDate() error {
	sc.err = sc.store.SortByDate(context.Background())
	return nil
}

func (sc *storeContext) theLastOperationShouldReport(outcome string) error {
	want, ok := outcomes[outcome]
	if !ok {
		return fmt.Errorf("unknown outcome %q", outcome)
	}

	if !errors.Is(sc.err, want) {
		return fmt.Errorf("expected %q, got %v", outcome, sc.err)
	}

	return nil
}

func (sc *storeContext) theStoreShouldHold(n int) error {
	if got := sc.store.Len(); got != n {
		return fmt.Errorf("expected %d quotes, got %d", n, got)
	}

	return nil
}

func (sc *storeContext) theSearchShouldReturn(n int) error {
	if sc.err != nil {
		return fmt.Errorf("search failed: %w", sc.err)
	}

	if len(sc.results) != n {
		return fmt.Errorf("expected %d results, got %d", n, len(sc.results))
	}

	return nil
}

func (sc *storeContext) theTextsShouldBe(joined string) error {
	return sc.fieldsShouldBe(joined, func(q domain.Quote) string { return q.Text })
}

func (sc *storeContext) theAuthorsShouldBe(joined string) error {
	return sc.fieldsShouldBe(joined, func(q domain.Quote) string { return q.Author })
}

func (sc *storeContext) fieldsShouldBe(joined string, field func(domain.Quote) string) error {
	quotes, err := sc.store.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing quotes: %w", err)
	}

	got := make([]string, len(quotes))
	for i, q := range quotes {
		got[i] = field(q)
	}

	if strings.Join(got, "|") != joined {
		return fmt.Errorf("expected %q, got %q", joined, strings.Join(got, "|"))
	}

	return nil
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "quote-store",
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "progress",
			Paths:    []string{"features"},
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
