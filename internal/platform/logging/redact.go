package logging

import (
	"context"
	"log/slog"
	"regexp"
	"slices"

	"github.com/m-mizutani/masq"
)

// bearerPattern matches Authorization-style values that leak through env or config dumps.
var bearerPattern = regexp.MustCompile(`(?i)^(bearer|basic)\s+.+$`)

// DefaultRedactOptions returns the masq options applied to every JSON and text log line.
// Quotes themselves are never redacted; these guard configuration values that
// may end up in diagnostics.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("token"),
		masq.WithFieldName("api_key"),
		masq.WithFieldName("apiKey"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("credentials"),
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
		masq.WithRegex(bearerPattern),
	}
}

// NewReplaceAttr creates a ReplaceAttr function for slog.HandlerOptions
// that redacts sensitive data. Extra options extend DefaultRedactOptions.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	allOpts := append(DefaultRedactOptions(), opts...)
	return masq.New(allOpts...)
}

// redactHandler runs a ReplaceAttr function over every attribute before the
// wrapped handler sees it. Group attributes are walked so nested keys are
// matched with their group path.
type redactHandler struct {
	next    slog.Handler
	replace func(groups []string, a slog.Attr) slog.Attr
	groups  []string
}

func newRedactHandler(next slog.Handler, replace func(groups []string, a slog.Attr) slog.Attr) *redactHandler {
	return &redactHandler{next: next, replace: replace}
}

func (h *redactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *redactHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.redact(h.groups, a))
		return true
	})

	return h.next.Handle(ctx, out)
}

func (h *redactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.redact(h.groups, a)
	}

	return &redactHandler{next: h.next.WithAttrs(redacted), replace: h.replace, groups: h.groups}
}

func (h *redactHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &redactHandler{next: h.next.WithGroup(name), replace: h.replace, groups: append(slices.Clip(h.groups), name)}
}

func (h *redactHandler) redact(groups []string, a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() != slog.KindGroup {
		return h.replace(groups, a)
	}

	children := a.Value.Group()
	redacted := make([]slog.Attr, len(children))

	nested := append(slices.Clip(groups), a.Key)
	for i, child := range children {
		redacted[i] = h.redact(nested, child)
	}

	return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}
}
