// Package main is the entry point for the quote organizer.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quote-organizer/internal/adapters/console"
	"github.com/jsamuelsen/quote-organizer/internal/adapters/memory"
	"github.com/jsamuelsen/quote-organizer/internal/app"
	"github.com/jsamuelsen/quote-organizer/internal/platform/config"
	"github.com/jsamuelsen/quote-organizer/internal/platform/logging"
	"github.com/jsamuelsen/quote-organizer/internal/platform/metrics"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

// options holds the command-line flags.
type options struct {
	profile  string
	capacity int
	noColor  bool
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "quotes",
		Short: "interactive organizer for daily quotes",
		Long: `quotes keeps a list of quotes in memory for one session.

pick numbered menu options to insert, display, search, delete and sort
quotes by date. nothing is saved when the session ends.
`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), &opts, overrides(cmd, &opts), streams{
				in:  cmd.InOrStdin(),
				out: cmd.OutOrStdout(),
				err: cmd.ErrOrStderr(),
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.profile, "profile", "p", "",
		"configuration profile, loads configs/<profile>.yaml (default $APP_ENVIRONMENT or local)")
	flags.IntVar(&opts.capacity, "capacity", config.DefaultStoreCapacity,
		"maximum number of quotes, 0 for unbounded")
	flags.BoolVar(&opts.noColor, "no-color", false,
		"disable coloured menu output")
	flags.StringVar(&opts.logLevel, "log-level", "",
		"log level: trace, debug, info, warn or error")

	return cmd
}

// overrides returns config keys for the flags the user set explicitly, so
// flag defaults never mask files or environment variables.
func overrides(cmd *cobra.Command, opts *options) map[string]any {
	flags := cmd.Flags()
	out := make(map[string]any)

	if flags.Changed("capacity") {
		out["store.capacity"] = opts.capacity
	}

	if flags.Changed("no-color") {
		out["shell.color"] = !opts.noColor
	}

	if flags.Changed("log-level") {
		out["log.level"] = opts.logLevel
	}

	return out
}

// streams carries the session's standard streams. Logs go to err so they
// stay off the menu output.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func run(ctx context.Context, opts *options, flagOverrides map[string]any, std streams) error {
	// 1. Determine profile from flag, then environment
	profile := opts.profile
	if profile == "" {
		profile = os.Getenv("APP_ENVIRONMENT")
	}

	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile, flagOverrides)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, std.err)
	logging.SetDefault(logger)

	logger.Info("starting session",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.Int("capacity", cfg.Store.Capacity),
	)

	// 4. Initialize metrics (nil when disabled)
	var recorder *metrics.Metrics
	if cfg.Metrics.Enabled {
		recorder = metrics.New("quotes")
	}

	// 5. Create store and quote service
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Store:    memory.NewQuoteStore(cfg.Store.Capacity),
		Recorder: recorderOrNil(recorder),
		Logger:   logger,
	})

	// 6. Create shell
	shell := console.New(console.Config{
		Service: quoteService,
		In:      std.in,
		Out:     std.out,
		Color:   cfg.Shell.Color,
		Logger:  logger,
	})

	// 7. Run the shell until exit, end of input or a signal
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = logging.WithSessionID(logging.WithContext(ctx, logger), "")

	shellErr := make(chan error, 1)

	go func() {
		shellErr <- shell.Run(ctx)
	}()

	select {
	case err = <-shellErr:
		logger.Info("session ended", slog.Int("quotes", quoteService.Count()))
	case <-ctx.Done():
		err = ctx.Err()
	}

	if errors.Is(err, context.Canceled) {
		logger.Info("session interrupted")

		err = nil
	}

	// 8. Flush metrics
	if recorder != nil {
		if writeErr := recorder.WriteTextfile(cfg.Metrics.Textfile); writeErr != nil {
			err = errors.Join(err, writeErr)
		}
	}

	if err != nil {
		return fmt.Errorf("running shell: %w", err)
	}

	return nil
}

// recorderOrNil keeps a nil *metrics.Metrics from becoming a non-nil interface.
func recorderOrNil(m *metrics.Metrics) app.Recorder {
	if m == nil {
		return nil
	}

	return m
}
