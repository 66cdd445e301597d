package cli

import (
	"io"
	"log/slog"

	"github.com/aretw0/sortscope"
	"github.com/aretw0/sortscope/internal/config"
	"github.com/aretw0/sortscope/internal/logging"
	"github.com/aretw0/sortscope/pkg/domain"
	"github.com/aretw0/sortscope/pkg/observability"
)

// NewLogger configures the application logger on w, normally stderr.
// Debug forces the debug level; otherwise the configured level applies.
func NewLogger(w io.Writer, cfg config.Config, debug bool) *slog.Logger {
	if debug {
		return logging.NewWriter(w, slog.LevelDebug, logging.FormatText)
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return logging.NewWriter(w, level, logging.FormatText)
}

// NewEngine initializes an engine with standard CLI conventions.
func NewEngine(cfg config.Config, logger *slog.Logger, debug bool, hooks ...domain.LifecycleHooks) *sortscope.Engine {
	if debug {
		hooks = append(hooks, observability.LoggingHooks(logger))
	}
	opts := []sortscope.Option{
		sortscope.WithLogger(logger),
		sortscope.WithLifecycleHooks(observability.Combine(hooks...)),
	}
	if cfg.Seed != 0 {
		opts = append(opts, sortscope.WithSeed(cfg.Seed))
	}
	return sortscope.New(opts...)
}
