// Package logger builds the slog loggers used by the invite CLI: a text
// handler on stderr, optionally teed to Sentry when a DSN is configured.
package logger

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"

	"github.com/xob0t/GoInvite/pkg/config"
)

// flushTimeout bounds how long Flush waits for queued Sentry events.
const flushTimeout = 2 * time.Second

// New creates a text logger writing to w. Debug lowers the level to debug.
func New(w io.Writer, debug bool) *slog.Logger {
	return slog.New(textHandler(w, debug))
}

func textHandler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// NewWithSentry creates a logger that writes to w and forwards warnings and
// errors to Sentry. With no DSN only w is used. The returned flush function
// waits for queued events and must be called before the process exits.
func NewWithSentry(cfg config.Logging, w io.Writer) (*slog.Logger, func()) {
	local := textHandler(w, cfg.Debug)
	noop := func() {}

	if cfg.SentryDSN == "" {
		return slog.New(local), noop
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(local), noop
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	flush := func() { sentry.Flush(flushTimeout) }
	return slog.New(newMultiHandler(local, remote)), flush
}
