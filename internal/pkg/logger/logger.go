// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. It emits JSON logs to stdout at a configurable
// level, enriches every entry with the run ID and the active trace/span IDs
// found in the context, and adds an OTEL bridge core when a LoggerProvider is
// supplied.
//
// Until Init is called the global logger discards everything, so packages that
// log can be exercised from tests without any setup.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// baseLogger is the global SugaredLogger instance. It is replaced once by Init.
	baseLogger = zap.NewNop().Sugar()

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once
)

// instrumentationName identifies this package to the OpenTelemetry LoggerProvider.
const instrumentationName = "github.com/gabapcia/btcwatch/internal/pkg/logger"

// runIDKey is the context key under which the invocation run ID is stored.
type runIDKey struct{}

// config holds configuration options for the logger.
type config struct {
	level          string            // the minimum log level (debug, info, warn, error, panic, fatal)
	output         io.Writer         // destination of the JSON entries
	loggerProvider log.LoggerProvider // receives a copy of every entry when set
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level for the global logger.
// Example levels: "debug", "info", "warn", "error", "panic", "fatal".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput redirects log entries to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// WithLoggerProvider forwards every entry to lp through the otelzap bridge,
// in addition to the JSON output. A nil lp is ignored.
func WithLoggerProvider(lp log.LoggerProvider) Option {
	return func(c *config) {
		c.loggerProvider = lp
	}
}

// Init configures the global logger. By default it logs JSON to stdout at the
// "info" level. Calling Init multiple times has no effect after the first
// successful initialization.
//
// Returns an error if parsing the log level fails or if the LoggerProvider
// drops entries at the configured level.
func Init(opts ...Option) error {
	cfg := config{level: "info", output: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(cfg.output),
			level,
		),
	}

	if cfg.loggerProvider != nil {
		bridge, err := zapcore.NewIncreaseLevelCore(
			otelzap.NewCore(instrumentationName, otelzap.WithLoggerProvider(cfg.loggerProvider)),
			level,
		)
		if err != nil {
			return err
		}

		cores = append(cores, bridge)
	}

	initBaseLoggerOnce.Do(func() {
		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return baseLogger.Sync()
}

// WithRunID returns a copy of ctx carrying id. Every entry logged with the
// returned context includes it as "run_id".
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunID returns the run ID stored in ctx, or an empty string.
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// withContext returns the base logger enriched with the run ID and trace info held by ctx.
func withContext(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return baseLogger
	}

	l := baseLogger
	if id := RunID(ctx); id != "" {
		l = l.With("run_id", id)
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		l = l.With("trace_id", sc.TraceID().String(), "span_id", sc.SpanID().String())
	}

	return l
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	withContext(ctx).Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	withContext(ctx).Infow(msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	withContext(ctx).Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	withContext(ctx).Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	withContext(ctx).Fatalw(msg, keysAndValues...)
}

// leveled adapts the global logger to the retryablehttp.LeveledLogger interface.
type leveled struct{}

func (leveled) Error(msg string, keysAndValues ...any) { baseLogger.Errorw(msg, keysAndValues...) }
func (leveled) Info(msg string, keysAndValues ...any)  { baseLogger.Infow(msg, keysAndValues...) }
func (leveled) Debug(msg string, keysAndValues ...any) { baseLogger.Debugw(msg, keysAndValues...) }
func (leveled) Warn(msg string, keysAndValues ...any)  { baseLogger.Warnw(msg, keysAndValues...) }

// Leveled returns a logger with the context-free Error/Info/Debug/Warn method
// set expected by third-party clients such as retryablehttp.
func Leveled() leveled {
	return leveled{}
}
