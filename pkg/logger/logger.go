package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Text handler for development, JSON for production
	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("error", err.Error()))}
}

// WithFields adds multiple fields to logger context
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	return &Logger{Logger: l.Logger.With(args...)}
}

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.Int("size", c.Writer.Size()),
	)
}

// LogHoldCreated logs a successful seat hold
func (l *Logger) LogHoldCreated(ctx context.Context, holdID, eventID string, seatCount int) {
	l.Logger.InfoContext(ctx,
		"Seat Hold Created",
		slog.String("hold_id", holdID),
		slog.String("event_id", eventID),
		slog.Int("seat_count", seatCount),
	)
}

// LogHoldReleased logs a hold release
func (l *Logger) LogHoldReleased(ctx context.Context, holdID string, released int64) {
	l.Logger.InfoContext(ctx,
		"Seat Hold Released",
		slog.String("hold_id", holdID),
		slog.Int64("seats_released", released),
	)
}

// LogHoldConflict logs a rejected hold attempt
func (l *Logger) LogHoldConflict(ctx context.Context, eventID string, seats []string) {
	l.Logger.WarnContext(ctx,
		"Seat Hold Conflict",
		slog.String("event_id", eventID),
		slog.Any("conflicting_seats", seats),
	)
}

// LogInventoryReadFailed logs an inventory source outage; reads abort rather
// than degrade to an empty result.
func (l *Logger) LogInventoryReadFailed(ctx context.Context, eventID, source string, err error) {
	l.Logger.ErrorContext(ctx,
		"Inventory Read Failed",
		slog.String("event_id", eventID),
		slog.String("source", source),
		slog.String("error", err.Error()),
	)
}

// LogRateLimitExceeded logs rate limit exceeded
func (l *Logger) LogRateLimitExceeded(ctx context.Context, ip, endpoint string) {
	l.Logger.WarnContext(ctx,
		"Rate Limit Exceeded",
		slog.String("ip", ip),
		slog.String("endpoint", endpoint),
	)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
