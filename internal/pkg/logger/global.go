package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	once         sync.Once
	mu           sync.RWMutex
)

type ctxKey struct{}

// SetGlobalLogger sets the process wide logger. Call it once at startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the process wide logger, falling back to a zap
// production logger when none was set
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	once.Do(func() {
		def, _ := zap.NewProduction()
		mu.Lock()
		if globalLogger == nil {
			globalLogger = &ZapLogger{Logger: def, sugar: def.Sugar()}
		}
		mu.Unlock()
	})

	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// WithRequestID stores a request id that the *Ctx helpers attach to entries
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// RequestID returns the request id stored in ctx, if any
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func fromContext(ctx context.Context) *zap.Logger {
	l := GetGlobalLogger().Logger
	if id := RequestID(ctx); id != "" {
		return l.With(zap.String("request_id", id))
	}
	return l
}

// InfoCtx logs an info message tagged with the request id in ctx
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Info(msg, fields...)
}

// WarnCtx logs a warning tagged with the request id in ctx
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Warn(msg, fields...)
}

// ErrorCtx logs an error tagged with the request id in ctx
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Error(msg, fields...)
}

// DebugCtx logs a debug message tagged with the request id in ctx
func DebugCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Debug(msg, fields...)
}
