package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps zap with optional file output and a fixed service name
type ZapLogger struct {
	*zap.Logger
	sugar    *zap.SugaredLogger
	service  string
	filePath string
	file     *os.File
}

// ZapConfig holds Zap logger configuration
type ZapConfig struct {
	Level    string
	FilePath string
	Service  string
}

// NewZapLogger creates a JSON logger writing to stdout and, when FilePath is
// set, to that file as well
func NewZapLogger(config ZapConfig) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}

	zl := &ZapLogger{
		service:  config.Service,
		filePath: config.FilePath,
	}

	if config.FilePath != "" {
		if err := zl.openFile(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(zl.file), level))
	}

	opts := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)}
	if config.Service != "" {
		opts = append(opts, zap.Fields(zap.String("service", config.Service)))
	}

	zl.Logger = zap.New(zapcore.NewTee(cores...), opts...)
	zl.sugar = zl.Logger.Sugar()

	return zl, nil
}

// NewFromConfig builds the logger described by the application config
func NewFromConfig(cfg *models.Config) (*ZapLogger, error) {
	return NewZapLogger(ZapConfig{
		Level:    cfg.Logger.Level,
		FilePath: cfg.Logger.FilePath,
		Service:  cfg.App.Name,
	})
}

// NewNop returns a logger that discards everything, for tests
func NewNop() *ZapLogger {
	l := zap.NewNop()
	return &ZapLogger{Logger: l, sugar: l.Sugar()}
}

func (zl *ZapLogger) openFile(filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	zl.file = file
	return nil
}

// Close flushes buffered entries and closes the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()

	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}

// Sugar returns the sugared logger
func (zl *ZapLogger) Sugar() *zap.SugaredLogger {
	return zl.sugar
}

// FilePath returns the log file path, empty when logging to stdout only
func (zl *ZapLogger) FilePath() string {
	return zl.filePath
}

// LogHTTPRequest logs a served request at a level derived from its status
func (zl *ZapLogger) LogHTTPRequest(method, path, clientIP, requestID string, statusCode int, latency time.Duration, err error) {
	l := zl.Logger.With(
		zap.Int("status", statusCode),
		zap.String("latency", latency.String()),
		zap.Int64("latency_ms", latency.Milliseconds()),
		zap.String("client_ip", clientIP),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)

	switch {
	case statusCode >= 500:
		if err != nil {
			l.Error("Server error", zap.Error(err))
			return
		}
		l.Error("Server error")
	case statusCode >= 400:
		l.Warn("Client error")
	default:
		l.Info("Request processed")
	}
}
