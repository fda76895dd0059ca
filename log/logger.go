// Package log provides structured logging for prospector.
//
// Log output goes to an append-only rotating file, never to the terminal:
// the terminal belongs to the wizard prompts and rendered tables. Every
// external command failure and parse failure is recorded at error level,
// every constructed search query at info level.
package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultPath is the log file used when neither the config file nor the
// --log-file flag names one.
const DefaultPath = "prospector.log"

// Logger writes timestamped, leveled JSON entries to the log sink.
type Logger struct {
	zap *zap.Logger
}

// NewLogger creates a logger appending to the file at path.
// Rotation keeps the sink bounded; rotated files are retained so the
// history of command failures survives restarts.
func NewLogger(path string) *Logger {
	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}
	return newLoggerWithWriter(zapcore.AddSync(sink))
}

// NewWithWriter creates a logger writing to w. Used by tests to capture
// log output without touching the filesystem.
func NewWithWriter(w io.Writer) *Logger {
	return newLoggerWithWriter(zapcore.AddSync(w))
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

func newLoggerWithWriter(ws zapcore.WriteSyncer) *Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:     "timestamp",
		LevelKey:    "level",
		MessageKey:  "message",
		EncodeTime:  zapcore.RFC3339TimeEncoder,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		ws,
		zapcore.InfoLevel,
	)
	return &Logger{zap: zap.New(core)}
}

// With returns a child logger carrying additional context fields on every
// entry (e.g. the target org alias once the wizard has collected it).
func (l *Logger) With(fields map[string]any) *Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return &Logger{zap: l.zap.With(zapFields...)}
}

// Info logs an info message.
func (l *Logger) Info(message string, fields map[string]any) {
	l.zap.Info(message, zap.Any("fields", fields))
}

// Warn logs a warning message.
func (l *Logger) Warn(message string, fields map[string]any) {
	l.zap.Warn(message, zap.Any("fields", fields))
}

// Error logs an error message.
func (l *Logger) Error(message string, fields map[string]any) {
	l.zap.Error(message, zap.Any("fields", fields))
}

// Sync flushes buffered entries. Call before process exit.
func (l *Logger) Sync() {
	_ = l.zap.Sync()
}
