package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

type Field struct {
	Key   string
	Value any
}

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Enabled(level Level) bool
	Sync() error
}

// FileOptions configures the rotating log file.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type zapLogger struct {
	base  *zap.Logger
	level Level
}

// New writes JSON lines to out.
func New(out io.Writer, level Level) Logger {
	if out == nil {
		out = os.Stdout
	}
	return newZapLogger(zapcore.AddSync(out), level)
}

// NewFile writes JSON lines to a lumberjack-rotated file. The TUI owns the
// terminal, so nothing is teed to stdout.
func NewFile(opts FileOptions, level Level) (Logger, error) {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return Nop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
	return newZapLogger(zapcore.AddSync(rotator), level), nil
}

func Nop() Logger {
	return &zapLogger{base: zap.NewNop(), level: Error + 1}
}

func newZapLogger(sink zapcore.WriteSyncer, level Level) Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.MessageKey = "msg"
	encoderConfig.LevelKey = "level"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, zapLevel(level))
	return &zapLogger{base: zap.New(core), level: level}
}

func (l *zapLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}
	return level >= l.level
}

func (l *zapLogger) With(fields ...Field) Logger {
	if l == nil {
		return Nop()
	}
	return &zapLogger{base: l.base.With(zapFields(fields)...), level: l.level}
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.log(Debug, msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.log(Info, msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.log(Warn, msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.log(Error, msg, fields...) }

func (l *zapLogger) Sync() error {
	if l == nil {
		return nil
	}
	return l.base.Sync()
}

func (l *zapLogger) log(level Level, msg string, fields ...Field) {
	if l == nil || level < l.level {
		return
	}
	zf := zapFields(fields)
	switch level {
	case Debug:
		l.base.Debug(msg, zf...)
	case Warn:
		l.base.Warn(msg, zf...)
	case Error:
		l.base.Error(msg, zf...)
	default:
		l.base.Info(msg, zf...)
	}
}

func zapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			out = append(out, zap.NamedError(field.Key, err))
			continue
		}
		out = append(out, zap.Any(field.Key, field.Value))
	}
	return out
}

func zapLevel(level Level) zapcore.Level {
	switch level {
	case Debug:
		return zapcore.DebugLevel
	case Warn:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func ParseLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}
