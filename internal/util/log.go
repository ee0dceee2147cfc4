package util

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.Mutex
	level   = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	console io.Writer = os.Stderr
	logFile *os.File

	logger = zap.NewNop()
	done   = zap.NewNop()
)

func init() {
	rebuild()
}

// tag renders the level as a bracketed tag, colored for the terminal.
func tag(color bool, success bool) zapcore.LevelEncoder {
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		text, code := "[INFO]", "34"
		switch {
		case success:
			text, code = "[DONE]", "32"
		case l == zapcore.DebugLevel:
			text, code = "[DEBUG]", "90"
		case l == zapcore.WarnLevel:
			text, code = "[WARN]", "33"
		case l >= zapcore.ErrorLevel:
			text, code = "[FAIL]", "31"
		}
		if color {
			text = "\033[" + code + "m" + text + "\033[0m"
		}
		enc.AppendString(text)
	}
}

func encoder(color, success, withTime bool) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeLevel:      tag(color, success),
		ConsoleSeparator: " ",
	}
	if withTime {
		cfg.TimeKey = "ts"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	return zapcore.NewConsoleEncoder(cfg)
}

func newLogger(success bool) *zap.Logger {
	cores := []zapcore.Core{
		zapcore.NewCore(encoder(true, success, false), zapcore.AddSync(console), level),
	}
	if logFile != nil {
		cores = append(cores, zapcore.NewCore(encoder(false, success, true), zapcore.AddSync(logFile), level))
	}
	return zap.New(zapcore.NewTee(cores...))
}

func rebuild() {
	logger = newLogger(false)
	done = newLogger(true)
}

// SetOutput redirects terminal logging, mostly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	console = w
	rebuild()
}

func SetVerbose(v bool) {
	if v {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}
}

// SetLogFile tees every log line, without colors, into path.
func SetLogFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	rebuild()
	return nil
}

func CloseLogFile() {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return
	}
	_ = logger.Sync()
	logFile.Close()
	logFile = nil
	rebuild()
}

// L exposes the structured logger for callers that want fields.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func Sync() {
	_ = L().Sync()
}

func Debug(msg string, args ...interface{}) {
	L().Debug(fmt.Sprintf(msg, args...))
}

func Info(msg string, args ...interface{}) {
	L().Info(fmt.Sprintf(msg, args...))
}

func Warn(msg string, args ...interface{}) {
	L().Warn(fmt.Sprintf(msg, args...))
}

func Success(msg string, args ...interface{}) {
	mu.Lock()
	d := done
	mu.Unlock()
	d.Info(fmt.Sprintf(msg, args...))
}

func Fail(msg string, args ...interface{}) {
	L().Error(fmt.Sprintf(msg, args...))
}
