package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared application logger
var Log *zap.SugaredLogger

func init() {
	// Default logger so packages can log before Init runs (tests, tools)
	Log = build(false)
}

// Init configures the global logger. Debug enables verbose output
// with a human-friendly console encoder.
func Init(debug bool) {
	Log = build(debug)
}

// Sync flushes any buffered log entries
func Sync() {
	_ = Log.Sync()
}

func build(debug bool) *zap.SugaredLogger {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "timestamp",
		CallerKey:      "caller",
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stdout),
		level,
	)

	return zap.New(core, zap.AddCaller()).Sugar()
}
