// Package logger holds the process wide logger of the command line tool.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config of the process wide logger.
type Config struct {
	// Verbose enables debug output. Otherwise only warnings and errors are printed.
	Verbose bool
}

var (
	mu     sync.RWMutex
	global = zap.NewNop().Sugar()
)

// Init replaces the global logger by a console logger writing to stderr.
func Init(cfg Config) *zap.SugaredLogger {
	return InitWithSink(cfg, zapcore.Lock(os.Stderr))
}

// InitWithSink is like Init but writes to sink.
func InitWithSink(cfg Config, sink zapcore.WriteSyncer) *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), sink, level)
	log := zap.New(core).Sugar()

	mu.Lock()
	global = log
	mu.Unlock()

	return log
}

// Logger returns the global logger. It discards everything until Init was called.
func Logger() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Sync flushes the global logger.
func Sync() {
	// Syncing stderr fails on some platforms, which is of no interest.
	_ = Logger().Sync()
}
