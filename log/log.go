// Package log is the ambient structured-logging seam for this module.
// The parser, sorter, matcher, and digester stay pure and never touch this
// package; only Matcher.Select and the cache log, and only at debug level,
// so the module stays silent by default.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface this module depends on, so callers may
// plug in their own implementation instead of ZapLogger.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

// ZapLogger is the default Logger implementation, backed by a zap.SugaredLogger.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

func (z *ZapLogger) Debug(args ...interface{})                 { z.logger.Debug(args...) }
func (z *ZapLogger) Debugf(format string, args ...interface{}) { z.logger.Debugf(format, args...) }
func (z *ZapLogger) Info(args ...interface{})                  { z.logger.Info(args...) }
func (z *ZapLogger) Infof(format string, args ...interface{})  { z.logger.Infof(format, args...) }
func (z *ZapLogger) Warn(args ...interface{})                  { z.logger.Warn(args...) }
func (z *ZapLogger) Warnf(format string, args ...interface{})  { z.logger.Warnf(format, args...) }
func (z *ZapLogger) Error(args ...interface{})                 { z.logger.Error(args...) }
func (z *ZapLogger) Errorf(format string, args ...interface{}) { z.logger.Errorf(format, args...) }

// NewZapLogger builds a ZapLogger that writes leveled console output to
// stderr at debug level and above.
func NewZapLogger() *ZapLogger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      "C",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(zapcore.DebugLevel),
	)
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return &ZapLogger{logger: logger.Sugar()}
}

// nopLogger discards everything; it is the default for constructors not
// given a Logger explicitly, so the module stays silent unless asked.
type nopLogger struct{}

func (nopLogger) Debug(args ...interface{})                 {}
func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Info(args ...interface{})                  {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warn(args ...interface{})                  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Error(args ...interface{})                 {}
func (nopLogger) Errorf(format string, args ...interface{}) {}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }
