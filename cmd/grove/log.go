package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(w io.Writer, verbose, json bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	var encoder zapcore.Encoder
	if json {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "time"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level))
}

// Logf logs progress messages, shown only when running verbosely.
func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	rcc.Logger().Sugar().Debugf(format, a...)
}

// Logger returns the logger of the command, a no-op one before initialization.
func (rcc *rootCmdConfig) Logger() *zap.Logger {
	if rcc.logger == nil {
		return zap.NewNop()
	}
	return rcc.logger
}

func (rcc *rootCmdConfig) Sync() {
	_ = rcc.Logger().Sync()
}

func (rcc *rootCmdConfig) fail(code int, err error) {
	rcc.Logger().Debug("command failed", zap.Int("exitCode", code), zap.Error(err))
	rcc.Sync()
	fmt.Fprintln(os.Stderr, err)
	os.Exit(code)
}
