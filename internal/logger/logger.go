// Package logger builds the application's zap logger. In debug mode output
// goes to stderr with a console encoder; in release mode it is JSON, with
// optional size-based file rotation.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 7
	defaultMaxAgeDays = 30
)

// Options controls optional file output.
type Options struct {
	// File is the log file path. Empty disables file output.
	File string
}

// Init builds the logger and installs it as zap's global.
func Init(mode string, options Options) *zap.Logger {
	log := New(mode, options)
	zap.ReplaceGlobals(log)
	return log
}

// New creates a logger for the given mode ("debug" or "release").
func New(mode string, options Options) *zap.Logger {
	debug := strings.EqualFold(strings.TrimSpace(mode), "debug")

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if debug {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if debug {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level),
	}

	if options.File != "" {
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   options.File,
			MaxSize:    defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAge:     defaultMaxAgeDays,
			Compress:   true,
		})
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, fileSink, level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}
