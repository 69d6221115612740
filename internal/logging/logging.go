// Package logging builds the zap loggers used by the binaries.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options are the logging flags shared by every binary.
type Options struct {
	Level      string `long:"log-level" env:"LOG_LEVEL" description:"log level (debug, info, warn, error)" default:"info"`
	File       string `long:"log-file" env:"LOG_FILE" description:"also write JSON logs to this rotated file"`
	MaxSizeMB  int    `long:"log-max-size" env:"LOG_MAX_SIZE" description:"megabytes per log file before rotation" default:"100"`
	MaxBackups int    `long:"log-max-backups" env:"LOG_MAX_BACKUPS" description:"rotated log files to keep" default:"5"`
	MaxAgeDays int    `long:"log-max-age" env:"LOG_MAX_AGE" description:"days to keep rotated log files" default:"14"`
}

// New returns a console logger at the configured level, teed into a rotated JSON file
// when Options.File is set.
func New(opts Options) (*zap.Logger, error) {
	return build(opts, zapcore.Lock(os.Stderr))
}

func build(opts Options, console zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	atomic := zap.NewAtomicLevelAt(level)

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), console, atomic),
	}

	if opts.File != "" {
		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(fileCfg),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   opts.File,
				MaxSize:    opts.MaxSizeMB,
				MaxBackups: opts.MaxBackups,
				MaxAge:     opts.MaxAgeDays,
				Compress:   true,
			}),
			atomic,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}
