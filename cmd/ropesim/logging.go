package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logDir        = "logs"
	logFileName   = "ropesim.log"
	maxLogSizeMB  = 10
	maxLogSize    = maxLogSizeMB << 20
	maxLogBackups = 3
)

// setupLogging builds the process logger
// The terminal owns stdout, so without debug every log line is discarded
// The returned func flushes and closes the log file
func setupLogging(debug bool) (*zap.Logger, func()) {
	if !debug {
		log.SetOutput(io.Discard)
		return zap.NewNop(), func() {}
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return zap.NewNop(), func() {}
	}

	sink := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, logFileName),
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(sink), zap.DebugLevel)
	logger := zap.New(core, zap.AddCaller())

	// Stray stdlib log calls land in the same file
	restore := zap.RedirectStdLog(logger)

	return logger, func() {
		_ = logger.Sync()
		restore()
		log.SetOutput(io.Discard)
		_ = sink.Close()
	}
}
