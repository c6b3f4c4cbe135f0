// Package logger configures the shared zap logger with file rotation.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide structured logger. Init must be called before use.
var Logger *zap.Logger

// Init sets up JSON logging to a rotated file plus stderr for warnings.
func Init() {
	logPath := os.Getenv("LOG_FILE")
	if logPath == "" {
		logPath = "./logs/linguabot.log"
	}

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    50, // MB
		MaxBackups: 7,
		MaxAge:     14, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, fileWriter, zap.InfoLevel),
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), zap.WarnLevel),
	)
	Logger = zap.New(core, zap.AddCaller())
}

// L returns the shared logger, falling back to a no-op logger when Init has
// not run (useful in tests).
func L() *zap.Logger {
	if Logger == nil {
		return zap.NewNop()
	}
	return Logger
}
