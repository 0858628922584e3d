package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production logger at the given level writing to stderr
// and, when set, to logFile as well
func New(level, logFile string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(ParseLevel(level))

	outputs := []string{"stderr"}
	if logFile != "" {
		outputs = append(outputs, logFile)
	}
	config.OutputPaths = outputs
	config.ErrorOutputPaths = outputs
	config.Encoding = "console"
	config.EncoderConfig.TimeKey = "t"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.DisableCaller = true
	config.DisableStacktrace = true

	return config.Build()
}

// ParseLevel maps debug, warn and error to their zap levels; anything else is info
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
