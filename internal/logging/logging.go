package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's sugared logger for structured key-value logging.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger creates a console logger on stderr. Verbose enables
// debug-level output.
func NewLogger(verbose bool) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = true

	logger, err := config.Build()
	if err != nil {
		logger = zap.NewNop()
	}

	return &Logger{logger.Sugar()}
}
