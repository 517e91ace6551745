package codec

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the codec package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the codec package's logger.
// This must be called before any cursor is used.
func SetLogger(l *zap.Logger) {
	logger = l
}

// debugEvent logs msg at debug level when enabled. Only failure paths call it.
func debugEvent(msg string, fields ...zap.Field) {
	if ce := Logger().Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(fields...)
	}
}
