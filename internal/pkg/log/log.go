package log

import (
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Setup builds the process logger. Call sites log through Ctx(ctx) so
// records carry the trace of the request that produced them.
func Setup() *otelzap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return otelzap.New(logger,
		otelzap.WithMinLevel(zapcore.InfoLevel),
		otelzap.WithTraceIDField(true),
	)
}

// Nop is used by tests that do not assert on log output.
func Nop() *otelzap.Logger {
	return otelzap.New(zap.NewNop())
}
