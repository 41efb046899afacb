package handler

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/scopelog/core"
)

// ZapHandler renders entries into a zap logger. The entry name, when
// present, is attached as a "name" field and the buffered timestamp is
// kept instead of the flush time.
type ZapHandler struct {
	logger *zap.Logger
}

// NewZapHandler creates a handler writing to l.
func NewZapHandler(l *zap.Logger) *ZapHandler {
	return &ZapHandler{logger: l}
}

// NewZapProduction builds a JSON zap logger writing to stderr. level is
// one of "debug", "info", "warning" or "error"; anything else means info.
func NewZapProduction(level string) (*zap.Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	logLevel := zap.InfoLevel
	switch level {
	case "debug":
		logLevel = zap.DebugLevel
	case "warning", "warn":
		logLevel = zap.WarnLevel
	case "error":
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields: map[string]interface{}{
			"pid": os.Getpid(),
		},
	}

	l, err := config.Build()
	if err != nil {
		return nil, errors.Wrap(err, "handler: build zap logger")
	}
	return l, nil
}

// Handle writes the entry at the matching zap level.
func (h *ZapHandler) Handle(entry *core.Entry) error {
	lvl, err := zapLevel(entry.Level)
	if err != nil {
		return err
	}

	ce := h.logger.Check(lvl, entry.Message)
	if ce == nil {
		return nil
	}
	ce.Time = entry.Time
	if entry.Name != "" {
		ce.Write(zap.String("name", entry.Name))
	} else {
		ce.Write()
	}
	return nil
}

// Close flushes the zap logger.
func (h *ZapHandler) Close() error {
	return h.logger.Sync()
}

func zapLevel(level core.Level) (zapcore.Level, error) {
	switch level {
	case core.InfoLevel:
		return zapcore.InfoLevel, nil
	case core.WarnLevel:
		return zapcore.WarnLevel, nil
	case core.ErrorLevel:
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InvalidLevel, errors.Errorf("handler: unknown level %d", int(level))
	}
}
