package logger

import (
	"github.com/pkg/errors"

	"github.com/philipp01105/scopelog/formatter"
	"github.com/philipp01105/scopelog/handler"
)

// Sink names accepted by Config.Sink.
const (
	// SinkConsole renders through handler.ConsoleHandler
	SinkConsole = "console"
	// SinkZap renders through handler.ZapHandler
	SinkZap = "zap"
)

// Format names accepted by Config.Format.
const (
	// FormatText selects formatter.TextFormatter
	FormatText = "text"
	// FormatJSON selects formatter.JSONFormatter
	FormatJSON = "json"
)

// Config selects and configures the handler of a root Logger.
type Config struct {
	// Sink selects the handler: "console" (default) or "zap".
	Sink string `yaml:"sink" envconfig:"SCOPELOG_SINK"`

	// Format selects the console output format: "text" (default) or "json".
	Format string `yaml:"format" envconfig:"SCOPELOG_FORMAT"`

	// Level is the minimum level of the zap backend:
	// debug, info (default), warning or error.
	Level string `yaml:"level" envconfig:"SCOPELOG_ZAP_LEVEL"`
}

// NewFromConfig builds a root Logger from cfg.
func NewFromConfig(cfg Config) (*Logger, error) {
	h, err := newHandler(cfg)
	if err != nil {
		return nil, err
	}
	return New(h), nil
}

func newHandler(cfg Config) (handler.Handler, error) {
	switch cfg.Sink {
	case "", SinkConsole:
		var f formatter.Formatter
		switch cfg.Format {
		case "", FormatText:
			f = formatter.NewTextFormatter(formatter.Config{})
		case FormatJSON:
			f = formatter.NewJSONFormatter(formatter.Config{})
		default:
			return nil, errors.Errorf("logger: unknown format %q", cfg.Format)
		}
		return handler.NewConsoleHandler(handler.ConsoleConfig{Formatter: f}), nil
	case SinkZap:
		z, err := handler.NewZapProduction(cfg.Level)
		if err != nil {
			return nil, err
		}
		return handler.NewZapHandler(z), nil
	default:
		return nil, errors.Errorf("logger: unknown sink %q", cfg.Sink)
	}
}
