package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides a root *Logger built from Config and flushes it on
// shutdown.
var FXModule = fx.Module("scopelog",
	fx.Provide(
		NewFromConfig,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle renders whatever is still pending on stop and
// closes the handler.
func RegisterLoggerLifecycle(lc fx.Lifecycle, l *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			l.Write()
			return l.Close()
		},
	})
}
