package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/philipp01105/scopelog/handler"
)

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    interface{}
		wantErr bool
	}{
		{name: "default", cfg: Config{}, want: &handler.ConsoleHandler{}},
		{name: "json console", cfg: Config{Sink: SinkConsole, Format: FormatJSON}, want: &handler.ConsoleHandler{}},
		{name: "zap", cfg: Config{Sink: SinkZap, Level: "error"}, want: &handler.ZapHandler{}},
		{name: "unknown sink", cfg: Config{Sink: "kafka"}, wantErr: true},
		{name: "unknown format", cfg: Config{Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewFromConfig(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, l.handler)
			assert.Equal(t, 1, l.Depth())
		})
	}
}

func TestFXModule(t *testing.T) {
	var l *Logger
	app := fxtest.New(t,
		fx.Supply(Config{}),
		FXModule,
		fx.Populate(&l),
	)
	app.RequireStart()
	require.NotNil(t, l)

	// Swap in a recording handler to observe the shutdown flush.
	h := &recordingHandler{}
	l.handler = h
	l.Info("app", "pending at shutdown")

	app.RequireStop()
	assert.Equal(t, []string{"pending at shutdown"}, h.messages())
	assert.True(t, h.closed)
}
