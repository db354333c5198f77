package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		verbose bool
		want    slog.Level
	}{
		{name: "default", want: slog.LevelWarn},
		{name: "verbose", verbose: true, want: slog.LevelInfo},
		{name: "debug", debug: true, want: slog.LevelDebug},
		{name: "debug wins", debug: true, verbose: true, want: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFromFlags(tt.debug, tt.verbose))
		})
	}
}

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, slog.LevelWarn)

	l.Info("hidden")
	l.Warn("shown", "table", "clientes")
	l.GetSlogLogger().Error("failed", Error(errors.New("boom")))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown table=clientes")
	assert.Contains(t, out, "error=boom")
}
