package logging

import (
	"testing"

	"github.com/milk9111/transform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		name    string
		cfg     config.Logging
		verbose bool
		want    zapcore.Level
	}{
		{"default", config.Logging{Format: "json"}, false, zapcore.InfoLevel},
		{"warn", config.Logging{Level: "warn", Format: "console"}, false, zapcore.WarnLevel},
		{"verbose_wins", config.Logging{Level: "error", Format: "json"}, true, zapcore.DebugLevel},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l, err := New(c.cfg, c.verbose)
			require.NoError(t, err)
			assert.Equal(t, c.want, l.Level())
		})
	}
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(config.Logging{Level: "loud"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging:")
}
