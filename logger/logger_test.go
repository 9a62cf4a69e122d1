package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"", "development", "production"} {
		log, err := New(Config{Environment: env, Component: "trail"})
		require.NoError(t, err)
		assert.NotNil(t, log)
	}
}

func TestLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"bogus": zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
	}
	for name, want := range cases {
		assert.Equal(t, want, Level(name).Level(), name)
	}
}
