package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
	}

	for input, want := range cases {
		assert.Equal(t, want, parseLevel(input), "level %q", input)
	}
}

func TestSetupReplacesLogger(t *testing.T) {
	previous := logger
	Setup("todo-api-test", "debug")
	t.Cleanup(func() {
		logger = previous
		Logger = previous.Sugar()
	})

	assert.NotSame(t, previous, logger)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.NotPanics(t, func() { Debugw("debug entry", "key", "value") })
}
