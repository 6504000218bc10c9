package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		t.Run(env, func(t *testing.T) {
			require.NoError(t, Init(env))
			assert.NotNil(t, zap.L())
		})
	}
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { Level.SetLevel(zapcore.InfoLevel) })

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, zapcore.DebugLevel, Level.Level())

	require.NoError(t, SetLevel("error"))
	assert.Equal(t, zapcore.ErrorLevel, Level.Level())

	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, zapcore.ErrorLevel, Level.Level())
}
