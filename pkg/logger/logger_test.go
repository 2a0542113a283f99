package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func resetLog(t *testing.T) {
	t.Cleanup(func() { Log = zap.NewNop() })
}

func TestInitWritesToFile(t *testing.T) {
	resetLog(t)
	t.Setenv(LevelEnv, "")
	path := filepath.Join(t.TempDir(), "logs", "cvbuilder.log")

	flush, err := Init(Options{Level: "debug", File: path})
	require.NoError(t, err)

	Named("editor").Debug("intent executed", zap.String("intent", "save"))
	flush()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "intent executed")
	assert.Contains(t, string(data), "editor")
}

func TestInitLevelFiltering(t *testing.T) {
	resetLog(t)
	t.Setenv(LevelEnv, "")
	path := filepath.Join(t.TempDir(), "cvbuilder.log")

	flush, err := Init(Options{Level: "warn", File: path})
	require.NoError(t, err)

	Log.Info("hidden")
	Log.Warn("shown")
	flush()

	data, _ := os.ReadFile(path)
	assert.False(t, strings.Contains(string(data), "hidden"))
	assert.Contains(t, string(data), "shown")
}

func TestInitEnvOverride(t *testing.T) {
	resetLog(t)
	t.Setenv(LevelEnv, "error")
	path := filepath.Join(t.TempDir(), "cvbuilder.log")

	flush, err := Init(Options{Level: "debug", File: path})
	require.NoError(t, err)
	Log.Warn("suppressed")
	flush()

	data, _ := os.ReadFile(path)
	assert.NotContains(t, string(data), "suppressed")
}

func TestInitInvalidLevel(t *testing.T) {
	resetLog(t)
	t.Setenv(LevelEnv, "")
	_, err := Init(Options{Level: "loud"})
	assert.Error(t, err)
}
