package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestInitializeWithWriter(t *testing.T) {
	t.Run("JSON format", func(t *testing.T) {
		var buf bytes.Buffer
		InitializeWithWriter(&buf, "info", "json")
		Info("checkout computed", "tool_code", "LADW")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "checkout computed", entry["msg"])
		assert.Equal(t, "LADW", entry["tool_code"])
	})

	t.Run("Level filters debug", func(t *testing.T) {
		var buf bytes.Buffer
		InitializeWithWriter(&buf, "info", "text")
		EnterMethod("Checkout")
		assert.Empty(t, buf.String())

		Warn("bad input")
		assert.Contains(t, buf.String(), "bad input")
	})

	t.Run("Exit with error", func(t *testing.T) {
		var buf bytes.Buffer
		InitializeWithWriter(&buf, "debug", "text")
		ExitMethodWithError("Checkout", errors.New("boom"), slog.LevelWarn)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "boom")
	})
}
