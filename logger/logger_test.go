package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milk9111/wraith/config"
)

func TestSetupFormats(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup(&config.Config{Environment: "production", LogLevel: slog.LevelInfo}, &buf)
	slog.Info("enemy: died", "name", "Grux")
	assert.Contains(t, buf.String(), `"msg":"enemy: died"`)

	buf.Reset()
	Setup(&config.Config{Environment: "development", LogLevel: slog.LevelInfo}, &buf)
	slog.Debug("hidden")
	slog.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
