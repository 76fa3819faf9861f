package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := parseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = parseLevel("loud")
	assert.Error(t, err)
}

func TestNew_Format(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "json", slog.LevelInfo).Info("sync finished", "imported", 3)
	assert.Contains(t, buf.String(), `"imported":3`)

	buf.Reset()
	New(&buf, "text", slog.LevelInfo).Debug("hidden")
	assert.Empty(t, buf.String())
}
