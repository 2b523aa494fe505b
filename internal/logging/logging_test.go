package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, time.UTC)

	l.Info("server_started", map[string]any{"port": "8080"})
	l.Error("generation_failed", errors.New("boom"), map[string]any{"kind": "resume"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "info", first["level"])
	assert.Equal(t, "server_started", first["msg"])
	assert.Equal(t, "8080", first["port"])
	assert.NotEmpty(t, first["ts"])
	assert.NotContains(t, first, "error")

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "error", second["level"])
	assert.Equal(t, "boom", second["error"])
	assert.Equal(t, "resume", second["kind"])
}

func TestLogger_ReservedFieldsWin(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, nil).Warn("real", nil, map[string]any{"msg": "spoofed", "level": "debug"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "real", entry["msg"])
	assert.Equal(t, "warn", entry["level"])
}

func TestLogger_Location(t *testing.T) {
	assert.Equal(t, time.UTC, New(&bytes.Buffer{}, nil).Location())
	assert.NotNil(t, Discard())
}
