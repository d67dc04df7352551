package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: INFO, Format: JSON, Output: &buf, Service: "hoteldesk"})

	log.Info("booking created", "id", "abc", "nights", 3, "error", errors.New("boom"))

	line := decodeLine(t, &buf)
	assert.Equal(t, "booking created", line["message"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "hoteldesk", line[SERVICE])
	assert.Equal(t, "abc", line["id"])
	assert.EqualValues(t, 3, line["nights"])
	assert.Equal(t, "boom", line["error"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: WARN, Output: &buf})

	log.Debug("hidden")
	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.Equal(t, "warn", decodeLine(t, &buf)["level"])
}

func TestLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "verbose", Output: &buf})

	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.Info("shown")
	assert.NotZero(t, buf.Len())
}

func TestLogger_OddArgsDropTrailingKey(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Output: &buf})

	log.Info("odd", "kept", 1, "dangling")

	line := decodeLine(t, &buf)
	assert.EqualValues(t, 1, line["kept"])
	_, ok := line["dangling"]
	assert.False(t, ok)
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Output: &buf}).With("request_id", "r-1")

	log.Error("failed")

	line := decodeLine(t, &buf)
	assert.Equal(t, "r-1", line["request_id"])
	assert.Equal(t, "error", line["level"])
}
