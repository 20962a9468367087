package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "input %q", tt.in)
	}
}

func TestPrettyHandlerWritesLine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, slog.LevelInfo))

	logger.Info("classified upload", "category", "Images", "media_type", "image")

	out := buf.String()
	assert.Contains(t, out, "classified upload")
	assert.Contains(t, out, "category")
	assert.Contains(t, out, "Images")
	assert.Contains(t, out, "media_type")
}

func TestPrettyHandlerFiltersBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, slog.LevelWarn))

	logger.Info("suppressed")
	assert.Empty(t, buf.String())

	logger.Warn("emitted")
	assert.Contains(t, buf.String(), "emitted")
}

func TestPrettyHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, slog.LevelInfo)).With("request_id", "abc-123")

	logger.Info("request")

	assert.Contains(t, buf.String(), "abc-123")
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(New(&buf, "json", "info"))

	logger.Info("processing file", "filename", "photo.jpg")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "processing file", line["msg"])
	assert.Equal(t, "photo.jpg", line["filename"])
}

func TestNewPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, "pretty", "debug")

	_, ok := h.(*PrettyHandler)
	assert.True(t, ok, "expected pretty format to select PrettyHandler")
}
