package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Buffer: &buf, Level: WarnLevel, Type: TypeText})

	l.Info("dropped")
	assert.Empty(t, buf.String(), "info should be filtered at warn level")

	l.Warn("skipping line", "line", 3)
	assert.Contains(t, buf.String(), "skipping line")
	assert.Contains(t, buf.String(), "line=3")
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Buffer: &buf, Level: DebugLevel, Type: TypeJSON})

	l.Debug("digits", "value", 8)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "digits", record["msg"])
	assert.EqualValues(t, 8, record["value"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel("warning"))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, DefaultLevel, ParseLevel("nope"))
}
