package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatPretty, ParseFormat("pretty"))
	assert.Equal(t, FormatPretty, ParseFormat(""))
	assert.Equal(t, FormatPretty, ParseFormat("bogus"))
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatJSON, "INFO")

	logger.Info("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatJSON, "WARN")

	logger.Info("filtered out")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatPretty, "DEBUG")

	logger.Debug("dbg message", "k", "v")

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "dbg message")
	assert.Contains(t, out, "=v")
}

func TestCorrelationID_RoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, CorrelationID(ctx))

	ctx = WithCorrelationID(ctx, "abc-123")
	assert.Equal(t, "abc-123", CorrelationID(ctx))
}

func TestFromContext_AttachesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatJSON, "INFO")

	ctx := WithCorrelationID(context.Background(), "abc-123")
	FromContext(ctx, logger).Info("tagged")

	assert.Contains(t, buf.String(), "abc-123")

	buf.Reset()
	FromContext(context.Background(), logger).Info("untagged")
	assert.NotContains(t, buf.String(), "correlation_id")
}
