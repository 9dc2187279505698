package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	SetOutput(buf)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Close()
	})
	return buf
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	buf := captureLog(t)
	SetTraceEnabled(false)
	Trace("query.issue", map[string]interface{}{"query": "git"})
	assert.Empty(t, buf.String())
}

func TestTraceWritesJSONEntry(t *testing.T) {
	buf := captureLog(t)
	SetTraceEnabled(true)
	Trace("query.issue", map[string]interface{}{"query": "git"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "query.issue", entry["event"])
	payload, ok := entry["payload"].(map[string]interface{})
	require.True(t, ok, "expected payload object in %s", buf.String())
	assert.Equal(t, "git", payload["query"])
	assert.Contains(t, entry, "time")
}

func TestErrorIgnoresNil(t *testing.T) {
	buf := captureLog(t)
	Error(nil)
	assert.Empty(t, buf.String())

	Error(errors.New("boom"))
	assert.True(t, strings.Contains(buf.String(), "boom"), "expected error text in %q", buf.String())
}
