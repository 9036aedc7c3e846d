package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"phonebook/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogConfig(pretty bool, level string) *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "phonebook"
	cfg.Env.Log.Pretty = pretty
	cfg.Env.Log.Level = level

	return cfg
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, newLogConfig(false, "info"))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("entry created", "entry_id", "abc")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "entry created", line["msg"])
	assert.Equal(t, "abc", line["entry_id"])
	assert.Equal(t, "phonebook", line["service"])
}

func TestNewWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, newLogConfig(true, "debug"))
	require.NoError(t, err)

	logger.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "service=phonebook")
}

func TestParseLogLevel(t *testing.T) {
	_, err := parseLogLevel("verbose")
	assert.Error(t, err)

	for _, level := range []string{"debug", "INFO", "warn", "error", ""} {
		_, err := parseLogLevel(level)
		assert.NoError(t, err, level)
	}
}
