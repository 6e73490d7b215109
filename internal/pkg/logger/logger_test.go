package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureWritesJSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: DebugLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel}) })

	lgr := Component("workload")
	lgr.Info().Int64("teacherId", 4).Msg("recomputed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "workload", entry["component"])
	assert.Equal(t, "recomputed", entry["message"])
	assert.EqualValues(t, 4, entry["teacherId"])
}

func TestConfigureFallsBackToInfo(t *testing.T) {
	Configure(Config{Level: "chatty", Output: &bytes.Buffer{}})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel}) })

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestFromSettings(t *testing.T) {
	cfg := FromSettings("WARN", "text")
	assert.Equal(t, WarnLevel, cfg.Level)
	assert.True(t, cfg.Pretty)
	assert.False(t, FromSettings("info", "json").Pretty)
}
