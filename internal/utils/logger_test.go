package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, false)
	logger.Info("loaded")
	logger.Debug("hidden")
	assert.Contains(t, buf.String(), "[INFO] ")
	assert.NotContains(t, buf.String(), "hidden")

	buf.Reset()
	logger = NewLoggerWithWriter(&buf, true)
	logger.Debugf("PUSHAT %d %d", 1, 2)
	assert.Contains(t, buf.String(), "[DEBUG] ")
	assert.Contains(t, buf.String(), "PUSHAT 1 2")
}

func TestNewLoggerSingleton(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dlist.log")
	logger := NewLogger(path, false)
	assert.Same(t, logger, GetLogger())

	logger.Warn("script command failed")
	logger.Infof("Running script %s", "run.txt")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[WARN] ")
	assert.Contains(t, string(data), "Running script run.txt")
}
