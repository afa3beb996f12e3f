package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigMissingFile(t *testing.T) {
	config, err := ReadConfig(filepath.Join(t.TempDir(), "missing.conf"))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 100, 300}, config.InitialValues)
	assert.Equal(t, OutputText, config.Output)
}

func TestReadConfigJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dlist.conf")
	require.NoError(t, os.WriteFile(path, []byte(`{"initial_values":[1,2],"output":"msgpack","debug":true}`), 0644))

	config, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, config.InitialValues)
	assert.Equal(t, OutputMsgpack, config.Output)
	assert.True(t, config.Debug)
}

func TestReadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial_values: []\noutput: xml\nscript: run.txt\n"), 0644))

	config, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Empty(t, config.InitialValues)
	assert.Equal(t, OutputText, config.Output)
	assert.Equal(t, "run.txt", config.Script)
}

func TestReadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dlist.conf")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))
	_, err := ReadConfig(path)
	assert.Error(t, err)
}

func TestValidateOutput(t *testing.T) {
	assert.NoError(t, ValidateOutput(OutputText))
	assert.NoError(t, ValidateOutput(OutputMsgpack))
	assert.EqualError(t, ValidateOutput("json"), `invalid output format "json": want text or msgpack`)
}

func TestLoadConfigSingleton(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.conf"))
	require.NoError(t, err)

	got, err := GetConfig()
	require.NoError(t, err)
	assert.Same(t, config, got)
}
