package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_loadConfigFile(t *testing.T) {
	dir := t.TempDir()
	fpath := filepath.Join(dir, cfgFileName)
	content := `
[sort]
parallel = true
inPlace = true

[debug]
printResult = true
maxPrintRows = 32
`
	require.NoError(t, os.WriteFile(fpath, []byte(content), 0644))

	cfg, err := LoadConfigFile(fpath)
	require.NoError(t, err)
	assert.True(t, cfg.Sort.Parallel)
	assert.True(t, cfg.Sort.InPlace)
	assert.True(t, cfg.Debug.PrintResult)
	assert.Equal(t, 32, cfg.Debug.MaxPrintRows)
}

func Test_loadConfigFileBroken(t *testing.T) {
	dir := t.TempDir()
	fpath := filepath.Join(dir, cfgFileName)
	require.NoError(t, os.WriteFile(fpath, []byte("[sort"), 0644))

	_, err := LoadConfigFile(fpath)
	assert.Error(t, err)
}
