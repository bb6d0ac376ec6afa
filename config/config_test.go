package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	confComplete = `
---
layoutDir: /data/MagLayout/layoutdata/annotations
imageDir: /data/MagImage/images
indexMode: files
normalizeKeywords: true
addr: ":3001"
schedule: "@every 5m"
...
`
	confMinimal = `
---
layoutDir: layout
imageDir: images
...
`
	confMissingImageDir = `
---
layoutDir: layout
...
`
	confUnknownIndexMode = `
---
layoutDir: layout
imageDir: images
indexMode: random
...
`
)

func TestLoad(t *testing.T) {
	cnf, errCnf := Load([]byte(confComplete))
	assert.NoError(t, errCnf)
	assert.Equal(t, "/data/MagLayout/layoutdata/annotations", cnf.LayoutDir)
	assert.Equal(t, "/data/MagImage/images", cnf.ImageDir)
	assert.Equal(t, IndexModeFiles, cnf.IndexMode)
	assert.True(t, cnf.NormalizeKeywords)
	assert.Equal(t, ":3001", cnf.Addr)
	assert.Equal(t, "@every 5m", cnf.Schedule)

	cnf, errCnf = Load([]byte(confMinimal))
	assert.NoError(t, errCnf)
	assert.Equal(t, IndexModeSuccesses, cnf.IndexMode)
	assert.False(t, cnf.NormalizeKeywords)
	assert.Equal(t, ":8080", cnf.Addr)
}

func TestLoadInvalid(t *testing.T) {
	_, errCnf := Load([]byte(confMissingImageDir))
	var confErr *ConfigError
	require.ErrorAs(t, errCnf, &confErr)
	assert.Equal(t, "imageDir", confErr.Field)

	_, errCnf = Load([]byte(confUnknownIndexMode))
	require.ErrorAs(t, errCnf, &confErr)
	assert.Equal(t, "indexMode", confErr.Field)

	_, errCnf = Load([]byte("layoutDir: ["))
	assert.Error(t, errCnf)
}

func TestGetWithEnv(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(confMinimal), 0o644))
	t.Setenv(EnvImageDir, "/override/images")
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvLayoutDir, "")

	cnf, errCnf := Get(filename)
	require.NoError(t, errCnf)
	assert.Equal(t, "layout", cnf.LayoutDir)
	assert.Equal(t, "/override/images", cnf.ImageDir)
	assert.Equal(t, ":8080", cnf.Addr)

	_, errCnf = Get(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, errCnf)
}
