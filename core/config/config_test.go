package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "feed", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.Equal(t, 0, cfg.List.PreDataCount)
	assert.Equal(t, int64(math.MinInt64), cfg.List.MinRandomID)
	assert.Equal(t, int64(-1), cfg.List.MaxRandomID)
	assert.Equal(t, 12, cfg.List.MaxDataCacheCount)
	assert.Equal(t, 6, cfg.List.MaxHeaderCacheCount)
	assert.False(t, cfg.List.UseStickyHeader)
	assert.True(t, cfg.List.DetectMoves)

	assert.Equal(t, "db", cfg.Feed.Source)
	assert.Equal(t, "1:0,2:1,3:2", cfg.Feed.Sections)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("LIST_PRE_DATA_COUNT", "2")
	t.Setenv("LIST_USE_STICKY_HEADER", "true")
	t.Setenv("FEED_SOURCE", "storage")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.List.PreDataCount)
	assert.True(t, cfg.List.UseStickyHeader)
	assert.Equal(t, "storage", cfg.Feed.Source)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9090\nLIST_MAX_DATA_CACHE_COUNT=3\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("LIST_MAX_DATA_CACHE_COUNT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3, cfg.List.MaxDataCacheCount)
}
