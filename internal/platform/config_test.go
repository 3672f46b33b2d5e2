package platform

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Full File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corkboard.yaml")
		content := `
endpoint: http://127.0.0.1:8787/board
debounce_delay: 250ms
poll_interval: 10s
min_save_interval: 3s
theme_path: /tmp/theme
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:8787/board", cfg.Endpoint)
		assert.Equal(t, 250*time.Millisecond, time.Duration(cfg.DebounceDelay))
		assert.Equal(t, 10*time.Second, time.Duration(cfg.PollInterval))
		assert.Equal(t, 3*time.Second, time.Duration(cfg.MinSaveInterval))
		assert.Equal(t, "/tmp/theme", cfg.ThemePath)
		assert.Len(t, cfg.Options(), 3)
	})

	t.Run("Missing File Is Zero Config", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Empty(t, cfg.Endpoint)
		assert.Empty(t, cfg.Options())
	})

	t.Run("Invalid Duration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corkboard.yaml")
		require.NoError(t, os.WriteFile(path, []byte("debounce_delay: soon"), 0644))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corkboard.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\n\t-"), 0644))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})
}
