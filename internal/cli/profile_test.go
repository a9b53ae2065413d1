package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"okada/internal/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(dir, "profile.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: https://admin.okada.cm\ntoken: abc\ntimeout: 3s\n"), 0o600))

		p, err := LoadProfile(path, true)
		require.NoError(t, err)
		assert.Equal(t, Profile{Server: "https://admin.okada.cm", Token: "abc", Timeout: 3 * time.Second}, p)
	})

	t.Run("missing optional file gives defaults", func(t *testing.T) {
		p, err := LoadProfile(filepath.Join(dir, "absent.yaml"), false)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", p.Server)
		assert.Equal(t, workflow.DefaultTimeout, p.Timeout)
	})

	t.Run("missing required file fails", func(t *testing.T) {
		_, err := LoadProfile(filepath.Join(dir, "absent.yaml"), true)
		require.Error(t, err)
	})

	t.Run("malformed file fails", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))

		_, err := LoadProfile(path, true)
		require.Error(t, err)
	})
}
