package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mmd/internal/adapters/config"
	"go.trai.ch/mmd/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestLoader_Load_Defaults(t *testing.T) {
	t.Parallel()

	settings, err := config.NewLoader().Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultToolName, settings.ToolName)
	assert.Equal(t, domain.DefaultTimeout, settings.Timeout)
	assert.Equal(t, domain.DefaultDebounceWindow, settings.DebounceWindow)
	assert.Equal(t, domain.SVG, settings.Format)
}

func TestLoader_Load_FullFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
tool:
  name: custom-mmdc
  path: /opt/mermaid/bin/mmdc
cache:
  dir: /var/cache/diagrams
render:
  timeout: 30s
watch:
  debounce: 750ms
`)

	settings, err := config.NewLoader().Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "custom-mmdc", settings.ToolName)
	assert.Equal(t, "/opt/mermaid/bin/mmdc", settings.ToolPath)
	assert.Equal(t, "/var/cache/diagrams", settings.CacheDir)
	assert.Equal(t, 30*time.Second, settings.Timeout)
	assert.Equal(t, 750*time.Millisecond, settings.DebounceWindow)
}

func TestLoader_Load_UpwardSearch(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeConfig(t, root, "render:\n  timeout: 20s\n")

	nested := filepath.Join(root, "docs", "diagrams")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	settings, err := config.NewLoader().Load(nested)
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, settings.Timeout)
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "tool: [broken")

	_, err := config.NewLoader().Load(tmpDir)
	require.Error(t, err)
}

func TestLoader_Load_InvalidDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"unparseable timeout", "render:\n  timeout: banana\n"},
		{"negative timeout", "render:\n  timeout: -5s\n"},
		{"zero debounce", "watch:\n  debounce: 0s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tmpDir := t.TempDir()
			writeConfig(t, tmpDir, tt.content)

			_, err := config.NewLoader().Load(tmpDir)
			require.Error(t, err)
		})
	}
}

func TestLoader_Load_PartialFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "cache:\n  dir: ./artifacts\n")

	settings, err := config.NewLoader().Load(tmpDir)
	require.NoError(t, err)

	// Unset fields keep their defaults.
	assert.Equal(t, "./artifacts", settings.CacheDir)
	assert.Equal(t, domain.DefaultToolName, settings.ToolName)
	assert.Equal(t, domain.DefaultTimeout, settings.Timeout)
}
