package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/stateaudit/config"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stateaudit.yaml")
	content := `include:
  - "src/**/*.tsx"
exclude:
  - "**/*.spec.tsx"
capabilities:
  callbacks: true
  wrappers: true
  forwarding: false
  handleApi: false
rules:
  - R001
  - R004
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, []string{"src/**/*.tsx"}, cfg.Include)
	assert.Equal(t, []string{"**/*.spec.tsx"}, cfg.Exclude)
	assert.True(t, cfg.Capabilities.Callbacks)
	assert.True(t, cfg.Capabilities.Wrappers)
	assert.False(t, cfg.Capabilities.Forwarding)
	assert.Equal(t, []string{"R001", "R004"}, cfg.Rules)
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.NotEmpty(t, cfg.Include)
	assert.Empty(t, cfg.Exclude)
}
