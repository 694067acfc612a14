package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/configs"
)

func restoreDefaults(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, Load(configs.ApplicationYAML))
	})
}

func TestEmbeddedDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	restoreDefaults(t)
	require.NoError(t, Load(configs.ApplicationYAML))

	assert.Equal(t, "sqlite", GetString("app.db.driver"))
	assert.Equal(t, "gorm", GetString("app.db.gateway"))
	assert.Equal(t, 8000, GetInt("app.server.port"))
	assert.Equal(t, 30*time.Minute, GetDuration("app.db.conn-max-lifetime"))
	assert.True(t, GetBool("app.cors.allow-credentials"))
	assert.Equal(t, "", GetString("app.server.context-path"))
	assert.True(t, GetBool("app.health.probe.enabled"))
	assert.Equal(t, "@every 1m", GetString("app.health.probe.cron"))
	assert.Equal(t, 5*time.Second, GetDuration("app.health.probe.timeout"))
}

func TestEnvironmentOverridesPlaceholder(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("SERVER_PORT", "9090")
	restoreDefaults(t)
	require.NoError(t, Load(configs.ApplicationYAML))

	assert.Equal(t, "postgres", GetString("app.db.driver"))
	assert.Equal(t, 9090, GetInt("app.server.port"))
}

func TestInitFromFile(t *testing.T) {
	restoreDefaults(t)
	path := filepath.Join(t.TempDir(), "application.yml")
	content := "app:\n  db:\n    driver: postgres\n    host: ${TODO_TEST_UNSET_HOST:db.internal}\n  tags:\n    - a\n    - b\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, Init(path))

	assert.Equal(t, "postgres", GetString("app.db.driver"))
	assert.Equal(t, "db.internal", GetString("app.db.host"))
	assert.Equal(t, []string{"a", "b"}, GetStringSlice("app.tags"))
	assert.Nil(t, Get("app.db.gateway"))
}

func TestInitMissingFile(t *testing.T) {
	err := Init(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("TODO_TEST_SET", "from-env")

	assert.Equal(t, "plain", resolveEnvVariable("plain"))
	assert.Equal(t, "from-env", resolveEnvVariable("${TODO_TEST_SET:fallback}"))
	assert.Equal(t, "fallback", resolveEnvVariable("${TODO_TEST_UNSET:fallback}"))
	assert.Equal(t, "", resolveEnvVariable("${TODO_TEST_UNSET:}"))
	assert.Equal(t, "", resolveEnvVariable("${TODO_TEST_UNSET}"))
}
