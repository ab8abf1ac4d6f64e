package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"database_dsn":             "postgres://u:p@db:5432/uelms",
		"conn_timeout":             "7s",
		"admin_notify_email":       "helpdesk@uelms.edu",
		"bootstrap_admin_user":     "registrar",
		"bootstrap_admin_password": "changeme",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "postgres://u:p@db:5432/uelms", cfg.DatabaseDSN)
		assert.Equal(t, 7*time.Second, cfg.ConnTimeout)
		assert.Equal(t, "helpdesk@uelms.edu", cfg.AdminNotifyEmail)
		assert.Equal(t, "registrar", cfg.BootstrapAdminUser)
		assert.Equal(t, "changeme", cfg.BootstrapAdminPassword)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			DatabaseDSN:            "keep",
			ConnTimeout:            3 * time.Second,
			AdminNotifyEmail:       "keep@uelms.edu",
			BootstrapAdminUser:     "keep-admin",
			BootstrapAdminPassword: "keep-pass",
		}
		parseJson(cfg)

		assert.Equal(t, "keep", cfg.DatabaseDSN)
		assert.Equal(t, 3*time.Second, cfg.ConnTimeout)
		assert.Equal(t, "keep@uelms.edu", cfg.AdminNotifyEmail)
		assert.Equal(t, "keep-admin", cfg.BootstrapAdminUser)
		assert.Equal(t, "keep-pass", cfg.BootstrapAdminPassword)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
