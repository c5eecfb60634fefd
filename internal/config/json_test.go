package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"storage": {
			"db": {
				"dsn": "/data/vault.db",
				"driver": "sqlite3"
			}
		},
		"vault": {
			"auto_lock_timeout": "10m",
			"clipboard_clear_after": "45s"
		},
		"log": {
			"path": "/tmp/passvault.log"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, 10*time.Minute, cfg.Vault.AutoLockTimeout)
	assert.Equal(t, 45*time.Second, cfg.Vault.ClipboardClearAfter)
	assert.Equal(t, "/tmp/passvault.log", cfg.Log.Path)
	assert.Empty(t, cfg.JSONFilePath, "parsed JSON must not point at another JSON file")
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Durations may also come as raw nanosecond numbers.
	path := writeTempJSON(t, `{"vault": {"auto_lock_timeout": 60000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.Vault.AutoLockTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeTempJSON(t, `{"storage": `)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON_InvalidString(t *testing.T) {
	var d Duration
	err := d.UnmarshalJSON([]byte(`"soon"`))
	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration(90 * time.Second)
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
