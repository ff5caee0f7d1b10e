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
		"app": {
			"token_sign_key": "json_secret",
			"token_issuer": "json_issuer",
			"token_duration": "2h",
			"version": "0.9.0"
		},
		"storage": {
			"db": {"dsn": "postgres://localhost/stash"}
		},
		"server": {
			"http_address": "0.0.0.0:9000",
			"request_timeout": "45s"
		},
		"client": {
			"server_url": "http://stash.local:9000",
			"cache_path": "cache.db",
			"refresh_interval": "10m",
			"request_timeout": "20s"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "json_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "postgres://localhost/stash", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://stash.local:9000", cfg.Client.ServerURL)
	assert.Equal(t, "cache.db", cfg.Client.CachePath)
	assert.Equal(t, 10*time.Minute, cfg.Client.RefreshInterval)
	assert.Equal(t, 20*time.Second, cfg.Client.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{not valid json`)
	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"90s"`)))
	assert.Equal(t, 90*time.Second, time.Duration(d))
}

func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	assert.Error(t, d.UnmarshalJSON([]byte(`"not-a-duration"`)))
}
