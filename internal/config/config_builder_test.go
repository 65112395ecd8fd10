package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := Defaults()
	cfg.App.TokenSignKey = "sign-key"
	cfg.Storage.DB.DSN = "sqlite://file::memory:"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a config with no sources fails
// validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
	assert.ErrorIs(t, err, ErrInvalidCacheConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{App: App{TokenIssuer: "override"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.App.TokenIssuer)
	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Storage.Cache.Expire)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_AppendsDefaults(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	require.Len(t, b.configs, 1)
	assert.Equal(t, Defaults(), b.configs[0])
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_OverridesDefaults(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":      "env-key",
		"STORAGE_DB_DATABASE_URI": "sqlite://env.db",
		"SERVER_ADDRESS":          "127.0.0.1:7000",
	})

	cfg, err := newConfigBuilder().withDefaults().withEnv().build()

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "sqlite://env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, "hero-api", cfg.App.TokenIssuer)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "never"})

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_OverridesEnv(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":      "env-key",
		"STORAGE_DB_DATABASE_URI": "sqlite://env.db",
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-d", "sqlite://flag.db"}).
		build()

	require.NoError(t, err)
	assert.Equal(t, "sqlite://flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
}

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_PathFromFlags(t *testing.T) {
	clearEnvVars(t)
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"token_sign_key": "json-key", "token_duration": "2h"},
		"storage": map[string]any{"db": map[string]any{"dsn": "postgres://localhost/heroes"}},
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-c", path}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://localhost/heroes", cfg.Storage.DB.DSN)
	assert.Equal(t, path, cfg.JSONFilePath)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()

	require.Error(t, b.err)
	assert.Contains(t, b.err.Error(), "error reading a json file")
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"APP_TOKEN_SIGN_KEY": "env-key"})

	cfg, err := GetStructuredConfig([]string{"-d", "sqlite://file::memory:", "-a", ":9999"})

	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "sqlite://file::memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
}

func TestGetStructuredConfig_MissingRequired(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(nil)

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
