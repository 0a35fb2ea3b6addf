// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// config holding only the defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Empty(t, cfg.App.TokenSignKey)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:    App{TokenSignKey: "env-key", TokenIssuer: "env-issuer"},
			Server: Server{HTTPAddress: "localhost:8080"},
		},
		&StructuredConfig{
			App:     App{TokenSignKey: "flag-key"},
			Storage: Storage{DB: DB{DSN: "file:test.db"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_SIGN_KEY": "from-env"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-env", b.configs[0].App.TokenSignKey)
}

func TestWithEnv_SetsError_WhenInvalid(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "never"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "localhost:9999"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:9999", b.configs[0].Server.HTTPAddress)
}

func TestWithFlags_SetsError_WhenInvalid(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := map[string]any{
		"server": map[string]any{"http_address": "localhost:7777", "request_timeout": "5s"},
	}
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "localhost:7777", b.configs[1].Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, b.configs[1].Server.RequestTimeout)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")})

	b.withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].App.Version)
}

// ── loadConfig / validate ─────────────────────────────────────────────────────

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":      "env-key",
		"SERVER_ADDRESS":          "localhost:8080",
		"STORAGE_DB_DATABASE_URI": "file:env.db",
	})

	cfg, err := loadConfig([]string{"-a", "localhost:9090"})
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "file:env.db", cfg.Storage.DB.DSN)
	assert.NoError(t, cfg.validate())
}

func TestLoadConfig_JSONOverridesFlags(t *testing.T) {
	clearEnvVars(t)
	path := writeTempJSONConfig(t, map[string]any{"log": map[string]any{"level": "error"}})

	cfg, err := loadConfig([]string{"-log-level", "info", "-c", path})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			App:     App{TokenSignKey: "key"},
			Storage: Storage{DB: DB{DSN: "file:test.db"}},
			Server:  Server{HTTPAddress: ":8080"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "oracle" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	assert.NoError(t, (&ClientConfig{Adapter: Adapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second}}).validate())
	assert.ErrorIs(t, (&ClientConfig{Adapter: Adapter{RequestTimeout: time.Second}}).validate(), ErrInvalidAdapterConfigs)
	assert.ErrorIs(t, (&ClientConfig{Adapter: Adapter{HTTPAddress: "localhost:8080"}}).validate(), ErrInvalidAdapterConfigs)
}

func TestDB_DriverName(t *testing.T) {
	tests := []struct {
		name string
		db   DB
		want string
	}{
		{name: "explicit driver", db: DB{DSN: "file:x.db", Driver: "POSTGRES"}, want: DriverPostgres},
		{name: "postgres url", db: DB{DSN: "postgres://u:p@localhost/db"}, want: DriverPostgres},
		{name: "postgresql url", db: DB{DSN: "postgresql://localhost/db"}, want: DriverPostgres},
		{name: "keyword dsn", db: DB{DSN: "host=localhost user=u dbname=db"}, want: DriverPostgres},
		{name: "sqlite file", db: DB{DSN: "file:bookmarks.db?_foreign_keys=on"}, want: DriverSQLite},
		{name: "sqlite path", db: DB{DSN: "./bookmarks.db"}, want: DriverSQLite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.db.DriverName())
		})
	}
}
