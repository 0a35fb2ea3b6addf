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

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string seconds", input: `"30s"`, want: 30 * time.Second},
		{name: "string combined", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "number nanoseconds", input: `1000000000`, want: time.Second},
		{name: "invalid string", input: `"soon"`, wantErr: true},
		{name: "invalid json", input: `{`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(2 * time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"2m0s"`, string(data))
}

func TestParseJSON_AllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {"token_sign_key": "secret", "token_issuer": "iss", "version": "2.0.0"},
		"storage": {"db": {"dsn": "file:bookmarks.db", "driver": "sqlite"}},
		"server": {"http_address": "0.0.0.0:3333", "request_timeout": "10s"},
		"adapter": {"http_address": "http://localhost:3333", "request_timeout": "2s"},
		"log": {"level": "error"}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "file:bookmarks.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "0.0.0.0:3333", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:3333", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app":`), 0o600))

	cfg, err := parseJSON(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
}
