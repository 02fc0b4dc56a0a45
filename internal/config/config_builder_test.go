// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	return cfg
}

func newTestBuilder() *configBuilder {
	b := newConfigBuilder()
	b.args = nil
	return b
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_DefaultsWithSignKey(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, RegistrationModeStrict, cfg.App.RegistrationMode)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Workers.SnapshotInterval)
}

func TestBuild_DefaultsWithoutSignKeyFailValidation(t *testing.T) {
	cfg, err := newTestBuilder().withDefaults().build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs win while zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{App: App{RegistrationMode: RegistrationModeOpen}},
		&StructuredConfig{Server: Server{GRPCAddress: "localhost:9090"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, RegistrationModeOpen, cfg.App.RegistrationMode)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":        "env-version",
		"APP_TOKEN_SIGN_KEY": "env-key",
	})

	b := newTestBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-key", b.configs[0].App.TokenSignKey)
}

func TestWithFlags_ReadsArgs(t *testing.T) {
	b := newTestBuilder()
	b.args = []string{"-registration-mode", "open"}
	b.withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, RegistrationModeOpen, b.configs[0].App.RegistrationMode)
}

func TestWithFlags_SetsErrorOnBadArgs(t *testing.T) {
	b := newTestBuilder()
	b.args = []string{"-a", "bad"}
	b.withFlags()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.RegistrationMode = RegistrationModeOpen
	path := writeTempJSONConfig(t, payload)

	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, RegistrationModeOpen, b.configs[1].App.RegistrationMode)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestBuilderChain_JSONOverridesEnv(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "from-json"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "env-key",
		"APP_TOKEN_ISSUER":   "from-env",
		"CONFIG":             path,
	})

	cfg, err := newTestBuilder().withDefaults().withEnv().withFlags().withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.TokenIssuer)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
}

func TestGetEnvConfig_SkipsValidation(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "notes.example.com:8080")
	t.Setenv("ADAPTER_TOKEN", "abc")

	cfg, err := GetEnvConfig()

	require.NoError(t, err)
	assert.Equal(t, "notes.example.com:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "abc", cfg.Adapter.Token)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
}
