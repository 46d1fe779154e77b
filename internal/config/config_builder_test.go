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

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a config without a DSN
// is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_DefaultsOnly verifies that the defaults layer alone is valid.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.DSN)
	assert.Equal(t, []string{"\n", ","}, cfg.Domains.Separators)
	assert.Equal(t, 10*time.Second, cfg.Domains.RequestTimeout)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayersOverride verifies that non-zero fields of later
// layers win and zero fields keep earlier values.
func TestBuild_LaterLayersOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DSN: "settings.json"}},
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "settings.json", cfg.Storage.DSN)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("STORAGE_DSN", "sqlite:prefs.db")
	t.Setenv("DOMAINS_NAME", "env-domains")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "sqlite:prefs.db", b.configs[0].Storage.DSN)
	assert.Equal(t, "env-domains", b.configs[0].Domains.Name)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a malformed env value is
// collected into b.err.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("WORKERS_AUTOSAVE_INTERVAL", "not-a-duration")

	b := newConfigBuilder()
	b.withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_KeepsRest verifies that positional arguments survive.
func TestWithFlags_KeepsRest(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-d", "memory", "get", "volume"}))

	require.NoError(t, b.err)
	assert.Equal(t, []string{"get", "volume"}, b.rest)
	assert.Equal(t, "memory", b.configs[0].Storage.DSN)
}

// TestWithFlags_UnknownFlag verifies that a parse failure sets b.err.
func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_RanksBelowEnvAndFlags verifies that the JSON layer is inserted
// right after the defaults, so env and flag layers still override it.
func TestWithJSON_RanksBelowEnvAndFlags(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DSN = "from-json.json"
	payload.Domains.Name = "json-name"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: path,
		Storage:      Storage{DSN: "from-flags.json"},
	})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "from-json.json", b.configs[1].Storage.DSN)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-flags.json", cfg.Storage.DSN)
	assert.Equal(t, "json-name", cfg.Domains.Name)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_EndToEnd verifies the full source chain.
func TestGetStructuredConfig_EndToEnd(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Crypto.PasswordHash = "json-pass"
	payload.Crypto.SaltKey = "json-salt-key"
	payload.Crypto.IV = "0123456789abcdef"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("CONFIG", path)
	t.Setenv("DOMAINS_SEPARATORS", `\n;|`)

	cfg, rest, err := GetStructuredConfig([]string{"-d", "prefs.json", "encrypt", "a.com"})
	require.NoError(t, err)

	assert.Equal(t, []string{"encrypt", "a.com"}, rest)
	assert.Equal(t, "prefs.json", cfg.Storage.DSN)
	assert.Equal(t, "json-pass", cfg.Crypto.PasswordHash)
	assert.Equal(t, []string{"\n", "|"}, cfg.Domains.Separators)
}
