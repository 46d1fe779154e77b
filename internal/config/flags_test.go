package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty address", NetAddress{}, ""},
		{"localhost with port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"IP address with port", NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{"only port no host", NetAddress{Port: 8080}, ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{"localhost", "localhost:8080", false, NetAddress{Host: "localhost", Port: 8080}},
		{"ip", "10.0.0.1:80", false, NetAddress{Host: "10.0.0.1", Port: 80}},
		{"all interfaces", ":9000", false, NetAddress{Port: 9000}},
		{"no port", "localhost", true, NetAddress{}},
		{"bad port", "localhost:http", true, NetAddress{}},
		{"zero port", "localhost:0", true, NetAddress{}},
		{"port too large", "localhost:70000", true, NetAddress{}},
		{"hostname", "example.com:80", true, NetAddress{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, rest, err := ParseFlags([]string{
		"-a", "127.0.0.1:8081",
		"-d", "postgres://u:p@localhost/db",
		"-encrypt-storage",
		"-config", "/etc/prefs.json",
		"-password-hash", "ph",
		"-salt-key", "saltsalt",
		"-iv", "0123456789abcdef",
		"-seal-passphrase", "sp",
		"-seal-salt", "sealsalt",
		"-domains-file", "domains.json",
		"-domains-name", "web",
		"-remote-domains", "https://example.com/d.txt",
		"-separators", `\n;,`,
		"-request-timeout", "5s",
		"-autosave-interval", "1m",
		"serve",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"serve"}, rest)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://u:p@localhost/db", cfg.Storage.DSN)
	assert.True(t, cfg.Storage.Encrypt)
	assert.Equal(t, "/etc/prefs.json", cfg.JSONFilePath)
	assert.Equal(t, "ph", cfg.Crypto.PasswordHash)
	assert.Equal(t, "saltsalt", cfg.Crypto.SaltKey)
	assert.Equal(t, "0123456789abcdef", cfg.Crypto.IV)
	assert.Equal(t, "sp", cfg.Crypto.SealPassphrase)
	assert.Equal(t, "sealsalt", cfg.Crypto.SealSalt)
	assert.Equal(t, "domains.json", cfg.Domains.ListFile)
	assert.Equal(t, "web", cfg.Domains.Name)
	assert.Equal(t, "https://example.com/d.txt", cfg.Domains.RemoteListURL)
	assert.Equal(t, []string{`\n`, ","}, cfg.Domains.Separators)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.AutoSaveInterval)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, rest, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestUnescapeSeparators(t *testing.T) {
	assert.Nil(t, unescapeSeparators(nil))
	assert.Equal(t, []string{"\n", "\t", ","}, unescapeSeparators([]string{`\n`, `\t`, "", ","}))
}
