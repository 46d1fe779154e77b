package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
// Durations accept either Go duration strings ("30s") or nanosecond numbers.
type StructuredJSONConfig struct {
	Crypto struct {
		PasswordHash   string `json:"password_hash"`
		SaltKey        string `json:"salt_key"`
		IV             string `json:"iv"`
		SealPassphrase string `json:"seal_passphrase"`
		SealSalt       string `json:"seal_salt"`
	} `json:"crypto,omitempty"`

	Storage struct {
		DSN     string `json:"dsn"`
		Encrypt bool   `json:"encrypt"`
	} `json:"storage,omitempty"`

	Domains struct {
		Name           string   `json:"name"`
		ListFile       string   `json:"list_file"`
		RemoteListURL  string   `json:"remote_url"`
		Separators     []string `json:"separators"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"domains,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		AutoSaveInterval       Duration `json:"autosave_interval"`
		DomainsRefreshInterval Duration `json:"domains_refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Crypto: Crypto{
			PasswordHash:   jsonCfg.Crypto.PasswordHash,
			SaltKey:        jsonCfg.Crypto.SaltKey,
			IV:             jsonCfg.Crypto.IV,
			SealPassphrase: jsonCfg.Crypto.SealPassphrase,
			SealSalt:       jsonCfg.Crypto.SealSalt,
		},
		Storage: Storage{
			DSN:     jsonCfg.Storage.DSN,
			Encrypt: jsonCfg.Storage.Encrypt,
		},
		Domains: Domains{
			Name:           jsonCfg.Domains.Name,
			ListFile:       jsonCfg.Domains.ListFile,
			RemoteListURL:  jsonCfg.Domains.RemoteListURL,
			Separators:     jsonCfg.Domains.Separators,
			RequestTimeout: time.Duration(jsonCfg.Domains.RequestTimeout),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			AutoSaveInterval:       time.Duration(jsonCfg.Workers.AutoSaveInterval),
			DomainsRefreshInterval: time.Duration(jsonCfg.Workers.DomainsRefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
