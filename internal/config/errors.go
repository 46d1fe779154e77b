package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidCryptoConfigs indicates an unusable cryptographer key triple
	// (for example, an IV that is not 16 characters long).
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, encryption requested without a seal passphrase).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidDomainsConfigs indicates invalid domain list settings.
	ErrInvalidDomainsConfigs = errors.New("invalid domains configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative auto-save interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
