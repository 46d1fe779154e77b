package crypto

import "errors"

var (
	// ErrInvalidKeyMaterial is returned when the (password hash, salt, IV)
	// triple cannot be used to build a cipher.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrDecode is returned when a ciphertext is not valid Base64 or its
	// length is not a whole number of cipher blocks.
	ErrDecode = errors.New("malformed ciphertext")

	// ErrInvalidPasswordLength is returned by GetRandomPassword for a
	// negative length.
	ErrInvalidPasswordLength = errors.New("password length must not be negative")

	// ErrOpen is returned when an authenticated value fails verification.
	ErrOpen = errors.New("sealed value authentication failed")
)
