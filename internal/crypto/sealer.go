// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// gcmSealer is the private implementation of [Sealer].
type gcmSealer struct {
	aead cipher.AEAD
}

// Argon2Params tunes the key derivation of [NewSealer].
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// DefaultArgon2Params are the OWASP (2024) recommended Argon2id settings:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024, // 64 MiB
	Threads: 4,
}

// NewSealer derives a 256-bit key from passphrase and salt with Argon2id and
// returns a [Sealer] that protects values with AES-256-GCM.
//
// The key is derived once here; Seal and Open only run the AEAD. The salt is
// not secret but must stay fixed for previously sealed values to open.
func NewSealer(passphrase string, salt []byte, params Argon2Params) (Sealer, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("%w: empty passphrase", ErrInvalidKeyMaterial)
	}
	if len(salt) < minSaltLen {
		return nil, fmt.Errorf("%w: salt must be at least %d bytes, got %d", ErrInvalidKeyMaterial, minSaltLen, len(salt))
	}

	key := argon2.IDKey([]byte(passphrase), salt, params.Time, params.Memory, params.Threads, 32)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &gcmSealer{aead: gcm}, nil
}

// Seal implements [Sealer]. The output is Base64 of nonce ‖ ciphertext.
func (g *gcmSealer) Seal(plaintext string) (string, error) {
	nonce := make([]byte, g.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := g.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [Sealer]. It returns [ErrDecode] for malformed input and
// [ErrOpen] when the authentication tag does not verify.
func (g *gcmSealer) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecode, err)
	}

	nonceSize := g.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecode)
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := g.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOpen, err)
	}
	return string(plaintext), nil
}
