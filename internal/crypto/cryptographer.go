// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// pbkdf2Iterations and pbkdf2KeyLen match the RFC 2898 defaults used by
	// the domain list assets produced before this tool existed, so existing
	// ciphertexts stay readable.
	pbkdf2Iterations = 1000
	pbkdf2KeyLen     = 32 // 256 bits

	minSaltLen = 8
)

// KeyMaterial is the configuration triple consumed by [StringCryptographer].
// PasswordHash is the PBKDF2 password, SaltKey its salt, and IV the CBC
// initialization vector. SaltKey and IV are used as raw bytes and must be
// ASCII.
type KeyMaterial struct {
	PasswordHash string
	SaltKey      string
	IV           string
}

// Validate reports whether the triple can be used for encryption.
func (k KeyMaterial) Validate() error {
	if k.PasswordHash == "" {
		return fmt.Errorf("%w: empty password hash", ErrInvalidKeyMaterial)
	}
	if len(k.SaltKey) < minSaltLen {
		return fmt.Errorf("%w: salt must be at least %d bytes, got %d", ErrInvalidKeyMaterial, minSaltLen, len(k.SaltKey))
	}
	if len(k.IV) != aes.BlockSize {
		return fmt.Errorf("%w: IV must be %d bytes, got %d", ErrInvalidKeyMaterial, aes.BlockSize, len(k.IV))
	}
	if !isASCII(k.SaltKey) {
		return fmt.Errorf("%w: salt must be ASCII", ErrInvalidKeyMaterial)
	}
	if !isASCII(k.IV) {
		return fmt.Errorf("%w: IV must be ASCII", ErrInvalidKeyMaterial)
	}
	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// StringCryptographer encrypts strings with AES-256-CBC under a key derived
// from [KeyMaterial] via PBKDF2-HMAC-SHA1.
//
// The final block is padded with zero bytes and Decrypt strips trailing NUL
// characters, so plaintexts that end in NUL do not survive a round trip.
// There is no MAC: use a [Sealer] when tampering must be detected.
//
// A StringCryptographer holds no session state; each call derives its key
// from the triple, so an instance is safe for concurrent use.
type StringCryptographer struct {
	keys KeyMaterial
}

// NewStringCryptographer validates km and returns a cryptographer bound to it.
func NewStringCryptographer(km KeyMaterial) (*StringCryptographer, error) {
	if err := km.Validate(); err != nil {
		return nil, err
	}
	return &StringCryptographer{keys: km}, nil
}

func (s *StringCryptographer) deriveKey() []byte {
	return pbkdf2.Key([]byte(s.keys.PasswordHash), []byte(s.keys.SaltKey), pbkdf2Iterations, pbkdf2KeyLen, sha1.New)
}

func (s *StringCryptographer) block() (cipher.Block, error) {
	block, err := aes.NewCipher(s.deriveKey())
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	return block, nil
}

// Encrypt implements [Cryptographer].
func (s *StringCryptographer) Encrypt(plaintext string) (string, error) {
	block, err := s.block()
	if err != nil {
		return "", err
	}

	data := zeroPad([]byte(plaintext), block.BlockSize())
	out := make([]byte, len(data))
	cipher.NewCBCEncrypter(block, []byte(s.keys.IV)).CryptBlocks(out, data)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt implements [Cryptographer].
func (s *StringCryptographer) Decrypt(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecode, err)
	}

	block, err := s.block()
	if err != nil {
		return "", err
	}
	if len(data)%block.BlockSize() != 0 {
		return "", fmt.Errorf("%w: length %d is not a multiple of the block size", ErrDecode, len(data))
	}

	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, []byte(s.keys.IV)).CryptBlocks(out, data)

	out = bytes.TrimRight(out, "\x00")
	return strings.ToValidUTF8(string(out), "�"), nil
}

// zeroPad extends data with zero bytes up to a multiple of blockSize.
// Input that is already aligned, including empty input, is returned as is.
func zeroPad(data []byte, blockSize int) []byte {
	rem := len(data) % blockSize
	if rem == 0 {
		return data
	}
	return append(data, make([]byte, blockSize-rem)...)
}
