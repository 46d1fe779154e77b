package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

const (
	// AlphaNumericChars is the ASCII letter and digit alphabet.
	AlphaNumericChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"
	// AlphaNumericSymbolsChars extends AlphaNumericChars with punctuation.
	AlphaNumericSymbolsChars = AlphaNumericChars + "!@#$%^&*-_+=?,.`~|(){}[]'\"\\/<>"
)

// GetRandomPassword draws length bytes from the OS CSPRNG and maps each one
// onto alphabet by modulo. An empty alphabet selects AlphaNumericSymbolsChars.
//
// The modulo mapping is slightly biased unless the alphabet size divides 256.
// That is fine for generated passwords and salts typed into config files,
// but the output must not be used directly as key material.
func GetRandomPassword(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPasswordLength, length)
	}
	if alphabet == "" {
		alphabet = AlphaNumericSymbolsChars
	}
	chars := []rune(alphabet)

	data := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, data); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	var b strings.Builder
	b.Grow(length)
	for _, v := range data {
		b.WriteRune(chars[int(v)%len(chars)])
	}
	return b.String(), nil
}
