package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Cryptographer turns plaintext strings into printable ciphertext and back.
//
// Decrypt(Encrypt(s)) == s holds for any valid UTF-8 s that does not end in
// NUL characters, provided both calls use the same key material.
type Cryptographer interface {
	// Encrypt returns the Base64 ciphertext of plaintext.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Malformed Base64 is an error; ciphertext
	// produced under different key material decrypts to garbage without
	// an error, since the scheme carries no authentication tag.
	Decrypt(ciphertext string) (string, error)
}

// Sealer provides authenticated encryption of short string values.
// Unlike [Cryptographer], Open fails when the sealed value was tampered with
// or sealed under a different key.
type Sealer interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}
