package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
)

// EncryptionKeyEnv names the environment variable holding the base64
// encoded AES-256 key for token files at rest.
const EncryptionKeyEnv = "TASKORA_TOKEN_ENCRYPTION_KEY"

// TokenCipher provides encryption/decryption for token files at rest.
// Uses AES-256-GCM for authenticated encryption. A nil key disables
// encryption and data passes through unchanged.
type TokenCipher struct {
	key     []byte
	enabled bool
}

// NewTokenCipher creates a token cipher with the given key.
// If key is nil or empty, encryption is disabled.
func NewTokenCipher(key []byte) (*TokenCipher, error) {
	if len(key) == 0 {
		return &TokenCipher{enabled: false}, nil
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be exactly 32 bytes (256 bits), got %d bytes", len(key))
	}
	return &TokenCipher{key: key, enabled: true}, nil
}

// NewTokenCipherFromEnv creates a token cipher from TASKORA_TOKEN_ENCRYPTION_KEY.
// An unset variable yields a passthrough cipher.
func NewTokenCipherFromEnv() (*TokenCipher, error) {
	encoded := os.Getenv(EncryptionKeyEnv)
	if encoded == "" {
		return NewTokenCipher(nil)
	}
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid %s (must be base64 encoded): %w", EncryptionKeyEnv, err)
	}
	return NewTokenCipher(key)
}

// Enabled reports whether encryption is active
func (c *TokenCipher) Enabled() bool {
	return c.enabled
}

// Encrypt encrypts data using AES-256-GCM.
// Returns base64-encoded: nonce || ciphertext || tag.
// If encryption is disabled, returns plaintext unchanged.
func (c *TokenCipher) Encrypt(plaintext []byte) ([]byte, error) {
	if !c.enabled || len(plaintext) == 0 {
		return plaintext, nil
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	// Nonce must be unique for each encryption with the same key
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(ciphertext)))
	base64.StdEncoding.Encode(encoded, ciphertext)
	return encoded, nil
}

// Decrypt decrypts data encrypted with Encrypt.
// If encryption is disabled, returns data unchanged.
func (c *TokenCipher) Decrypt(encoded []byte) ([]byte, error) {
	if !c.enabled || len(encoded) == 0 {
		return encoded, nil
	}

	ciphertext := make([]byte, base64.StdEncoding.DecodedLen(len(encoded)))
	n, err := base64.StdEncoding.Decode(ciphertext, encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	ciphertext = ciphertext[:n]

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short: %d bytes", len(ciphertext))
	}
	nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt token data (wrong key?): %w", err)
	}
	return plaintext, nil
}
