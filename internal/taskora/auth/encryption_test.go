package auth

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func testKey() []byte {
	return bytes.Repeat([]byte{0x42}, 32)
}

func TestNewTokenCipher(t *testing.T) {
	t.Run("nil key disables encryption", func(t *testing.T) {
		c, err := NewTokenCipher(nil)
		if err != nil {
			t.Fatalf("NewTokenCipher(nil) returned error: %v", err)
		}
		if c.Enabled() {
			t.Error("cipher should be disabled with nil key")
		}
	})

	t.Run("wrong key length is rejected", func(t *testing.T) {
		_, err := NewTokenCipher([]byte("too short"))
		if err == nil {
			t.Fatal("expected error for 9-byte key")
		}
	})

	t.Run("32-byte key enables encryption", func(t *testing.T) {
		c, err := NewTokenCipher(testKey())
		if err != nil {
			t.Fatalf("NewTokenCipher returned error: %v", err)
		}
		if !c.Enabled() {
			t.Error("cipher should be enabled with a 32-byte key")
		}
	})
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	c, err := NewTokenCipher(testKey())
	if err != nil {
		t.Fatalf("NewTokenCipher returned error: %v", err)
	}

	plaintext := []byte(`{"access_token":"secret-value","token_type":"Bearer"}`)
	sealed, err := c.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt returned error: %v", err)
	}
	if bytes.Contains(sealed, []byte("secret-value")) {
		t.Error("ciphertext contains plaintext token")
	}

	got, err := c.Decrypt(sealed)
	if err != nil {
		t.Fatalf("Decrypt returned error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("round trip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestDecryptWithWrongKey(t *testing.T) {
	c1, _ := NewTokenCipher(testKey())
	c2, _ := NewTokenCipher(bytes.Repeat([]byte{0x17}, 32))

	sealed, err := c1.Encrypt([]byte("token data"))
	if err != nil {
		t.Fatalf("Encrypt returned error: %v", err)
	}
	if _, err := c2.Decrypt(sealed); err == nil {
		t.Fatal("expected decryption with the wrong key to fail")
	}
}

func TestDisabledCipherPassesThrough(t *testing.T) {
	c, _ := NewTokenCipher(nil)

	data := []byte("plain token file")
	sealed, err := c.Encrypt(data)
	if err != nil {
		t.Fatalf("Encrypt returned error: %v", err)
	}
	if !bytes.Equal(sealed, data) {
		t.Error("disabled cipher should pass data through unchanged")
	}

	got, err := c.Decrypt(sealed)
	if err != nil {
		t.Fatalf("Decrypt returned error: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("disabled cipher should pass data through unchanged on decrypt")
	}
}

func TestNewTokenCipherFromEnv(t *testing.T) {
	t.Run("unset yields passthrough", func(t *testing.T) {
		t.Setenv(EncryptionKeyEnv, "")
		c, err := NewTokenCipherFromEnv()
		if err != nil {
			t.Fatalf("NewTokenCipherFromEnv returned error: %v", err)
		}
		if c.Enabled() {
			t.Error("cipher should be disabled when env var is unset")
		}
	})

	t.Run("invalid base64 is rejected", func(t *testing.T) {
		t.Setenv(EncryptionKeyEnv, "not-base64!!!")
		if _, err := NewTokenCipherFromEnv(); err == nil {
			t.Fatal("expected error for invalid base64 key")
		}
	})

	t.Run("valid key enables encryption", func(t *testing.T) {
		t.Setenv(EncryptionKeyEnv, base64.StdEncoding.EncodeToString(testKey()))
		c, err := NewTokenCipherFromEnv()
		if err != nil {
			t.Fatalf("NewTokenCipherFromEnv returned error: %v", err)
		}
		if !c.Enabled() {
			t.Error("cipher should be enabled when a valid key is set")
		}
	})
}
