package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/LerianStudio/lib-crypto/crypto/log"
	"github.com/LerianStudio/lib-crypto/crypto/security"
)

const (
	// Algorithm identifies the authenticated mode used by the codec.
	Algorithm = "AES-128-GCM"

	// KeySize is the exact key length in bytes (AES-128).
	KeySize = 16

	// NonceSize is the exact GCM nonce length in bytes.
	NonceSize = 12

	// TagSize is the GCM authentication tag length in bytes, appended to
	// every ciphertext.
	TagSize = 16
)

// Crypto performs hashing and authenticated encryption under an injected
// configuration. Populate the secret fields, call InitializeCipher once, and
// the value is safe for concurrent use; nothing is mutated afterwards.
//
// Secrets are supplied hex-encoded so they can travel through environment
// variables; see FromEnv.
type Crypto struct {
	// HashSecretKey keys the HMAC-SHA256 fingerprints from GenerateHash.
	HashSecretKey string

	// EncryptSecretKey is the hex-encoded AES-128 key (KeySize bytes decoded).
	EncryptSecretKey string

	// EncryptNonce is the hex-encoded fixed nonce (NonceSize bytes decoded)
	// used by the deterministic Encrypt/Decrypt pair. Seal and Open ignore
	// it and draw a fresh nonce per message.
	EncryptNonce string

	// Logger receives failure diagnostics; nil falls back to a nop logger.
	Logger log.Logger

	// Cipher is the prepared AEAD, built by InitializeCipher.
	Cipher cipher.AEAD

	nonce []byte
}

// InitializeCipher decodes and validates the configured key and nonce and
// builds the AEAD. It is idempotent: once the cipher is built, subsequent
// calls are no-ops. A malformed configuration is an *EncryptionError; the
// size sentinels stay reachable through errors.Is.
func (c *Crypto) InitializeCipher() error {
	if c == nil {
		return newEncryptionError(ErrNilCrypto)
	}

	if c.Cipher != nil {
		return nil
	}

	key, err := hex.DecodeString(c.EncryptSecretKey)
	if err != nil {
		return newEncryptionError(fmt.Errorf("decode encryption key: %w", err))
	}

	if len(key) != KeySize {
		return newEncryptionError(ErrInvalidKeySize)
	}

	nonce, err := hex.DecodeString(c.EncryptNonce)
	if err != nil {
		return newEncryptionError(fmt.Errorf("decode encryption nonce: %w", err))
	}

	if len(nonce) != NonceSize {
		return newEncryptionError(ErrInvalidNonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return newEncryptionError(fmt.Errorf("create AES cipher: %w", err))
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return newEncryptionError(fmt.Errorf("create GCM mode: %w", err))
	}

	c.nonce = nonce
	c.Cipher = aead

	return nil
}

// Encrypt encrypts plaintext with the FIXED configured nonce and returns
// base64 (standard alphabet, unwrapped) of ciphertext||tag.
//
// Output is deterministic: the same plaintext under the same configuration
// always encrypts to the same payload. That property makes encrypted values
// comparable and indexable, but it also means repeated messages are visible
// to an observer and GCM's semantic security does not hold across messages.
// Use Seal unless callers depend on determinism.
func (c *Crypto) Encrypt(plaintext string) (string, error) {
	if c == nil {
		return "", newEncryptionError(ErrNilCrypto)
	}

	if c.Cipher == nil {
		c.logger().Log(context.Background(), log.LevelError,
			"encrypt called before cipher initialization")

		return "", newEncryptionError(ErrCipherNotInitialized)
	}

	sealed := c.Cipher.Seal(nil, c.nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt: it base64-decodes the payload, verifies the
// authentication tag under the configured key and nonce, and returns the
// recovered UTF-8 text.
//
// Every failure (malformed base64, failed authentication, non-UTF-8
// plaintext) surfaces as a *DecryptionError with one uniform message.
func (c *Crypto) Decrypt(encoded string) (string, error) {
	if c == nil {
		return "", newDecryptionError(ErrNilCrypto)
	}

	if c.Cipher == nil {
		return "", c.failDecrypt(ErrCipherNotInitialized)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", c.failDecrypt(fmt.Errorf("decode payload: %w", err))
	}

	if len(data) < c.Cipher.Overhead() {
		return "", c.failDecrypt(ErrCiphertextTooShort)
	}

	plaintext, err := c.Cipher.Open(nil, c.nonce, data, nil)
	if err != nil {
		return "", c.failDecrypt(fmt.Errorf("authenticate payload: %w", err))
	}

	if !utf8.Valid(plaintext) {
		return "", c.failDecrypt(ErrInvalidPlaintext)
	}

	return string(plaintext), nil
}

// Seal encrypts plaintext with a fresh random nonce and returns base64 of
// nonce||ciphertext||tag. Unlike Encrypt it is not deterministic, which is
// what GCM requires for semantic security; prefer it for all new payloads.
func (c *Crypto) Seal(plaintext string) (string, error) {
	if c == nil {
		return "", newEncryptionError(ErrNilCrypto)
	}

	if c.Cipher == nil {
		c.logger().Log(context.Background(), log.LevelError,
			"seal called before cipher initialization")

		return "", newEncryptionError(ErrCipherNotInitialized)
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", newEncryptionError(fmt.Errorf("generate nonce: %w", err))
	}

	sealed := c.Cipher.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal: it splits the per-message nonce off the decoded
// payload, verifies the tag, and returns the recovered UTF-8 text. Failures
// follow the same uniform *DecryptionError contract as Decrypt.
func (c *Crypto) Open(encoded string) (string, error) {
	if c == nil {
		return "", newDecryptionError(ErrNilCrypto)
	}

	if c.Cipher == nil {
		return "", c.failDecrypt(ErrCipherNotInitialized)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", c.failDecrypt(fmt.Errorf("decode payload: %w", err))
	}

	if len(data) < NonceSize+c.Cipher.Overhead() {
		return "", c.failDecrypt(ErrCiphertextTooShort)
	}

	nonce, ciphertext := data[:NonceSize], data[NonceSize:]

	plaintext, err := c.Cipher.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", c.failDecrypt(fmt.Errorf("authenticate payload: %w", err))
	}

	if !utf8.Valid(plaintext) {
		return "", c.failDecrypt(ErrInvalidPlaintext)
	}

	return string(plaintext), nil
}

// failDecrypt logs the underlying cause at debug level only and wraps it in
// the uniform decryption error. Callers never see which stage failed unless
// they unwrap explicitly.
func (c *Crypto) failDecrypt(cause error) error {
	c.logger().Log(context.Background(), log.LevelDebug,
		"failed to decrypt payload", log.Err(cause))

	return newDecryptionError(cause)
}

// logger returns the configured logger, or a nop logger when unset. Safe on
// a nil receiver.
//
//nolint:ireturn
func (c *Crypto) logger() log.Logger {
	if c == nil || c.Logger == nil {
		return log.NewNop()
	}

	return c.Logger
}

// String renders the configuration with every secret redacted, so a Crypto
// value can be printed with %v or %s without leaking key material.
func (c *Crypto) String() string {
	if c == nil {
		return "<nil>"
	}

	return fmt.Sprintf("Crypto{HashSecretKey:%s EncryptSecretKey:%s EncryptNonce:%s}",
		security.Redacted, security.Redacted, security.Redacted)
}

// GoString mirrors String for the %#v verb.
func (c *Crypto) GoString() string {
	return c.String()
}
