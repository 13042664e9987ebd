package crypto

import "errors"

// Sentinel errors surfaced (wrapped) by the cipher operations.
var (
	// ErrNilCrypto is returned when a method is called on a nil *Crypto.
	ErrNilCrypto = errors.New("nil Crypto receiver")

	// ErrCipherNotInitialized is returned when Encrypt, Decrypt, Seal, or
	// Open is called before InitializeCipher.
	ErrCipherNotInitialized = errors.New("cipher not initialized")

	// ErrInvalidKeySize is returned when the configured key does not decode
	// to exactly KeySize bytes.
	ErrInvalidKeySize = errors.New("encryption key must decode to exactly 16 bytes")

	// ErrInvalidNonceSize is returned when the configured nonce does not
	// decode to exactly NonceSize bytes.
	ErrInvalidNonceSize = errors.New("encryption nonce must decode to exactly 12 bytes")

	// ErrCiphertextTooShort is returned when a decoded payload is shorter
	// than the minimum the mode can carry.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrInvalidPlaintext is returned when decrypted bytes are not valid
	// UTF-8 text.
	ErrInvalidPlaintext = errors.New("decrypted payload is not valid UTF-8")
)

// EncryptionError reports a failure to produce ciphertext, such as a missing
// or malformed cipher configuration. The underlying cause is available via
// errors.Unwrap.
type EncryptionError struct {
	cause error
}

func newEncryptionError(cause error) *EncryptionError {
	return &EncryptionError{cause: cause}
}

// Error returns the failure message including the underlying cause.
func (e *EncryptionError) Error() string {
	if e == nil || e.cause == nil {
		return "encryption failed"
	}

	return "encryption failed: " + e.cause.Error()
}

// Unwrap returns the underlying cause.
func (e *EncryptionError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// DecryptionError reports a failure to recover plaintext.
//
// Its message is deliberately identical for every failure stage (malformed
// base64, authentication failure, invalid UTF-8) so that callers relaying it
// cannot be used as a decryption oracle. Callers that own their logs can
// reach the cause through errors.Unwrap; the codec itself only logs the
// cause at debug level.
type DecryptionError struct {
	cause error
}

func newDecryptionError(cause error) *DecryptionError {
	return &DecryptionError{cause: cause}
}

// Error returns the uniform failure message.
func (e *DecryptionError) Error() string {
	return "decryption failed"
}

// Unwrap returns the underlying cause.
func (e *DecryptionError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}
