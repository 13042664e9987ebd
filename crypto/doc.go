// Package crypto provides hashing and symmetric authenticated encryption
// helpers.
//
// The Crypto type supports:
//   - HMAC-SHA256 hashing for deterministic fingerprints
//   - AES-128-GCM encryption/decryption of UTF-8 text as base64 payloads
//
// InitializeCipher must be called before Encrypt, Decrypt, Seal, or Open.
//
// Encrypt and Decrypt use the single configured nonce, so encrypting the
// same text always yields the same payload. Reusing one nonce across
// messages under the same key voids the semantic security of GCM; keep
// Encrypt only where callers depend on deterministic output, and use Seal
// and Open (fresh random nonce per message) everywhere else.
package crypto
