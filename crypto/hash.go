package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// GenerateHash returns the hex-encoded HMAC-SHA256 of value under
// HashSecretKey. The same input always produces the same 64-character
// fingerprint, which makes it suitable for deterministic lookups over
// sensitive values without storing them.
//
// A nil input (or nil receiver) returns the empty string.
func (c *Crypto) GenerateHash(value *string) string {
	if c == nil || value == nil {
		return ""
	}

	mac := hmac.New(sha256.New, []byte(c.HashSecretKey))
	mac.Write([]byte(*value))

	return hex.EncodeToString(mac.Sum(nil))
}
