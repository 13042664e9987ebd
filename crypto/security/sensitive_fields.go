package security

import (
	"maps"
	"regexp"
	"strings"
	"sync"
	"unicode"
)

// Redacted is the placeholder written in place of sensitive values.
const Redacted = "[REDACTED]"

var defaultSensitiveFields = []string{
	"password",
	"passphrase",
	"token",
	"secret",
	"key",
	"nonce",
	"authorization",
	"auth",
	"credential",
	"credentials",
	"apikey",
	"api_key",
	"access_token",
	"accesstoken",
	"refresh_token",
	"refreshtoken",
	"private_key",
	"privatekey",
	"client_secret",
	"clientsecret",
}

var (
	sensitiveFieldsMapOnce sync.Once
	sensitiveFieldsMap     map[string]bool
)

// DefaultSensitiveFields returns the built-in deny list of field names.
func DefaultSensitiveFields() []string {
	return defaultSensitiveFields
}

// DefaultSensitiveFieldsMap provides a map version of DefaultSensitiveFields
// for lookup operations. All field names are lowercase for case-insensitive
// matching. The underlying cache is initialized only once; each call returns
// a shallow clone so callers cannot mutate shared state.
func DefaultSensitiveFieldsMap() map[string]bool {
	sensitiveFieldsMapOnce.Do(func() {
		sensitiveFieldsMap = make(map[string]bool, len(defaultSensitiveFields))
		for _, field := range defaultSensitiveFields {
			sensitiveFieldsMap[field] = true
		}
	})

	clone := make(map[string]bool, len(sensitiveFieldsMap))
	maps.Copy(clone, sensitiveFieldsMap)

	return clone
}

// shortSensitiveTokens contains tokens that are too short or generic for
// substring matching and require exact token matching instead.
var shortSensitiveTokens = map[string]bool{
	"key":   true,
	"auth":  true,
	"nonce": true,
}

// tokenSplitRegex splits field names by non-alphanumeric characters.
var tokenSplitRegex = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// normalizeFieldName converts camelCase and PascalCase field names into
// underscore-delimited lowercase tokens, e.g. "sessionToken" becomes
// "session_token" and "APIKey" becomes "api_key".
func normalizeFieldName(fieldName string) string {
	var b strings.Builder

	runes := []rune(fieldName)

	for i, r := range runes {
		if i > 0 {
			prev := runes[i-1]

			var next rune
			if i+1 < len(runes) {
				next = runes[i+1]
			}

			if unicode.IsUpper(r) &&
				(unicode.IsLower(prev) || unicode.IsDigit(prev) ||
					(unicode.IsUpper(prev) && next != 0 && unicode.IsLower(next))) {
				b.WriteByte('_')
			}
		}

		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}

// IsSensitiveField reports whether a field name should be treated as
// sensitive. The check is case-insensitive and normalizes camelCase names.
// Short generic tokens (like "key", "auth") require an exact token match to
// avoid false positives such as "keyboard"; longer patterns match on word
// boundaries.
func IsSensitiveField(fieldName string) bool {
	lowerField := strings.ToLower(fieldName)

	if DefaultSensitiveFieldsMap()[lowerField] {
		return true
	}

	normalized := normalizeFieldName(fieldName)
	if normalized != lowerField && DefaultSensitiveFieldsMap()[normalized] {
		return true
	}

	tokens := tokenSplitRegex.Split(normalized, -1)

	for _, sensitive := range defaultSensitiveFields {
		if shortSensitiveTokens[sensitive] {
			for _, token := range tokens {
				if token == sensitive {
					return true
				}
			}

			continue
		}

		if matchesWordBoundary(normalized, sensitive) {
			return true
		}

		if normalized != lowerField && matchesWordBoundary(lowerField, sensitive) {
			return true
		}
	}

	return false
}

// matchesWordBoundary checks if the pattern appears in the field with word
// boundaries. A word boundary is either the start/end of string or a
// non-alphanumeric character.
func matchesWordBoundary(field, pattern string) bool {
	idx := strings.Index(field, pattern)

	for idx != -1 {
		start := idx
		end := idx + len(pattern)

		startOK := start == 0 || !isAlphanumeric(field[start-1])
		endOK := end == len(field) || !isAlphanumeric(field[end])

		if startOK && endOK {
			return true
		}

		next := strings.Index(field[idx+1:], pattern)
		if next == -1 {
			return false
		}

		idx += 1 + next
	}

	return false
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
