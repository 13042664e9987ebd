// Package security provides detection of sensitive field names so that
// secrets never reach log output or formatted struct dumps.
//
// IsSensitiveField handles exact matches, camelCase names, and word-boundary
// substring matches against a default deny list.
package security
