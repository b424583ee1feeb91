package export

import "strings"

// Normalize canonicalizes a raw username for comparison: surrounding
// whitespace is trimmed, one leading "@" is stripped, and the result is
// lowercased. Identifiers from both export documents must pass through this
// same function for the set difference between them to be valid.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "@")
	return strings.ToLower(s)
}
