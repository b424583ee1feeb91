package export

import "strings"

// extractor resolves a raw username from a single export entry.
// Extractors are tried in order; the first hit wins, so the priority policy
// lives in one auditable place.
type extractor struct {
	name string
	fn   func(entry map[string]any) (string, bool)
}

// extractors is the resolution priority for one entry. The nested
// string_list_data record is preferred over direct fields because newer
// export versions carry stale or empty top-level fields alongside it.
var extractors = []extractor{
	{name: "string_list_data", fn: extractStringListData},
	{name: "username", fn: extractField("username")},
	{name: "value", fn: extractField("value")},
}

// extractStringListData resolves string_list_data[0].value.
// The field must hold a non-empty list whose first element is a record with
// a usable text value.
func extractStringListData(entry map[string]any) (string, bool) {
	list, ok := entry["string_list_data"].([]any)
	if !ok || len(list) == 0 {
		return "", false
	}
	first, ok := list[0].(map[string]any)
	if !ok {
		return "", false
	}
	return textValue(first["value"])
}

// extractField resolves a direct text field on the entry.
func extractField(key string) func(map[string]any) (string, bool) {
	return func(entry map[string]any) (string, bool) {
		return textValue(entry[key])
	}
}

// textValue reports whether v is a usable raw username: a string that is
// non-blank after trimming.
func textValue(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// resolve returns the raw username for entry. It returns false when the
// entry is not a record or no extractor matches; such entries contribute
// nothing and are never errors.
func resolve(entry any) (string, bool) {
	record, ok := entry.(map[string]any)
	if !ok {
		return "", false
	}
	for _, ex := range extractors {
		if raw, ok := ex.fn(record); ok {
			return raw, true
		}
	}
	return "", false
}
