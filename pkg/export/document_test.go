package export

import (
	"testing"
)

func TestDetect(t *testing.T) {
	entry := map[string]any{"username": "foo"}

	tests := []struct {
		name        string
		root        any
		wantShape   Shape
		wantKey     string
		wantEntries int
	}{
		{
			name:        "top level list",
			root:        []any{entry, entry},
			wantShape:   ShapeTopLevelList,
			wantEntries: 2,
		},
		{
			name:        "relationships_following key",
			root:        map[string]any{"relationships_following": []any{entry}},
			wantShape:   ShapeKeyedList,
			wantKey:     "relationships_following",
			wantEntries: 1,
		},
		{
			name:        "relationships_followers key",
			root:        map[string]any{"relationships_followers": []any{entry}},
			wantShape:   ShapeKeyedList,
			wantKey:     "relationships_followers",
			wantEntries: 1,
		},
		{
			name:        "following key",
			root:        map[string]any{"following": []any{entry}},
			wantShape:   ShapeKeyedList,
			wantKey:     "following",
			wantEntries: 1,
		},
		{
			name:        "followers key",
			root:        map[string]any{"followers": []any{entry}},
			wantShape:   ShapeKeyedList,
			wantKey:     "followers",
			wantEntries: 1,
		},
		{
			name: "known key wins over other lists",
			root: map[string]any{
				"aaa_first_sorted": []any{entry, entry, entry},
				"following":        []any{entry},
			},
			wantShape:   ShapeKeyedList,
			wantKey:     "following",
			wantEntries: 1,
		},
		{
			name:        "fallback first list value",
			root:        map[string]any{"accounts": []any{entry, entry}},
			wantShape:   ShapeFirstListValue,
			wantKey:     "accounts",
			wantEntries: 2,
		},
		{
			name: "fallback probes keys in sorted order",
			root: map[string]any{
				"zzz": []any{entry, entry},
				"aaa": []any{entry},
			},
			wantShape:   ShapeFirstListValue,
			wantKey:     "aaa",
			wantEntries: 1,
		},
		{
			name: "non-list values ignored during fallback",
			root: map[string]any{
				"count": float64(2),
				"items": []any{entry},
			},
			wantShape:   ShapeFirstListValue,
			wantKey:     "items",
			wantEntries: 1,
		},
		{
			name:      "object without lists",
			root:      map[string]any{"count": float64(0)},
			wantShape: ShapeEmpty,
		},
		{
			name:      "empty object",
			root:      map[string]any{},
			wantShape: ShapeEmpty,
		},
		{
			name:      "scalar root",
			root:      "not a document",
			wantShape: ShapeEmpty,
		},
		{
			name:      "nil root",
			root:      nil,
			wantShape: ShapeEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Detect(tt.root)
			if src.Shape != tt.wantShape {
				t.Errorf("Shape = %v, want %v", src.Shape, tt.wantShape)
			}
			if src.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", src.Key, tt.wantKey)
			}
			if len(src.Entries) != tt.wantEntries {
				t.Errorf("len(Entries) = %d, want %d", len(src.Entries), tt.wantEntries)
			}
		})
	}
}

func TestShapeString(t *testing.T) {
	tests := []struct {
		shape Shape
		want  string
	}{
		{ShapeTopLevelList, "top_level_list"},
		{ShapeKeyedList, "keyed_list"},
		{ShapeFirstListValue, "first_list_value"},
		{ShapeEmpty, "empty"},
	}

	for _, tt := range tests {
		if got := tt.shape.String(); got != tt.want {
			t.Errorf("Shape(%d).String() = %q, want %q", tt.shape, got, tt.want)
		}
	}
}
