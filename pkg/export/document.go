package export

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Shape classifies where the entries of a decoded export document live.
type Shape int

const (
	// ShapeEmpty means no entries sequence was found anywhere.
	ShapeEmpty Shape = iota

	// ShapeTopLevelList means the document itself is the entries sequence.
	ShapeTopLevelList

	// ShapeKeyedList means the entries live under one of the well-known keys.
	ShapeKeyedList

	// ShapeFirstListValue means no known key matched and the entries were
	// taken from the first list-valued field found in the document.
	ShapeFirstListValue
)

// String returns a short name for the shape, used in logs.
func (s Shape) String() string {
	switch s {
	case ShapeTopLevelList:
		return "top_level_list"
	case ShapeKeyedList:
		return "keyed_list"
	case ShapeFirstListValue:
		return "first_list_value"
	default:
		return "empty"
	}
}

// knownListKeys are the producer key names probed in priority order when the
// document is an object. Both relationship directions are listed because the
// loader is used for the following and the followers export alike.
var knownListKeys = []string{
	"relationships_following",
	"relationships_followers",
	"following",
	"followers",
}

// Source identifies the entries sequence of one decoded export document.
// Shape tells how the sequence was located; Key is the matched object key
// for ShapeKeyedList and ShapeFirstListValue, empty otherwise.
type Source struct {
	Shape   Shape
	Key     string
	Entries []any
}

// Detect classifies a decoded export document and returns its entries.
//
// Detection rules, in priority order:
//
//  1. The document is a list: use it directly.
//  2. The document is an object and one of the known keys holds a list.
//  3. The document is an object and some other field holds a list. JSON
//     object order is lost when decoding into a map, so candidate keys are
//     probed in sorted order to keep the result deterministic.
//  4. Otherwise the document has no entries.
func Detect(root any) Source {
	switch doc := root.(type) {
	case []any:
		return Source{Shape: ShapeTopLevelList, Entries: doc}

	case map[string]any:
		for _, key := range knownListKeys {
			if list, ok := doc[key].([]any); ok {
				return Source{Shape: ShapeKeyedList, Key: key, Entries: list}
			}
		}
		keys := maps.Keys(doc)
		slices.Sort(keys)
		for _, key := range keys {
			if list, ok := doc[key].([]any); ok {
				return Source{Shape: ShapeFirstListValue, Key: key, Entries: list}
			}
		}
	}

	return Source{Shape: ShapeEmpty}
}
