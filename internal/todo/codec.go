package todo

import (
	"encoding/json"

	"inkpad/internal/logs"
)

// ToJSON serializes items as the persisted array form. An empty list
// serializes as "[]" so a round trip stays lossless.
func ToJSON(items []Item) string {
	if items == nil {
		items = []Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		logs.Logger.Printf("Error serializing todo items: %v", err)
		return "[]"
	}
	return string(data)
}

// FromJSON parses a persisted todo item list. Empty or absent input yields
// an empty list. Malformed input degrades to an empty list and logs the
// failure; it never returns an error past this boundary.
func FromJSON(raw string) []Item {
	if raw == "" {
		return []Item{}
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logs.Logger.Printf("Error parsing todo items JSON: %v", err)
		return []Item{}
	}
	if items == nil {
		return []Item{}
	}
	return items
}
