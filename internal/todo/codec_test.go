package todo

import (
	"strings"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	items := []Item{
		{ID: "a", Text: "Buy milk", Completed: false, Position: 0},
		{ID: "b", Text: "emojis 🎉 and ünïcode", Completed: true, Position: 1},
	}

	got := FromJSON(ToJSON(items))
	if len(got) != len(items) {
		t.Fatalf("round trip len = %d, want %d", len(got), len(items))
	}
	for i := range items {
		if got[i] != items[i] {
			t.Errorf("item %d = %+v, want %+v", i, got[i], items[i])
		}
	}
}

func TestToJSONEmptyList(t *testing.T) {
	if got := ToJSON(nil); got != "[]" {
		t.Errorf("ToJSON(nil) = %q, want []", got)
	}
	if got := ToJSON([]Item{}); got != "[]" {
		t.Errorf("ToJSON(empty) = %q, want []", got)
	}
}

func TestToJSONUsesPersistedFieldNames(t *testing.T) {
	raw := ToJSON([]Item{{ID: "a", Text: "x", Completed: true, Position: 0}})
	for _, field := range []string{`"id"`, `"text"`, `"isCompleted"`, `"position"`} {
		if !strings.Contains(raw, field) {
			t.Errorf("serialized form missing %s: %s", field, raw)
		}
	}
}

func TestFromJSONEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "[]", "null"} {
		got := FromJSON(raw)
		if got == nil {
			t.Errorf("FromJSON(%q) returned nil", raw)
		}
		if len(got) != 0 {
			t.Errorf("FromJSON(%q) = %+v, want empty", raw, got)
		}
	}
}

func TestFromJSONMalformedDegradesToEmpty(t *testing.T) {
	for _, raw := range []string{"{", "not json", `{"id":"a"}`, "[1,2,3]"} {
		got := FromJSON(raw)
		if len(got) != 0 {
			t.Errorf("FromJSON(%q) = %+v, want empty", raw, got)
		}
	}
}
