package note

import (
	"testing"

	"inkpad/internal/todo"
)

func TestBuildersSetTimestamps(t *testing.T) {
	n := NewTextNote("Title", "body")
	if n.CreatedAt == 0 || n.UpdatedAt == 0 {
		t.Error("timestamps not set")
	}
	if n.CreatedAt != n.UpdatedAt {
		t.Error("fresh note should have CreatedAt == UpdatedAt")
	}
	if n.ID != 0 {
		t.Errorf("ID = %d, want 0 before insert", n.ID)
	}
}

func TestTypePerBuilder(t *testing.T) {
	cases := []struct {
		n    Note
		want ContentType
	}{
		{NewTextNote("t", "b"), TypeText},
		{NewAudioNote("t", "/a.wav", ""), TypeAudio},
		{NewImageNote("t", "/p.png", ""), TypeImage},
		{NewDrawingNote("t", "/d.png"), TypeDrawing},
		{NewTodoNote("t", nil), TypeTodo},
	}
	for _, tc := range cases {
		if got := tc.n.Type(); got != tc.want {
			t.Errorf("Type() = %s, want %s", got, tc.want)
		}
	}
}

func TestTypeNilContentDegradesToText(t *testing.T) {
	if got := (Note{}).Type(); got != TypeText {
		t.Errorf("Type() = %s, want text", got)
	}
}

func TestChanged(t *testing.T) {
	base := NewTextNote("Title", "body")

	same := base
	same.UpdatedAt = base.UpdatedAt + 1000
	if same.Changed(base) {
		t.Error("timestamp-only difference must not count as changed")
	}

	retitled := base
	retitled.Title = "Other"
	if !retitled.Changed(base) {
		t.Error("title change not detected")
	}

	rebodied := base
	rebodied.Content = TextContent{Body: "other body"}
	if !rebodied.Changed(base) {
		t.Error("body change not detected")
	}

	retyped := base
	retyped.Content = AudioContent{Path: "/a.wav"}
	if !retyped.Changed(base) {
		t.Error("content type change not detected")
	}
}

func TestChangedComparesCaption(t *testing.T) {
	base := NewImageNote("Title", "/p.png", "before")
	edited := base
	edited.Content = ImageContent{Path: "/p.png", Caption: "after"}
	if !edited.Changed(base) {
		t.Error("caption change not detected")
	}
}

func TestChangedComparesTodoItems(t *testing.T) {
	items := []todo.Item{{ID: "a", Text: "Buy milk", Position: 0}}
	base := NewTodoNote("Groceries", items)

	toggled := base
	toggled.Content = TodoContent{Items: []todo.Item{
		{ID: "a", Text: "Buy milk", Completed: true, Position: 0},
	}}
	if !toggled.Changed(base) {
		t.Error("item completion change not detected")
	}
}

func TestSnippet(t *testing.T) {
	cases := []struct {
		name string
		n    Note
		want string
	}{
		{"text body", NewTextNote("t", "hello"), "hello"},
		{"audio caption", NewAudioNote("t", "/a.wav", "my memo"), "my memo"},
		{"audio path fallback", NewAudioNote("t", "/a.wav", ""), "/a.wav"},
		{"image caption", NewImageNote("t", "/p.png", "sunset"), "sunset"},
		{"drawing path", NewDrawingNote("t", "/d.png"), "/d.png"},
		{"empty todo", NewTodoNote("t", nil), "empty list"},
		{"todo counts", NewTodoNote("t", []todo.Item{
			{ID: "a", Text: "x", Completed: true},
			{ID: "b", Text: "y"},
			{ID: "c", Text: "z"},
		}), "1/3 done"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.n.Snippet(); got != tc.want {
				t.Errorf("Snippet() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMediaPath(t *testing.T) {
	if got := MediaPath(AudioContent{Path: "/a.wav"}); got != "/a.wav" {
		t.Errorf("audio MediaPath = %q", got)
	}
	if got := MediaPath(TextContent{Body: "x"}); got != "" {
		t.Errorf("text MediaPath = %q, want empty", got)
	}
	if got := MediaPath(nil); got != "" {
		t.Errorf("nil MediaPath = %q, want empty", got)
	}
}
