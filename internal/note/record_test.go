package note

import (
	"testing"

	"inkpad/internal/todo"
)

func TestRecordRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		n    Note
	}{
		{"text", NewTextNote("Title", "body text")},
		{"audio", NewAudioNote("Memo", "/m/audio.wav", "caption")},
		{"image", NewImageNote("Photo", "/m/pic.png", "sunset")},
		{"drawing", NewDrawingNote("Sketch", "/m/draw.png")},
		{"todo", NewTodoNote("Groceries", []todo.Item{
			{ID: "a", Text: "Buy milk", Completed: true, Position: 0},
			{ID: "b", Text: "Walk dog", Position: 1},
		})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.n.ID = 7
			got := FromRecord(tc.n.ToRecord())
			if got.ID != 7 || got.Title != tc.n.Title {
				t.Errorf("identity fields lost: %+v", got)
			}
			if got.Type() != tc.n.Type() {
				t.Errorf("Type = %s, want %s", got.Type(), tc.n.Type())
			}
			if !got.Content.Equal(tc.n.Content) {
				t.Errorf("content = %+v, want %+v", got.Content, tc.n.Content)
			}
			if got.CreatedAt != tc.n.CreatedAt || got.UpdatedAt != tc.n.UpdatedAt {
				t.Error("timestamps lost in round trip")
			}
		})
	}
}

func TestCaptionStoredInTextColumn(t *testing.T) {
	r := NewAudioNote("Memo", "/m/audio.wav", "my caption").ToRecord()
	if r.TextContent != "my caption" {
		t.Errorf("TextContent = %q, want caption", r.TextContent)
	}
	if r.AudioPath != "/m/audio.wav" {
		t.Errorf("AudioPath = %q", r.AudioPath)
	}
}

func TestFromRecordUnknownTypeDegradesToText(t *testing.T) {
	n := FromRecord(Record{ID: 1, ContentType: "video", TextContent: "leftover"})
	if n.Type() != TypeText {
		t.Errorf("Type = %s, want text", n.Type())
	}
	if body := n.Content.(TextContent).Body; body != "leftover" {
		t.Errorf("Body = %q", body)
	}
}

func TestFromRecordEmptyTodoItems(t *testing.T) {
	n := FromRecord(Record{ID: 1, ContentType: "todo"})
	c, ok := n.Content.(TodoContent)
	if !ok {
		t.Fatalf("content = %T, want TodoContent", n.Content)
	}
	if c.Items == nil {
		t.Error("Items is nil, want empty list")
	}
}
