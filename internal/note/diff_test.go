package note

import (
	"testing"
)

func textNote(id int, title string) Note {
	return Note{ID: id, Title: title, Content: TextContent{Body: "b"}, UpdatedAt: 100}
}

func TestDiffEmptyForIdenticalSnapshots(t *testing.T) {
	list := []Note{textNote(1, "a"), textNote(2, "b")}
	if d := Diff(list, list); !d.Empty() {
		t.Errorf("diff of identical snapshots = %+v", d)
	}
}

func TestDiffDetectsAddRemoveUpdate(t *testing.T) {
	oldList := []Note{textNote(1, "a"), textNote(2, "b"), textNote(3, "c")}
	newList := []Note{
		textNote(1, "a"),
		textNote(2, "renamed"),
		textNote(4, "new"),
	}

	d := Diff(oldList, newList)

	if len(d.Added) != 1 || d.Added[0] != 4 {
		t.Errorf("Added = %v, want [4]", d.Added)
	}
	if len(d.Removed) != 1 || d.Removed[0] != 3 {
		t.Errorf("Removed = %v, want [3]", d.Removed)
	}
	if len(d.Updated) != 1 || d.Updated[0] != 2 {
		t.Errorf("Updated = %v, want [2]", d.Updated)
	}
}

func TestDiffDetectsTimestampChange(t *testing.T) {
	a := textNote(1, "a")
	b := a
	b.UpdatedAt = 200
	d := Diff([]Note{a}, []Note{b})
	if len(d.Updated) != 1 {
		t.Errorf("timestamp change missed: %+v", d)
	}
}

func TestDiffIgnoresReordering(t *testing.T) {
	a, b := textNote(1, "a"), textNote(2, "b")
	if d := Diff([]Note{a, b}, []Note{b, a}); !d.Empty() {
		t.Errorf("reorder-only diff = %+v", d)
	}
}
