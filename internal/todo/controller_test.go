package todo

import (
	"testing"
)

func addWithText(c *Controller, text string) Item {
	item := c.Add()
	c.SetText(item.ID, text)
	return item
}

func positions(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Position
	}
	return out
}

func assertDense(t *testing.T, items []Item) {
	t.Helper()
	for i, it := range items {
		if it.Position != i {
			t.Errorf("position at index %d = %d, want %d", i, it.Position, i)
		}
	}
}

func TestAddAssignsSequentialPositions(t *testing.T) {
	c := NewController()
	for i := 0; i < 4; i++ {
		item := c.Add()
		if item.Position != i {
			t.Errorf("item %d got position %d", i, item.Position)
		}
	}
	assertDense(t, c.Items())
}

func TestDeleteRenumbersRemainder(t *testing.T) {
	c := NewController()
	addWithText(c, "Buy milk")
	second := addWithText(c, "Walk dog")
	addWithText(c, "Water plants")

	c.Delete(second.ID)

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].Text != "Buy milk" || items[1].Text != "Water plants" {
		t.Errorf("unexpected order: %q, %q", items[0].Text, items[1].Text)
	}
	assertDense(t, items)
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	c := NewController()
	addWithText(c, "Buy milk")
	c.Delete("nope")
	if got := c.TotalCount(); got != 1 {
		t.Errorf("TotalCount = %d, want 1", got)
	}
}

func TestMoveIsArrayMoveNotSwap(t *testing.T) {
	c := NewController()
	for _, text := range []string{"A", "B", "C", "D"} {
		addWithText(c, text)
	}

	c.Move(0, 2)

	items := c.Items()
	want := []string{"B", "C", "A", "D"}
	for i, w := range want {
		if items[i].Text != w {
			t.Errorf("items[%d].Text = %q, want %q", i, items[i].Text, w)
		}
	}
	assertDense(t, items)
}

func TestMoveOutOfRangeIsNoop(t *testing.T) {
	c := NewController()
	addWithText(c, "A")
	addWithText(c, "B")
	before := c.Items()

	c.Move(-1, 0)
	c.Move(0, 5)
	c.Move(3, 1)

	after := c.Items()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("items changed at %d: %+v != %+v", i, before[i], after[i])
		}
	}
}

func TestToggleFlipsCompletion(t *testing.T) {
	c := NewController()
	item := addWithText(c, "Buy milk")

	c.Toggle(item.ID)
	if !c.Items()[0].Completed {
		t.Error("item not completed after toggle")
	}
	if got := c.CompletedCount(); got != 1 {
		t.Errorf("CompletedCount = %d, want 1", got)
	}

	c.Toggle(item.ID)
	if c.Items()[0].Completed {
		t.Error("item still completed after second toggle")
	}
}

func TestHasContent(t *testing.T) {
	c := NewController()
	if c.HasContent() {
		t.Error("empty controller reports content")
	}

	c.InitializeIfEmpty()
	if c.HasContent() {
		t.Error("single blank row should not count as content")
	}

	c.SetTitle("Groceries")
	if !c.HasContent() {
		t.Error("title alone should count as content")
	}

	c.SetTitle("")
	item := c.Items()[0]
	c.SetText(item.ID, "Buy milk")
	if !c.HasContent() {
		t.Error("item text should count as content")
	}
}

func TestSetItemsSortsByPosition(t *testing.T) {
	c := NewController()
	c.SetItems([]Item{
		{ID: "b", Text: "second", Position: 1},
		{ID: "a", Text: "first", Position: 0},
	})
	items := c.Items()
	if items[0].ID != "a" || items[1].ID != "b" {
		t.Errorf("items not sorted by position: %v", positions(items))
	}
}

func TestInitializeIfEmptyKeepsExisting(t *testing.T) {
	c := NewController()
	addWithText(c, "Buy milk")
	c.InitializeIfEmpty()
	if got := c.TotalCount(); got != 1 {
		t.Errorf("TotalCount = %d, want 1", got)
	}
}

func TestSubscribeDeliversInitialSnapshot(t *testing.T) {
	c := NewController()
	addWithText(c, "Buy milk")

	ch, cancel := c.Subscribe()
	defer cancel()

	items := <-ch
	if len(items) != 1 || items[0].Text != "Buy milk" {
		t.Errorf("initial snapshot = %+v", items)
	}
}

func TestSubscribeConflatesWhenReaderIsSlow(t *testing.T) {
	c := NewController()
	ch, cancel := c.Subscribe()
	defer cancel()

	// Drain the initial snapshot, then mutate several times without reading.
	<-ch
	addWithText(c, "A")
	addWithText(c, "B")
	addWithText(c, "C")

	items := <-ch
	if len(items) != 3 {
		t.Fatalf("conflated snapshot has %d items, want the latest 3", len(items))
	}
	if items[2].Text != "C" {
		t.Errorf("items[2].Text = %q, want C", items[2].Text)
	}

	// No stale snapshot should remain buffered.
	select {
	case extra := <-ch:
		t.Errorf("unexpected extra snapshot: %+v", extra)
	default:
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	c := NewController()
	ch, cancel := c.Subscribe()
	<-ch
	cancel()

	addWithText(c, "after cancel")
	if _, ok := <-ch; ok {
		t.Error("channel still open after cancel")
	}
}

func TestClearEmptiesListAndTitle(t *testing.T) {
	c := NewController()
	c.SetTitle("Groceries")
	addWithText(c, "Buy milk")

	c.Clear()

	if c.TotalCount() != 0 {
		t.Error("items remain after Clear")
	}
	if c.Title() != "" {
		t.Error("title remains after Clear")
	}
	if c.HasContent() {
		t.Error("HasContent after Clear")
	}
}
