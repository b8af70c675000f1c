package todo

import (
	"sort"
	"sync"
)

// Controller owns the ordered item list for one open todo note. Every
// mutation reads the full list, computes a replacement, and publishes it
// atomically, so observers never see a partially-updated list. Items cross
// the API boundary by value only.
type Controller struct {
	mu    sync.Mutex
	items []Item
	title string
	subs  []chan []Item
}

func NewController() *Controller {
	return &Controller{items: []Item{}}
}

// Items returns a snapshot of the list ordered by position.
func (c *Controller) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshot(c.items)
}

// SetItems replaces the whole list, e.g. when opening an existing note.
func (c *Controller) SetItems(items []Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := snapshot(items)
	sort.SliceStable(next, func(i, j int) bool { return next[i].Position < next[j].Position })
	c.publish(next)
}

// Add appends a new empty item at the end of the list.
func (c *Controller) Add() Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	item := NewItem(len(c.items))
	c.publish(append(snapshot(c.items), item))
	return item
}

// SetText replaces the text of the matching item. Unknown ids are ignored;
// the caller may be acting on a stale snapshot.
func (c *Controller) SetText(itemID, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := snapshot(c.items)
	for i := range next {
		if next[i].ID == itemID {
			next[i].Text = text
			c.publish(next)
			return
		}
	}
}

// Toggle flips completion for the matching item. No-op on unknown ids.
func (c *Controller) Toggle(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := snapshot(c.items)
	for i := range next {
		if next[i].ID == itemID {
			next[i].Completed = !next[i].Completed
			c.publish(next)
			return
		}
	}
}

// Delete removes the matching item and renumbers the remainder to close the
// gap. No-op on unknown ids.
func (c *Controller) Delete(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]Item, 0, len(c.items))
	found := false
	for _, it := range c.items {
		if it.ID == itemID {
			found = true
			continue
		}
		next = append(next, it)
	}
	if !found {
		return
	}
	renumber(next)
	c.publish(next)
}

// Move removes the item at from and reinserts it at to (array move, not a
// swap), then renumbers every item. Out-of-range indices are a no-op.
func (c *Controller) Move(from, to int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if from < 0 || from >= len(c.items) || to < 0 || to >= len(c.items) {
		return
	}
	next := snapshot(c.items)
	item := next[from]
	next = append(next[:from], next[from+1:]...)
	next = append(next[:to], append([]Item{item}, next[to:]...)...)
	renumber(next)
	c.publish(next)
}

// Title returns the title slot kept in sync with the editor's title field.
func (c *Controller) Title() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.title
}

func (c *Controller) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = title
}

// HasContent reports whether the note is save-worthy: any item with
// non-empty text, or a non-empty title.
func (c *Controller) HasContent() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.title != "" {
		return true
	}
	for _, it := range c.items {
		if it.Text != "" {
			return true
		}
	}
	return false
}

func (c *Controller) CompletedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.items {
		if it.Completed {
			n++
		}
	}
	return n
}

func (c *Controller) TotalCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear empties the list and the title slot.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = ""
	c.publish([]Item{})
}

// InitializeIfEmpty seeds a single empty item so a fresh editor always has
// a row to type into.
func (c *Controller) InitializeIfEmpty() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		c.publish([]Item{NewItem(0)})
	}
}

// Subscribe returns a channel of list snapshots plus a cancel func. The
// channel is conflated: a slow reader only ever sees the latest list.
func (c *Controller) Subscribe() (<-chan []Item, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan []Item, 1)
	ch <- snapshot(c.items)
	c.subs = append(c.subs, ch)
	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s == ch {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel
}

// publish installs next as the authoritative list and pushes a snapshot to
// every subscriber. Caller holds c.mu.
func (c *Controller) publish(next []Item) {
	c.items = next
	for _, ch := range c.subs {
		select {
		case ch <- snapshot(next):
		default:
			// Replace the pending snapshot with the fresh one.
			select {
			case <-ch:
			default:
			}
			ch <- snapshot(next)
		}
	}
}

func snapshot(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func renumber(items []Item) {
	for i := range items {
		items[i].Position = i
	}
}
