package todo

import "github.com/google/uuid"

// Item is one checkable line in a todo note. Position is the item's dense
// 0-based rank within its owning list; list operations keep positions
// contiguous and unique.
type Item struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"isCompleted"`
	Position  int    `json:"position"`
}

// NewItem creates an empty item at the given position with a fresh id.
func NewItem(position int) Item {
	return Item{
		ID:       uuid.NewString(),
		Position: position,
	}
}
