package store

import "inkpad/internal/note"

// Store defines persistence operations for notes. Implementations assign
// integer ids on insert and push a full list snapshot to every observer
// after each mutation.
type Store interface {
	Insert(n note.Note) (int, error)
	Update(n note.Note) error
	Delete(n note.Note) error
	List() []note.Note
	ObserveAll() (<-chan []note.Note, func())
	Close() error
}
