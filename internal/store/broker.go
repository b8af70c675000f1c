package store

import (
	"sync"

	"inkpad/internal/note"
)

// broker fans full-list snapshots out to subscribers. Subscriber channels
// are conflated: when a reader lags, the pending snapshot is replaced by the
// newest one, so a slow UI never blocks a writer and always catches up to
// the latest state.
type broker struct {
	mu   sync.Mutex
	subs []chan []note.Note
}

func newBroker() *broker {
	return &broker{}
}

func (b *broker) subscribe(current []note.Note) (<-chan []note.Note, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan []note.Note, 1)
	ch <- current
	b.subs = append(b.subs, ch)
	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s == ch {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel
}

func (b *broker) publish(snapshot []note.Note) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}
}

func (b *broker) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
