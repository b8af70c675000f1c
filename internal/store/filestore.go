package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"sync"
	"time"

	"inkpad/internal/logs"
	"inkpad/internal/media"
	"inkpad/internal/note"
)

// FileStore keeps the note table in a single JSONL file: one flat record
// per line, integer auto-increment ids, atomic temp+rename writes. External
// rewrites of the file are picked up via fsnotify and republished to
// observers.
type FileStore struct {
	mu     sync.Mutex
	path   string
	notes  []note.Note
	nextID int
	broker *broker
	stop   chan struct{}
	done   chan struct{}
}

// Open loads the note table at path, creating it lazily on first write.
func Open(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("empty store path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	s := &FileStore{
		path:   path,
		broker: newBroker(),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	// The watch must be armed before the initial read: a rewrite landing
	// between the two raises an event whose reload is then a no-op, while
	// the reverse order would miss it entirely.
	watcher, err := newWatcher(path)
	if err != nil {
		logs.Logger.Printf("External change watch disabled: %v", err)
	}

	notes, err := readTable(path)
	if err != nil {
		if watcher != nil {
			watcher.Close()
		}
		return nil, err
	}
	s.notes = notes
	s.nextID = maxID(notes) + 1

	if watcher != nil {
		go s.watch(watcher)
	} else {
		close(s.done)
	}
	return s, nil
}

// Insert assigns the next id, stamps missing timestamps and persists.
func (s *FileStore) Insert(n note.Note) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = s.nextID
	s.nextID++
	now := time.Now().UnixMilli()
	if n.CreatedAt == 0 {
		n.CreatedAt = now
	}
	if n.UpdatedAt == 0 {
		n.UpdatedAt = now
	}
	next := append(s.snapshotLocked(), n)
	if err := s.persist(next); err != nil {
		s.nextID--
		return 0, err
	}
	s.notes = next
	s.broker.publish(s.listLocked())
	return n.ID, nil
}

// Update replaces the record with the same id. A stale id is a silent
// no-op; the caller was acting on a snapshot that is gone.
func (s *FileStore) Update(n note.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snapshotLocked()
	found := false
	for i := range next {
		if next[i].ID == n.ID {
			next[i] = n
			found = true
			break
		}
	}
	if !found {
		logs.Logger.Printf("Update for unknown note id %d ignored", n.ID)
		return nil
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.notes = next
	s.broker.publish(s.listLocked())
	return nil
}

// Delete removes the record and releases any associated media file in the
// background, best-effort.
func (s *FileStore) Delete(n note.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]note.Note, 0, len(s.notes))
	var removed *note.Note
	for _, cur := range s.notes {
		if cur.ID == n.ID {
			c := cur
			removed = &c
			continue
		}
		next = append(next, cur)
	}
	if removed == nil {
		return nil
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.notes = next
	media.Discard(note.MediaPath(removed.Content))
	s.broker.publish(s.listLocked())
	return nil
}

// List returns the current snapshot ordered by recency.
func (s *FileStore) List() []note.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked()
}

// ObserveAll subscribes to full-list snapshots. The current list is
// delivered immediately; every subsequent mutation or external reload
// pushes a fresh one.
func (s *FileStore) ObserveAll() (<-chan []note.Note, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.broker.subscribe(s.listLocked())
}

// Close stops the file watcher and closes all observer channels.
func (s *FileStore) Close() error {
	close(s.stop)
	<-s.done
	s.broker.closeAll()
	return nil
}

func (s *FileStore) listLocked() []note.Note {
	out := s.snapshotLocked()
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt > out[j].UpdatedAt })
	return out
}

func (s *FileStore) snapshotLocked() []note.Note {
	out := make([]note.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// persist atomically writes the full table.
func (s *FileStore) persist(notes []note.Note) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "notes-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	bw := bufio.NewWriter(tmp)
	enc := json.NewEncoder(bw)
	for _, n := range notes {
		if err := enc.Encode(n.ToRecord()); err != nil {
			tmp.Close()
			os.Remove(tmpPath)
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, s.path)
}

// readTable loads all records, skipping malformed lines with a log entry.
func readTable(path string) ([]note.Note, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []note.Note{}, nil
		}
		return nil, err
	}
	defer f.Close()

	var out []note.Note
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var r note.Record
		if err := json.Unmarshal(line, &r); err != nil {
			logs.Logger.Printf("Skipping malformed note record: %v", err)
			continue
		}
		out = append(out, note.FromRecord(r))
	}
	if err := scanner.Err(); err != nil {
		return out, err
	}
	if out == nil {
		out = []note.Note{}
	}
	return out, nil
}

func maxID(notes []note.Note) int {
	max := 0
	for _, n := range notes {
		if n.ID > max {
			max = n.ID
		}
	}
	return max
}

func recordsByID(notes []note.Note) []note.Record {
	out := make([]note.Record, len(notes))
	for i, n := range notes {
		out[i] = n.ToRecord()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// reloadIfChanged re-reads the table after an external change and publishes
// a fresh snapshot when the contents actually differ. Our own atomic writes
// also trigger watcher events; those reload to identical data and publish
// nothing.
func (s *FileStore) reloadIfChanged() {
	notes, err := readTable(s.path)
	if err != nil {
		logs.Logger.Printf("Error reloading note table: %v", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if reflect.DeepEqual(recordsByID(notes), recordsByID(s.notes)) {
		return
	}
	s.notes = notes
	if id := maxID(notes); id >= s.nextID {
		s.nextID = id + 1
	}
	s.broker.publish(s.listLocked())
}
