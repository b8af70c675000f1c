package store

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"inkpad/internal/logs"
)

// newWatcher creates an fsnotify watcher already subscribed to the table's
// directory. The directory is watched rather than the file because atomic
// rename replaces the inode and would drop a file-level watch.
func newWatcher(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}
	return watcher, nil
}

// watch runs the event loop over an armed watcher, reloading on external
// rewrites of the table. Events are debounced briefly so a rename burst
// reloads once.
func (s *FileStore) watch(watcher *fsnotify.Watcher) {
	defer close(s.done)
	defer watcher.Close()

	base := filepath.Base(s.path)
	var pending <-chan time.Time
	for {
		select {
		case <-s.stop:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(50 * time.Millisecond)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logs.Logger.Printf("File watcher error: %v", err)
		case <-pending:
			pending = nil
			s.reloadIfChanged()
		}
	}
}
