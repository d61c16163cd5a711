package progress

import (
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// FileCancelSource watches a sentinel file and flips its BreakRequested
// flag the moment the file is created or written to. It implements only
// the cancellation half of Listener; pair it with another Listener's
// Step/Substep by composing (see Composite).
type FileCancelSource struct {
	watcher   *fsnotify.Watcher
	requested atomic.Bool
	done      chan struct{}
}

// NewFileCancelSource starts watching the directory containing path for
// create/write events on that exact file.
func NewFileCancelSource(path string) (*FileCancelSource, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	src := &FileCancelSource{watcher: watcher, done: make(chan struct{})}
	go src.watch(path)
	return src, nil
}

func (s *FileCancelSource) watch(path string) {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Name == path && (event.Op&(fsnotify.Create|fsnotify.Write) != 0) {
				s.requested.Store(true)
			}
		case _, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
		case <-s.done:
			return
		}
	}
}

// BreakRequested reports whether the sentinel file has appeared or been
// written to since the watch started.
func (s *FileCancelSource) BreakRequested() bool {
	return s.requested.Load()
}

// Close stops the watch goroutine and releases the underlying OS watch.
func (s *FileCancelSource) Close() error {
	close(s.done)
	return s.watcher.Close()
}
