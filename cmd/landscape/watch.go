package main

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/landscape/internal/logger"
)

// levelWatcher signals when the level file is written or replaced.
type levelWatcher struct {
	watcher *fsnotify.Watcher
	name    string
	changed chan struct{}
}

func newLevelWatcher(path string) (*levelWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors often save by renaming a new file over the old one, which
	// drops a watch on the file itself.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}

	lw := &levelWatcher{
		watcher: w,
		name:    filepath.Clean(path),
		changed: make(chan struct{}, 1),
	}
	go lw.loop()
	return lw, nil
}

// Changed delivers at most one pending notification; bursts of events
// collapse into it.
func (lw *levelWatcher) Changed() <-chan struct{} {
	return lw.changed
}

func (lw *levelWatcher) Close() error {
	return lw.watcher.Close()
}

func (lw *levelWatcher) loop() {
	for {
		select {
		case ev, ok := <-lw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != lw.name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			select {
			case lw.changed <- struct{}{}:
			default:
			}
		case err, ok := <-lw.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("level watcher error", zap.Error(err))
		}
	}
}
