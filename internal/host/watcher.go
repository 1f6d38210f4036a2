// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package host

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/woozymasta/editorconfig/internal/logger"
)

// ErrWatcherClosed is returned by Watch after Close.
var ErrWatcherClosed = errors.New("watcher closed")

// DefaultDebounce coalesces bursts of writes to one config file.
const DefaultDebounce = 100 * time.Millisecond

// Change is a debounced change of one config file.
type Change struct {
	Path string
	Op   fsnotify.Op
}

// Watcher reports changes of config files that affect watched documents.
//
// It watches every existing ancestor directory of a document, since a config
// file may appear at any level. Only entries named like the config file pass.
type Watcher struct {
	fsw      *fsnotify.Watcher
	logger   logger.Logger
	events   chan Change
	errors   chan error
	closeCh  chan struct{}
	dirs     map[string]bool
	name     string
	debounce time.Duration
	wg       sync.WaitGroup
	mu       sync.Mutex
	closed   bool
}

// NewWatcher creates a Watcher for config files named configFileName.
// Negative debounce uses DefaultDebounce, zero delivers changes immediately.
func NewWatcher(configFileName string, debounce time.Duration, log logger.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if debounce < 0 {
		debounce = DefaultDebounce
	}

	if log == nil {
		log = logger.Discard()
	}

	w := &Watcher{
		fsw:      fsw,
		logger:   log,
		events:   make(chan Change, 16),
		errors:   make(chan error, 16),
		closeCh:  make(chan struct{}),
		dirs:     make(map[string]bool),
		name:     configFileName,
		debounce: debounce,
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Events returns debounced config changes. It is closed by Close.
func (w *Watcher) Events() <-chan Change {
	return w.events
}

// Errors returns watcher errors. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Watch starts watching config files that may apply to the absolute document path.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	dir := filepath.Dir(filepath.Clean(path))
	for {
		if !w.dirs[dir] {
			if info, err := os.Stat(dir); err == nil && info.IsDir() {
				if err := w.fsw.Add(dir); err != nil {
					return fmt.Errorf("watch %s: %w", dir, err)
				}

				w.dirs[dir] = true
				w.logger.Debugf("watching %s", dir)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}

		dir = parent
	}
}

// Dirs returns watched directories, sorted.
func (w *Watcher) Dirs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	dirs := make([]string, 0, len(w.dirs))
	for dir := range w.dirs {
		dirs = append(dirs, dir)
	}

	slices.Sort(dirs)
	return dirs
}

// Close stops the watcher and closes its channels.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}

	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Base(ev.Name) != w.name {
		return false
	}

	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}

// loop is the only sender on events and errors.
func (w *Watcher) loop() {
	defer w.wg.Done()
	defer close(w.events)
	defer close(w.errors)

	pending := make(map[string]fsnotify.Op)

	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			if !w.relevant(ev) {
				continue
			}

			pending[ev.Name] |= ev.Op
			if w.debounce == 0 {
				if !w.flush(pending) {
					return
				}

				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

			timerC = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

			select {
			case w.errors <- err:
			case <-w.closeCh:
				return
			}

		case <-timerC:
			timerC = nil
			if !w.flush(pending) {
				return
			}
		}
	}
}

// flush delivers pending changes in path order. It returns false on close.
func (w *Watcher) flush(pending map[string]fsnotify.Op) bool {
	changes := make([]Change, 0, len(pending))
	for path, op := range pending {
		changes = append(changes, Change{Path: path, Op: op})
	}

	slices.SortFunc(changes, func(a, b Change) int {
		return strings.Compare(a.Path, b.Path)
	})
	clear(pending)

	for _, c := range changes {
		w.logger.Debugf("config %s: %s", c.Path, c.Op)

		select {
		case w.events <- c:
		case <-w.closeCh:
			return false
		}
	}

	return true
}
