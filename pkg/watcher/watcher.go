// Package watcher reports debounced changes of the model and config files.
// Changes are delivered on a channel so a render loop can pick them up
// between frames on its own goroutine.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Kind tells what a watched file is used for
type Kind int

const (
	Model Kind = iota
	Config
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case Model:
		return "model"
	case Config:
		return "config"
	}
	return "unknown"
}

// Change is a settled modification of a watched file
type Change struct {
	Path string
	Kind Kind
}

// FileWatcher watches files and publishes debounced changes on Changes
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	files    map[string]Kind
	debounce time.Duration
	timers   map[string]*time.Timer
	changes  chan Change
	done     chan struct{}
	closed   bool
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  watcher,
		files:    make(map[string]Kind),
		debounce: debounce,
		timers:   make(map[string]*time.Timer),
		changes:  make(chan Change, 8),
		done:     make(chan struct{}),
	}, nil
}

// Watch adds file to the watch list
func (fw *FileWatcher) Watch(file string, kind Kind) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	if err := fw.watcher.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	fw.files[absPath] = kind
	return nil
}

// Changes delivers debounced file changes. It is closed by Close.
func (fw *FileWatcher) Changes() <-chan Change {
	return fw.changes
}

// Start begins watching for file changes
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				fw.handleEvent(event)

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)

			case <-fw.done:
				return
			}
		}
	}()
}

func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	switch {
	case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
		fw.schedule(event.Name)

	case event.Has(fsnotify.Rename), event.Has(fsnotify.Remove):
		// Editors that save by renaming replace the inode; watch the new file
		fw.mu.Lock()
		_, watched := fw.files[event.Name]
		fw.mu.Unlock()
		if watched {
			if err := fw.watcher.Add(event.Name); err == nil {
				fw.schedule(event.Name)
			}
		}
	}
}

// schedule restarts the debounce timer of filePath
func (fw *FileWatcher) schedule(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	kind, exists := fw.files[filePath]
	if !exists || fw.closed {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}

	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		fw.publish(Change{Path: filePath, Kind: kind})
	})
}

func (fw *FileWatcher) publish(change Change) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.closed {
		return
	}

	select {
	case fw.changes <- change:
	default:
		// consumer is behind, it will reload the file anyway
	}
}

// Close stops the watcher and closes the Changes channel
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.closed {
		fw.mu.Unlock()
		return nil
	}
	fw.closed = true
	for _, timer := range fw.timers {
		timer.Stop()
	}
	close(fw.done)
	close(fw.changes)
	fw.mu.Unlock()

	return fw.watcher.Close()
}
