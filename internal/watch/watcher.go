// Package watch re-runs the prefixer over stylesheets as they change on
// disk.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FileWatcher monitors file system changes and triggers callbacks
type FileWatcher struct {
	watcher    *fsnotify.Watcher
	extensions []string
	onChange   func([]string) error
	logger     *zap.Logger
	stopChan   chan struct{}
	wg         sync.WaitGroup

	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer
}

// debounceWindow coalesces the burst of events editors emit per save.
const debounceWindow = 100 * time.Millisecond

// NewFileWatcher creates a new file watcher instance for files with the
// given extensions (e.g. ".css").
func NewFileWatcher(extensions []string, logger *zap.Logger, onChange func([]string) error) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &FileWatcher{
		watcher:    watcher,
		extensions: extensions,
		onChange:   onChange,
		logger:     logger,
		stopChan:   make(chan struct{}),
		pending:    map[string]struct{}{},
	}, nil
}

// Start begins watching root and its subdirectories
func (fw *FileWatcher) Start(root string) error {
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			if err := fw.watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch directory %s: %w", path, err)
			}
			fw.logger.Debug("watching directory", zap.String("dir", path))
		}
		return nil
	})
	if err != nil {
		return err
	}

	fw.wg.Add(1)
	go fw.watch()

	return nil
}

// Stop stops the file watcher
func (fw *FileWatcher) Stop() error {
	select {
	case <-fw.stopChan:
		return nil
	default:
		close(fw.stopChan)
	}

	fw.wg.Wait()

	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()

	return fw.watcher.Close()
}

// watch is the main event loop
func (fw *FileWatcher) watch() {
	defer fw.wg.Done()

	for {
		select {
		case <-fw.stopChan:
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !fw.matches(event.Name) {
				continue
			}
			fw.enqueue(event.Name)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("watch error", zap.Error(err))
		}
	}
}

func (fw *FileWatcher) matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range fw.extensions {
		if ext == want {
			return true
		}
	}
	return false
}

// enqueue adds a path to the pending set and (re)arms the debounce timer.
func (fw *FileWatcher) enqueue(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	fw.pending[path] = struct{}{}

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(debounceWindow, fw.flush)
}

func (fw *FileWatcher) flush() {
	fw.mu.Lock()
	files := make([]string, 0, len(fw.pending))
	for path := range fw.pending {
		files = append(files, path)
	}
	fw.pending = map[string]struct{}{}
	fw.mu.Unlock()

	if len(files) == 0 {
		return
	}

	if err := fw.onChange(files); err != nil {
		fw.logger.Error("change handler failed", zap.Error(err))
	}
}
