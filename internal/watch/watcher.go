// Package watch re-runs work when payload files change on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits for a burst of writes to settle
const DefaultDebounce = 100 * time.Millisecond

// Options configures a FileWatcher
type Options struct {
	Debounce time.Duration
	Logger   *zap.Logger
}

// FileWatcher calls onChange with the files that changed, once per burst
// of writes. It watches the parent directories rather than the files so that
// editors which save by renaming a temporary file are still seen.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	files     map[string]struct{}
	onChange  func([]string) error
	logger    *zap.Logger
	stopChan  chan struct{}
	stopOnce  sync.Once
	stopErr   error
	wg        sync.WaitGroup
}

// NewFileWatcher creates a watcher for the given files
func NewFileWatcher(files []string, opts Options, onChange func([]string) error) (*FileWatcher, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	debounce := opts.Debounce
	if debounce == 0 {
		debounce = DefaultDebounce
	}

	set := make(map[string]struct{}, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		set[abs] = struct{}{}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:   watcher,
		debouncer: NewDebouncer(debounce),
		files:     set,
		onChange:  onChange,
		logger:    logger.Named("watch"),
		stopChan:  make(chan struct{}),
	}

	fw.debouncer.SetCallback(func(files []string) {
		if err := fw.onChange(files); err != nil {
			fw.logger.Warn("Error handling file changes", zap.Error(err))
		}
	})

	return fw, nil
}

// Files returns the watched files as absolute paths, sorted
func (fw *FileWatcher) Files() []string {
	out := make([]string, 0, len(fw.files))
	for f := range fw.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Start begins watching the file system
func (fw *FileWatcher) Start() error {
	for _, dir := range fw.directories() {
		if err := fw.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
		fw.logger.Debug("Watching directory", zap.String("dir", dir))
	}

	fw.wg.Add(1)
	go fw.watch()

	return nil
}

// Stop stops the file watcher. It is safe to call more than once, from any
// number of goroutines.
func (fw *FileWatcher) Stop() error {
	fw.stopOnce.Do(func() {
		close(fw.stopChan)
		fw.wg.Wait()
		fw.debouncer.Stop()
		fw.stopErr = fw.watcher.Close()
	})
	return fw.stopErr
}

func (fw *FileWatcher) watch() {
	defer fw.wg.Done()

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.relevant(event) {
				continue
			}
			fw.logger.Debug("File changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			fw.debouncer.Add(filepath.Clean(event.Name))

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("Watch error", zap.Error(err))

		case <-fw.stopChan:
			return
		}
	}
}

// relevant reports whether event writes or recreates a watched file
func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := fw.files[abs]
	return ok
}

func (fw *FileWatcher) directories() []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, f := range fw.Files() {
		dir := filepath.Dir(f)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Debouncer collects file changes and triggers callbacks after a delay
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	files    map[string]struct{}
	mutex    sync.Mutex
	callback func([]string)
	stopChan chan struct{}
}

// NewDebouncer creates a new debouncer instance
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{
		duration: duration,
		files:    make(map[string]struct{}),
		stopChan: make(chan struct{}),
	}
}

// Add adds a file to the debouncer
func (d *Debouncer) Add(file string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.files[file] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, d.flush)
}

// flush runs the callback under the lock, so Stop waits for a running
// callback to finish
func (d *Debouncer) flush() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	select {
	case <-d.stopChan:
		return
	default:
	}

	if len(d.files) == 0 {
		return
	}

	files := make([]string, 0, len(d.files))
	for file := range d.files {
		files = append(files, file)
	}
	sort.Strings(files)
	d.files = make(map[string]struct{})

	if d.callback != nil {
		d.callback(files)
	}
}

// SetCallback sets the callback function
func (d *Debouncer) SetCallback(callback func([]string)) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.callback = callback
}

// Stop stops the debouncer. No callback runs after Stop returns.
func (d *Debouncer) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	select {
	case <-d.stopChan:
	default:
		close(d.stopChan)
	}
}
