package unit

import (
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/logger"
)

// ChangeCallback is called with the path of a unit file that changed
type ChangeCallback func(path string) error

// Watcher watches unit files and calls back after they change. Rapid
// successive events are debounced into one callback per file. Callbacks
// run one batch at a time and must not call Stop.
type Watcher struct {
	targets        map[string]string // cleaned absolute path -> path as given
	watcher        *fsnotify.Watcher
	callbacks      []ChangeCallback
	mu             sync.Mutex
	pending        map[string]struct{}
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	done           chan struct{}
	started        bool
	stopped        bool
	fireMu         sync.Mutex     // held while callbacks run
	inflight       sync.WaitGroup // armed timers and running fires
	log            *zap.SugaredLogger
}

// NewWatcher creates a watcher for the given unit files. Their directories
// are watched rather than the files, so editors that replace a file on
// save are still noticed.
func NewWatcher(debounce time.Duration, paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	uw := &Watcher{
		targets:        make(map[string]string, len(paths)),
		watcher:        fsw,
		pending:        make(map[string]struct{}),
		debouncePeriod: debounce,
		done:           make(chan struct{}),
		log:            logger.ComponentLogger("unit.watch"),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", p)
		}
		uw.targets[abs] = p
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "failed to watch directory %s", dir)
		}
	}

	return uw, nil
}

// OnChange registers a callback to be called when a unit file changes
func (uw *Watcher) OnChange(callback ChangeCallback) {
	uw.mu.Lock()
	defer uw.mu.Unlock()
	uw.callbacks = append(uw.callbacks, callback)
}

// Start begins watching for changes
func (uw *Watcher) Start() {
	uw.mu.Lock()
	uw.started = true
	uw.mu.Unlock()
	go uw.watchLoop()
}

func (uw *Watcher) watchLoop() {
	defer close(uw.done)
	for {
		select {
		case event, ok := <-uw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := uw.targets[abs]; !ok {
				continue
			}
			uw.log.Debugw("Unit file changed",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			uw.schedule(abs)

		case err, ok := <-uw.watcher.Errors:
			if !ok {
				return
			}
			uw.log.Warnw("Unit watcher error", logger.FieldError, err)
		}
	}
}

// schedule debounces rapid file changes
func (uw *Watcher) schedule(abs string) {
	uw.mu.Lock()
	defer uw.mu.Unlock()
	if uw.stopped {
		return
	}

	uw.pending[abs] = struct{}{}
	if uw.debounceTimer != nil && uw.debounceTimer.Stop() {
		uw.inflight.Done()
	}
	uw.inflight.Add(1)
	uw.debounceTimer = time.AfterFunc(uw.debouncePeriod, uw.fire)
}

func (uw *Watcher) fire() {
	defer uw.inflight.Done()
	uw.fireMu.Lock()
	defer uw.fireMu.Unlock()

	uw.mu.Lock()
	if uw.stopped {
		uw.mu.Unlock()
		return
	}
	changed := make([]string, 0, len(uw.pending))
	for abs := range uw.pending {
		changed = append(changed, uw.targets[abs])
	}
	uw.pending = make(map[string]struct{})
	callbacks := make([]ChangeCallback, len(uw.callbacks))
	copy(callbacks, uw.callbacks)
	uw.mu.Unlock()

	sort.Strings(changed)
	for _, p := range changed {
		for _, callback := range callbacks {
			if err := callback(p); err != nil {
				// Continue calling other callbacks even if one fails
				uw.log.Warnw("Unit change callback failed",
					logger.FieldFile, p,
					logger.FieldError, err)
			}
		}
	}
}

// Stop stops watching. Pending debounced callbacks are dropped; a batch
// already running is waited for, so no callback runs after Stop returns.
func (uw *Watcher) Stop() error {
	uw.mu.Lock()
	uw.stopped = true
	if uw.debounceTimer != nil && uw.debounceTimer.Stop() {
		uw.inflight.Done()
	}
	started := uw.started
	uw.mu.Unlock()

	err := uw.watcher.Close()
	if started {
		<-uw.done
	}
	uw.inflight.Wait()
	return err
}
