package config

import (
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// reloadDebounce is how long the file must stay quiet before it is reloaded.
const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a config file into a Source whenever it changes on disk.
// Files that fail to parse or validate are logged and ignored; the Source
// keeps its previous snapshot.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	src     *Source
	logger  *log.Logger

	// Reloaded receives the new version after each successful reload.
	Reloaded chan int

	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path. The parent directory is watched so
// editors that replace the file on save are seen too.
func NewWatcher(path string, src *Source, logger *log.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	watcher := &Watcher{
		watcher:  w,
		path:     abs,
		src:      src,
		logger:   logger,
		Reloaded: make(chan int, 16),
		closeCh:  make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.doneCh
	})
	return err
}

// Reload reads the watched file now. It reports whether the Source was updated.
func (w *Watcher) Reload() bool {
	cfg, err := LoadKong(w.path)
	if err != nil {
		w.logger.Warn("config reload rejected", "path", w.path, "error", err)
		return false
	}
	w.src.Store(cfg)
	_, version := w.src.Current()
	w.logger.Info("config reloaded", "path", w.path, "version", version)
	select {
	case w.Reloaded <- version:
	default:
	}
	return true
}

func (w *Watcher) run() {
	defer close(w.doneCh)
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.Reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher", "error", err)
		case <-w.closeCh:
			return
		}
	}
}
