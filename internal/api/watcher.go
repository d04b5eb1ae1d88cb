package api

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sirxnine/cartas/internal/model"
)

const configDebounce = 100 * time.Millisecond

// ConfigSubscriber receives the reloaded config after the file changes.
type ConfigSubscriber interface {
	OnConfigChange(cfg *model.AppConfig)
}

// ConfigLoader reads the current config, env overrides included.
type ConfigLoader func() (*model.AppConfig, error)

// ConfigWatcher reloads the config file when it changes on disk and hands the
// result to its subscribers, in subscription order.
//
// The parent directory is watched rather than the file itself: most editors
// save by writing a temp file and renaming it over the original.
type ConfigWatcher struct {
	watcher    *fsnotify.Watcher
	configPath string
	load       ConfigLoader

	mu          sync.RWMutex
	subscribers []ConfigSubscriber
	running     bool
	stopped     bool

	timerMu sync.Mutex
	timer   *time.Timer
	stopCh  chan struct{}
}

// NewConfigWatcher creates a watcher for configPath.
func NewConfigWatcher(configPath string, load ConfigLoader) (*ConfigWatcher, error) {
	if configPath == "" {
		return nil, fmt.Errorf("no config path to watch")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &ConfigWatcher{
		watcher:    watcher,
		configPath: filepath.Clean(configPath),
		load:       load,
		stopCh:     make(chan struct{}),
	}, nil
}

// Subscribe adds a subscriber.
func (cw *ConfigWatcher) Subscribe(sub ConfigSubscriber) {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.subscribers = append(cw.subscribers, sub)
}

// Start begins watching. The config directory must exist.
func (cw *ConfigWatcher) Start() error {
	cw.mu.Lock()
	if cw.running {
		cw.mu.Unlock()
		return nil
	}
	if cw.stopped {
		cw.mu.Unlock()
		return fmt.Errorf("config watcher cannot be restarted after stop")
	}
	cw.running = true
	cw.mu.Unlock()

	dir := filepath.Dir(cw.configPath)
	if err := cw.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go cw.run()
	return nil
}

// Stop stops watching. A stopped watcher cannot be restarted.
func (cw *ConfigWatcher) Stop() error {
	cw.mu.Lock()
	if cw.stopped {
		cw.mu.Unlock()
		return nil
	}
	wasRunning := cw.running
	cw.running = false
	cw.stopped = true
	cw.mu.Unlock()

	cw.timerMu.Lock()
	if cw.timer != nil {
		cw.timer.Stop()
		cw.timer = nil
	}
	cw.timerMu.Unlock()

	if wasRunning {
		close(cw.stopCh)
	}
	return cw.watcher.Close()
}

func (cw *ConfigWatcher) run() {
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			cw.handleEvent(event)

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Config watcher error: %v", err)

		case <-cw.stopCh:
			return
		}
	}
}

func (cw *ConfigWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != cw.configPath {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	// Coalesce the burst of events a single save produces.
	cw.timerMu.Lock()
	if cw.timer != nil {
		cw.timer.Stop()
	}
	cw.timer = time.AfterFunc(configDebounce, cw.reload)
	cw.timerMu.Unlock()
}

func (cw *ConfigWatcher) reload() {
	cw.mu.RLock()
	if cw.stopped {
		cw.mu.RUnlock()
		return
	}
	subs := make([]ConfigSubscriber, len(cw.subscribers))
	copy(subs, cw.subscribers)
	cw.mu.RUnlock()

	cfg, err := cw.load()
	if err != nil {
		log.Printf("Warning: config reload failed, keeping current settings: %v", err)
		return
	}

	for _, sub := range subs {
		sub.OnConfigChange(cfg)
	}
}
