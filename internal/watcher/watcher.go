// Package watcher provides file system watching with debouncing for the
// formkit config file.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/formkit/internal/log"
	"github.com/zjrosen/formkit/internal/pubsub"
)

// EventType distinguishes watcher notifications.
type EventType int

const (
	// ConfigChanged is published once per burst of writes to the config file.
	ConfigChanged EventType = iota
	// WatcherError carries an error reported by the underlying fsnotify watcher.
	WatcherError
)

// WatcherEvent is the payload published on the watcher's broker.
type WatcherEvent struct {
	Type  EventType
	Path  string
	Error error
}

// Watcher monitors the config file for changes and publishes notifications.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	configPath string
	debounce   time.Duration
	broker     *pubsub.Broker[WatcherEvent]
	cancel     context.CancelFunc
	done       chan struct{}
}

// Config holds watcher configuration options.
type Config struct {
	ConfigPath  string
	DebounceDur time.Duration
}

// DefaultConfig returns sensible defaults for the watcher.
func DefaultConfig(configPath string) Config {
	return Config{
		ConfigPath:  configPath,
		DebounceDur: 300 * time.Millisecond,
	}
}

// New creates a new config file watcher.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher:  fsw,
		configPath: cfg.ConfigPath,
		debounce:   cfg.DebounceDur,
		broker:     pubsub.NewBroker[WatcherEvent](pubsub.WithBuffer(1)),
		done:       make(chan struct{}),
	}, nil
}

// Broker returns the broker watcher events are published on.
func (w *Watcher) Broker() *pubsub.Broker[WatcherEvent] {
	return w.broker
}

// Start begins watching the directory containing the config file. Editors
// often replace files instead of writing them in place, so the directory is
// watched rather than the file itself.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.configPath)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	go w.loop(ctx)

	log.Debug(log.CatWatcher, "Watching config", "path", w.configPath, "debounce", w.debounce)
	return nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
	w.broker.Close()
	return w.fsWatcher.Close()
}

// loop processes file system events with debouncing.
func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isRelevantEvent(event) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			log.Debug(log.CatWatcher, "Config changed", "path", w.configPath)
			w.broker.Publish(pubsub.ChangedEvent, WatcherEvent{Type: ConfigChanged, Path: w.configPath})

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "Watcher error", err)
			w.broker.Publish(pubsub.ChangedEvent, WatcherEvent{Type: WatcherError, Path: w.configPath, Error: err})

		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// isRelevantEvent checks if the event should trigger a reload.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	// Create covers editors that save by rename
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	return filepath.Base(event.Name) == filepath.Base(w.configPath)
}
