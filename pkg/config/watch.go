package config

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-pkgz/lgr"
)

// Watch monitors the config file and calls onChange with a freshly loaded and
// validated config on every real content change. Editors produce bursts of
// write/rename events, reloads are debounced and a content hash skips
// no-op rewrites. Blocks until ctx is canceled.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	defer watcher.Close()

	// watch the directory, not the file: editors replace the file on save
	// and a file watch dies with the old inode
	dir := filepath.Dir(path)
	file := filepath.Base(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch config dir %s: %w", dir, err)
	}
	lgr.Printf("[INFO] watching config file %s for changes", path)

	var lastHash uint64
	if cfg, err := Load(path); err == nil {
		lastHash = configHash(cfg)
	}

	var mu sync.Mutex
	var timer *time.Timer
	reload := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(250*time.Millisecond, func() {
			cfg, err := Load(path)
			if err != nil {
				lgr.Printf("[WARN] config reload failed, keeping current config: %v", err)
				return
			}
			h := configHash(cfg)
			mu.Lock()
			unchanged := h != 0 && h == lastHash
			if !unchanged {
				lastHash = h
			}
			mu.Unlock()
			if unchanged {
				return
			}
			lgr.Printf("[INFO] config reloaded from %s", path)
			onChange(cfg)
		})
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("config watcher closed")
			}
			if !strings.EqualFold(filepath.Base(ev.Name), file) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				reload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("config watcher closed")
			}
			lgr.Printf("[WARN] config watcher error: %v", err)
		}
	}
}

// configHash identifies config content to suppress redundant reloads
func configHash(cfg *Config) uint64 {
	data, err := json.Marshal(cfg)
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64()
}
