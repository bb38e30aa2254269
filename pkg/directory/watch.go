package directory

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-pkgz/lgr"
)

// Watch monitors the directory file and reloads the snapshot on every change.
// Editors produce bursts of write/rename events, reloads are debounced. A
// failed reload keeps the current snapshot. Blocks until ctx is canceled.
func (d *Directory) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create directory watcher: %w", err)
	}
	defer watcher.Close()

	// watch the parent dir, a file watch dies with the old inode on save
	dir := filepath.Dir(d.path)
	file := filepath.Base(d.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch directory dir %s: %w", dir, err)
	}
	lgr.Printf("[INFO] watching directory file %s for changes", d.path)

	var mu sync.Mutex
	var timer *time.Timer
	reload := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(250*time.Millisecond, func() {
			if err := d.Reload(); err != nil {
				lgr.Printf("[WARN] directory reload failed, keeping current snapshot: %v", err)
				return
			}
			lgr.Printf("[INFO] directory reloaded from %s", d.path)
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
				return fmt.Errorf("directory watcher closed")
			}
			if !strings.EqualFold(filepath.Base(ev.Name), file) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				reload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("directory watcher closed")
			}
			lgr.Printf("[WARN] directory watcher error: %v", err)
		}
	}
}
