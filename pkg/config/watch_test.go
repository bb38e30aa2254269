package config

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadsOnChange(t *testing.T) {
	path := writeConfig(t, "matcher:\n  threshold: 0.55\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads atomic.Int32
	var lastThreshold atomic.Value
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg *Config) {
			lastThreshold.Store(cfg.Matcher.Threshold)
			reloads.Add(1)
		})
	}()
	time.Sleep(100 * time.Millisecond) // let the watcher arm

	require.NoError(t, os.WriteFile(path, []byte("matcher:\n  threshold: 0.75\n"), 0o600))

	require.Eventually(t, func() bool { return reloads.Load() == 1 }, 3*time.Second, 20*time.Millisecond)
	assert.InDelta(t, 0.75, lastThreshold.Load().(float64), 1e-9)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatch_SkipsUnchangedRewrite(t *testing.T) {
	content := "matcher:\n  threshold: 0.6\n"
	path := writeConfig(t, content)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads atomic.Int32
	go func() {
		_ = Watch(ctx, path, func(cfg *Config) { reloads.Add(1) })
	}()
	time.Sleep(100 * time.Millisecond)

	// same content rewritten, hash matches, no reload published
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, int32(0), reloads.Load())
}

func TestWatch_IgnoresBrokenRewrite(t *testing.T) {
	path := writeConfig(t, "matcher:\n  threshold: 0.6\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads atomic.Int32
	go func() {
		_ = Watch(ctx, path, func(cfg *Config) { reloads.Add(1) })
	}()
	time.Sleep(100 * time.Millisecond)

	// invalid content keeps the current config
	require.NoError(t, os.WriteFile(path, []byte("matcher: [broken"), 0o600))
	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, int32(0), reloads.Load())

	// a later valid change still comes through
	require.NoError(t, os.WriteFile(path, []byte("matcher:\n  threshold: 0.8\n"), 0o600))
	require.Eventually(t, func() bool { return reloads.Load() == 1 }, 3*time.Second, 20*time.Millisecond)
}
