package directory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_WatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "directory.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDirectory), 0o600))

	d, err := Load(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- d.Watch(ctx) }()
	time.Sleep(100 * time.Millisecond) // let the watcher arm

	updated := sampleDirectory + `
  - id: 13
    platform: telegram
    native_id: "-2002"
    title: New Group
    owner: 1
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))

	assert.Eventually(t, func() bool {
		chats, err := d.ListEnabledChats(context.Background(), "telegram")
		return err == nil && len(chats) == 2
	}, 3*time.Second, 50*time.Millisecond, "new chat should appear after reload")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func TestDirectory_WatchKeepsSnapshotOnBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "directory.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDirectory), 0o600))

	d, err := Load(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = d.Watch(ctx) }()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("tenants: [broken"), 0o600))
	time.Sleep(500 * time.Millisecond) // debounce plus reload attempt

	chats, err := d.ListEnabledChats(context.Background(), "telegram")
	require.NoError(t, err)
	assert.Len(t, chats, 1, "broken rewrite should not wipe the snapshot")
}
