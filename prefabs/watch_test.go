package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitEvent(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case name := <-w.Events:
		return name
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
	return ""
}

func TestWatcherReportsRigAndScriptFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcherDebounce(time.Millisecond, dir)
	require.NoError(t, err)
	defer w.Close()

	ignored := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(ignored, []byte("x"), 0o644))

	rig := filepath.Join(dir, "arm.yaml")
	require.NoError(t, os.WriteFile(rig, []byte("name: arm\n"), 0o644))
	assert.Equal(t, rig, waitEvent(t, w))

	time.Sleep(10 * time.Millisecond)
	src := filepath.Join(dir, "spin.tengo")
	require.NoError(t, os.WriteFile(src, []byte("result := input\n"), 0o644))

	for {
		name := waitEvent(t, w)
		require.NotEqual(t, ignored, name)
		if name == src {
			break
		}
	}
}

func TestWatcherReportsLastWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcherDebounce(100*time.Millisecond, dir)
	require.NoError(t, err)
	defer w.Close()

	seen := make(chan string, 8)
	go func() {
		for name := range w.Events {
			data, _ := os.ReadFile(name)
			seen <- string(data)
		}
	}()

	rig := filepath.Join(dir, "arm.yaml")
	full := "name: arm\nsteps:\n  - op: translate\n    x: 3\n"
	require.NoError(t, os.WriteFile(rig, []byte("name: arm\n"), 0o644))
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, os.WriteFile(rig, []byte(full), 0o644))

	select {
	case got := <-seen:
		assert.Equal(t, full, got)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}

	select {
	case got := <-seen:
		t.Fatalf("unexpected second event with %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestFileKinds(t *testing.T) {
	assert.True(t, isSpecFile("a/b.YAML"))
	assert.True(t, isSpecFile("b.yml"))
	assert.False(t, isSpecFile("b.tengo"))
	assert.True(t, isScriptFile("s.tengo"))
	assert.False(t, isScriptFile("s.lua"))
}
