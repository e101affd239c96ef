package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsTuningEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(dir, TuningFile)
	require.NoError(t, os.WriteFile(target, []byte("inventory:\n  max_stack: 5\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, target, name)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for tuning edit")
	}
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestWatchedFileKinds(t *testing.T) {
	assert.True(t, IsTuningFile("a/tuning.yaml"))
	assert.True(t, IsTuningFile("B.YML"))
	assert.False(t, IsTuningFile("drop.tengo"))
	assert.True(t, IsScriptFile("scripts/drop.tengo"))
	assert.False(t, IsScriptFile("drop.lua"))
}
