package unit

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_CallsBackOnChange(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "foo.yaml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(target, []byte("package: a\n"), 0644))

	w, err := NewWatcher(20*time.Millisecond, target)
	require.NoError(t, err)

	changed := make(chan string, 16)
	w.OnChange(func(path string) error {
		changed <- path
		return nil
	})
	w.Start()
	defer w.Stop()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0644))
	require.NoError(t, os.WriteFile(target, []byte("package: b\n"), 0644))
	require.NoError(t, os.WriteFile(target, []byte("package: c\n"), 0644))

	select {
	case got := <-changed:
		assert.Equal(t, target, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	// Only the watched file is ever reported
	time.Sleep(100 * time.Millisecond)
	for {
		select {
		case got := <-changed:
			assert.Equal(t, target, got)
		default:
			return
		}
	}
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	target := filepath.Join(t.TempDir(), "foo.yaml")
	require.NoError(t, os.WriteFile(target, nil, 0644))

	w, err := NewWatcher(time.Millisecond, target)
	require.NoError(t, err)
	assert.NoError(t, w.Stop())
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(time.Millisecond, filepath.Join(t.TempDir(), "absent", "foo.yaml"))
	assert.Error(t, err)
}

func TestWatcher_CallbacksDoNotOverlap(t *testing.T) {
	target := filepath.Join(t.TempDir(), "foo.yaml")
	require.NoError(t, os.WriteFile(target, nil, 0644))

	w, err := NewWatcher(time.Millisecond, target)
	require.NoError(t, err)

	var active, maxActive, calls atomic.Int32
	w.OnChange(func(path string) error {
		n := active.Add(1)
		for {
			m := maxActive.Load()
			if n <= m || maxActive.CompareAndSwap(m, n) {
				break
			}
		}
		calls.Add(1)
		time.Sleep(30 * time.Millisecond)
		active.Add(-1)
		return nil
	})

	// Each change outlives the debounce period, so timers fire while an
	// earlier batch is still running.
	for i := 0; i < 5; i++ {
		w.schedule(target)
		time.Sleep(5 * time.Millisecond)
	}
	require.NoError(t, w.Stop())

	assert.Zero(t, active.Load(), "callback still running after Stop")
	assert.Equal(t, int32(1), maxActive.Load())
	assert.GreaterOrEqual(t, calls.Load(), int32(1))

	after := calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "callback ran after Stop")
}

func TestWatcher_ScheduleAfterStop(t *testing.T) {
	target := filepath.Join(t.TempDir(), "foo.yaml")
	require.NoError(t, os.WriteFile(target, nil, 0644))

	w, err := NewWatcher(time.Millisecond, target)
	require.NoError(t, err)

	var calls atomic.Int32
	w.OnChange(func(path string) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, w.Stop())

	w.schedule(target)
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, calls.Load())
}
