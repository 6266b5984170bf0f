package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/rockerbogie/internal/testutil"
)

func TestWatchParams_RerunsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "Parameters.csv", "name,value,unit\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchParams(ctx, path, 20*time.Millisecond, testutil.NewTestLogger(t),
			func() error { runs.Add(1); return nil },
			func(error) {})
	}()

	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	// Unrelated files in the same directory are ignored.
	testutil.WriteFile(t, dir, "notes.txt", "hello")
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())

	require.NoError(t, os.WriteFile(path, []byte("name,value,unit\nrover_width,600,mm\n"), 0600))
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchParams_ReportsRunErrors(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "Parameters.csv", "name,value,unit\n")

	ctx, cancel := context.WithCancel(context.Background())
	boom := errors.New("boom")

	var reported atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchParams(ctx, path, 10*time.Millisecond, testutil.NewTestLogger(t),
			func() error { return boom },
			func(err error) {
				if errors.Is(err, boom) {
					reported.Add(1)
				}
			})
	}()

	require.Eventually(t, func() bool { return reported.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.NoError(t, <-done, "run errors never stop the loop")
}

func TestWatchParams_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "Parameters.csv")
	err := watchParams(context.Background(), path, time.Millisecond, testutil.NewTestLogger(t),
		func() error { return nil }, func(error) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
