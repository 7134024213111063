package watch

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMatches(t *testing.T) {
	fw := &FileWatcher{extensions: []string{".css"}}

	assert.True(t, fw.matches("styles/app.css"))
	assert.True(t, fw.matches("APP.CSS"))
	assert.False(t, fw.matches("app.scss"))
	assert.False(t, fw.matches("app.css.bak"))
}

func TestWatcherSeesWrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "app.css")
	require.NoError(t, os.WriteFile(target, []byte("a{}"), 0o644))

	var (
		mu   sync.Mutex
		seen []string
	)
	done := make(chan struct{}, 1)

	fw, err := NewFileWatcher([]string{".css"}, zap.NewNop(), func(files []string) error {
		mu.Lock()
		seen = append(seen, files...)
		mu.Unlock()
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, fw.Start(dir))
	defer fw.Stop()

	require.NoError(t, os.WriteFile(target, []byte("a{color:red}"), 0o644))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, seen)
	assert.Equal(t, target, seen[0])
}

func TestStopIsIdempotent(t *testing.T) {
	fw, err := NewFileWatcher([]string{".css"}, nil, func([]string) error { return nil })
	require.NoError(t, err)
	require.NoError(t, fw.Start(t.TempDir()))

	require.NoError(t, fw.Stop())
	require.NoError(t, fw.Stop())
}
