package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_NotInitializedIsSilent(t *testing.T) {
	l := NewLogger()
	l.Log("dropped")
	l.Logf("dropped %d", 1)
	l.Close()
	assert.Empty(t, l.Path())
}

func TestLogger_WritesRunFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l := NewLogger()
	require.NoError(t, l.Init(dir))

	l.Logf("[BUILD] %s: %d slides", "proposal", 25)
	path := l.Path()
	l.Close()

	assert.True(t, strings.HasPrefix(filepath.Base(path), "deckgen_"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Run started "+l.RunID())
	assert.Contains(t, text, "[BUILD] proposal: 25 slides")
	assert.Contains(t, text, "Run finished.")
}

func TestLogger_ZeroValueGetsRunID(t *testing.T) {
	var l Logger
	require.NoError(t, l.Init(t.TempDir()))
	l.Log("zero value logger")
	path := l.Path()
	l.Close()

	id := l.RunID()
	require.Len(t, id, 36)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "["+id[:8]+"] zero value logger")
}

func TestLogger_RunFilesAreNumbered(t *testing.T) {
	dir := t.TempDir()

	first := NewLogger()
	require.NoError(t, first.Init(dir))
	first.Close()

	second := NewLogger()
	require.NoError(t, second.Init(dir))
	second.Close()

	assert.NotEqual(t, first.Path(), second.Path())
	assert.True(t, strings.HasSuffix(second.Path(), "_2.log"))
	assert.NotEqual(t, first.RunID(), second.RunID())
}

func TestLogger_ConcurrentWrites(t *testing.T) {
	dir := t.TempDir()
	l := NewLogger()
	require.NoError(t, l.Init(dir))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				l.Logf("worker %d line %d", n, j)
			}
		}(i)
	}
	wg.Wait()
	path := l.Path()
	l.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// start + 400 + finish
	assert.Len(t, lines, 402)
}
