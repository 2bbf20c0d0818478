package tempstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	e, err := s.Save(strings.NewReader("audio"), "mp3")
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(e.Path()))
	assert.True(t, strings.HasPrefix(filepath.Base(e.Path()), "upload-"))
	assert.Equal(t, ".mp3", filepath.Ext(e.Path()))

	data, err := os.ReadFile(e.Path())
	require.NoError(t, err)
	assert.Equal(t, "audio", string(data))

	require.NoError(t, e.Remove())
	assert.NoFileExists(t, e.Path())
	assert.NoError(t, e.Remove(), "second remove is a no-op")
}

func TestSave_CopyFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()

	_, err := New(dir).Save(failingReader{}, ".mp3")
	assert.ErrorContains(t, err, "connection reset")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNew_DefaultDir(t *testing.T) {
	assert.Equal(t, os.TempDir(), New("").Dir())
}

func TestSave_ConcurrentNamesAreUnique(t *testing.T) {
	s := New(t.TempDir())

	const n = 50
	paths := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e, err := s.Save(strings.NewReader(fmt.Sprintf("payload-%d", i)), ".mp3")
			if assert.NoError(t, err) {
				paths[i] = e.Path()
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for i, p := range paths {
		require.NotEmpty(t, p)
		assert.False(t, seen[p], "duplicate path %s", p)
		seen[p] = true

		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("payload-%d", i), string(data))
	}
}
