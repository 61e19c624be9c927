package run

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorLog(t *testing.T) {
	dir := t.TempDir()
	records := []ErrorRecord{
		{Path: "/data/a.txt", Message: "reading file: permission denied", Time: time.Now()},
		{Path: "/data/b.txt", Message: "content is not valid UTF-8", Time: time.Now()},
	}

	path, err := WriteErrorLog(dir, records)

	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	matches, err := filepath.Glob(filepath.Join(dir, "capedit_log_*.txt"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, matches[0], path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "capedit error log")
	assert.Contains(t, string(content), "/data/a.txt")
	assert.Contains(t, string(content), "permission denied")
	assert.Contains(t, string(content), "/data/b.txt")
	assert.Contains(t, string(content), "not valid UTF-8")
}

func TestWriteErrorLog_BadDirectory(t *testing.T) {
	_, err := WriteErrorLog(filepath.Join(t.TempDir(), "missing"), []ErrorRecord{
		{Path: "x.txt", Message: "boom", Time: time.Now()},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing error log")
}
