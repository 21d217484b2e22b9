package uploads

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DiskStore_Remove(t *testing.T) {
	dir := t.TempDir()
	s := NewDiskStore(dir)

	path := filepath.Join(dir, "1700000000.png")
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))

	require.NoError(t, s.Remove("1700000000.png"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Missing file and empty reference are both fine.
	assert.NoError(t, s.Remove("1700000000.png"))
	assert.NoError(t, s.Remove(""))
}

func Test_DiskStore_Remove_StaysInsideDir(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	sub := filepath.Join(dir, "uploads")
	require.NoError(t, os.Mkdir(sub, 0o755))
	s := NewDiskStore(sub)

	// A traversal reference must not reach files outside the upload dir.
	require.NoError(t, s.Remove("../victim.txt"))
	_, err := os.Stat(outside)
	assert.NoError(t, err)
}
