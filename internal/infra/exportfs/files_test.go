package exportfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocumentCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Work", "nested", "note.md")

	require.NoError(t, WriteDocument(target, "content\n"))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "content\n", string(data))
}

func TestWriteDocumentReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "note.md")

	require.NoError(t, WriteDocument(target, "old"))
	require.NoError(t, WriteDocument(target, "new"))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "note.md")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing.md")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestCopyFileCreatesDestinationDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "media", "dst.bin")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	require.NoError(t, CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestReadHeadCapsAtFileSize(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "small.bin")
	require.NoError(t, os.WriteFile(file, []byte("abc"), 0o644))

	head, err := ReadHead(file, 512)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), head)

	head, err = ReadHead(file, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), head)
}

func TestRemoveIfExistsIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tmp.dat")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	require.NoError(t, RemoveIfExists(file))
	require.NoError(t, RemoveIfExists(file))
	require.NoError(t, RemoveIfExists(filepath.Join(dir, "never-there")))
}
