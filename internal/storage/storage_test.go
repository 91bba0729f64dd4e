package storage

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *ArtifactStore {
	t.Helper()
	store, err := NewArtifactStore(t.TempDir())
	assert.NoError(t, err)
	return store
}

func TestSaveEncode_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	pdf := []byte("%PDF-1.4 fake statement")

	path, err := store.Save(pdf)
	assert.NoError(t, err)

	encoded, err := store.Encode(path)
	assert.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	assert.NoError(t, err)
	assert.Equal(t, pdf, decoded)
}

func TestSave_UniquePathPerArtifact(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Save([]byte("first"))
	assert.NoError(t, err)
	second, err := store.Save([]byte("second"))
	assert.NoError(t, err)

	assert.NotEqual(t, first, second, "two saves must never share a path")

	firstEncoded, err := store.Encode(first)
	assert.NoError(t, err)
	secondEncoded, err := store.Encode(second)
	assert.NoError(t, err)
	assert.NotEqual(t, firstEncoded, secondEncoded)
}

func TestEncode_MissingArtifact(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Encode(filepath.Join(t.TempDir(), "gone.pdf"))

	assert.Error(t, err)
	var notFound *ArtifactNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRemove_DeletesArtifact(t *testing.T) {
	store := newTestStore(t)

	path, err := store.Save([]byte("temporary"))
	assert.NoError(t, err)

	assert.NoError(t, store.Remove(path))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRemove_MissingArtifactIsNotAnError(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Remove(filepath.Join(t.TempDir(), "never-existed.pdf")))
}

func TestNewArtifactStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "spool", "nested")

	_, err := NewArtifactStore(dir)
	assert.NoError(t, err)

	info, statErr := os.Stat(dir)
	assert.NoError(t, statErr)
	assert.True(t, info.IsDir())
}
