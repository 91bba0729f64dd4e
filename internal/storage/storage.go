package storage

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
)

// ArtifactNotFoundError reports a statement artifact missing at read
// time, which means the export stage silently produced nothing.
type ArtifactNotFoundError struct {
	Path string
}

func (e *ArtifactNotFoundError) Error() string {
	return fmt.Sprintf("artifact not found: %s", e.Path)
}

// ArtifactStore spools rendered statement artifacts on local disk.
// Every artifact gets its own uuid-derived path, so concurrent requests
// never read each other's documents. Artifacts live only between the
// export and encode stages of one request.
type ArtifactStore struct {
	dir string
}

func NewArtifactStore(dir string) (*ArtifactStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ArtifactStore{dir: dir}, nil
}

// Save writes the artifact under a fresh per-request name and returns
// its path.
func (s *ArtifactStore) Save(pdf []byte) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "statement-"+id.String()+".pdf")
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", err
	}

	return path, nil
}

// Encode reads the artifact at path synchronously and returns its
// base64 text representation.
func (s *ArtifactStore) Encode(path string) (string, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &ArtifactNotFoundError{Path: path}
		}
		return "", err
	}

	return base64.StdEncoding.EncodeToString(body), nil
}

// Remove deletes a spooled artifact. A file already gone is not an
// error; the artifact's lifecycle ends either way.
func (s *ArtifactStore) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
