package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// Store is the blob store backing media uploads: a flat directory of files
// keyed by filename. Listings reference blobs by filename only.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the uploaded file under the given name.
func (s *Store) Save(fileHeader *multipart.FileHeader, filename string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create upload directory: %w", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	absPath := filepath.Join(s.dir, filepath.Base(filename))
	dst, err := os.Create(absPath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(absPath)
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Remove deletes a stored blob. A file that is already gone is not an
// error: delete cleanup must be able to skip missing media silently.
func (s *Store) Remove(filename string) error {
	absPath := filepath.Join(s.dir, filepath.Base(filename))
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(absPath)
}

// Exists reports whether a blob with this filename is present.
func (s *Store) Exists(filename string) bool {
	_, err := os.Stat(filepath.Join(s.dir, filepath.Base(filename)))
	return err == nil
}
