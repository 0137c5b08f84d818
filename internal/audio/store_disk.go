package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore keeps uploaded clip bytes under a single directory. It is the
// "store bytes under a name, play bytes on demand" collaborator: no decoding,
// no playback, just files.
type DiskStore struct {
	dir string
}

// OpenDiskStore ensures dir exists and is usable before returning a store.
func OpenDiskStore(dir string) (*DiskStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("audio: store dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("audio: create store dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes the upload to disk and returns the stored name and size.
// The stored name is prefixed with a random id so concurrent sessions
// uploading the same filename cannot clobber each other.
func (s *DiskStore) Save(filename string, src io.Reader) (storedName string, size int64, err error) {
	base := filepath.Base(strings.TrimSpace(filename))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "", 0, fmt.Errorf("audio: invalid filename %q", filename)
	}
	storedName = uuid.NewString() + "_" + base

	f, err := os.Create(filepath.Join(s.dir, storedName))
	if err != nil {
		return "", 0, fmt.Errorf("audio: create clip file: %w", err)
	}
	size, err = io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(filepath.Join(s.dir, storedName))
		return "", 0, fmt.Errorf("audio: write clip: %w", err)
	}
	return storedName, size, nil
}

// Open returns a reader over a stored clip.
func (s *DiskStore) Open(storedName string) (io.ReadCloser, error) {
	if storedName != filepath.Base(storedName) {
		return nil, fmt.Errorf("audio: invalid stored name %q", storedName)
	}
	f, err := os.Open(filepath.Join(s.dir, storedName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}
