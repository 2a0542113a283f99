package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSlot is the name of the single persisted CV slot
const DefaultSlot = "cvBuilderData"

var (
	// ErrNotFound means nothing has been saved in the slot yet
	ErrNotFound = errors.New("no saved CV found")
	// ErrCapacity means the blob exceeds the slot quota
	ErrCapacity = errors.New("storage quota exceeded")
	// ErrCorrupt means the saved data cannot be decoded
	ErrCorrupt = errors.New("saved CV data is corrupted")
)

// Gateway persists one serialized document
type Gateway interface {
	Save(data []byte) error
	Load() ([]byte, error)
	Remove() error
	Exists() bool
}

// FileStore keeps the slot as a JSON file inside the project directory
type FileStore struct {
	Dir      string
	Slot     string
	MaxBytes int64
}

// NewFileStore creates a store for slot in dir. maxBytes <= 0 disables the quota.
func NewFileStore(dir, slot string, maxBytes int64) *FileStore {
	if slot == "" {
		slot = DefaultSlot
	}
	return &FileStore{Dir: dir, Slot: slot, MaxBytes: maxBytes}
}

// Path returns the slot file path
func (s *FileStore) Path() string {
	return filepath.Join(s.Dir, s.Slot+".json")
}

// Save writes data atomically; an oversized blob fails with ErrCapacity and
// leaves the previous save in place.
func (s *FileStore) Save(data []byte) error {
	if s.MaxBytes > 0 && int64(len(data)) > s.MaxBytes {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrCapacity, len(data), s.MaxBytes)
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", s.Slot, err)
	}

	tmp, err := os.CreateTemp(s.Dir, s.Slot+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", s.Slot, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", s.Slot, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", s.Slot, err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to store %s: %w", s.Slot, err)
	}

	return nil
}

// Load reads the slot. A missing slot returns ErrNotFound.
func (s *FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.Slot, err)
	}
	return data, nil
}

// Remove deletes the slot; removing an absent slot is not an error
func (s *FileStore) Remove() error {
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", s.Slot, err)
	}
	return nil
}

// Exists reports whether something has been saved
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}
