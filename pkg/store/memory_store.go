package store

import (
	"fmt"
	"sync"
)

// MemoryStore keeps files in memory. It is used by tests and by callers that
// never touch the filesystem.
type MemoryStore struct {
	mutex   sync.RWMutex
	files   map[string][]byte
	backups int
}

// NewMemoryStore creates an empty memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{files: make(map[string][]byte)}
}

// Load returns a copy of the stored file.
func (s *MemoryStore) Load(path string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	data, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return append([]byte(nil), data...), nil
}

// Save stores a copy of data under path.
func (s *MemoryStore) Save(path string, data []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.files[path] = append([]byte(nil), data...)
	return nil
}

// Backup stores a copy of path under a numbered backup name.
func (s *MemoryStore) Backup(path string) (string, error) {
	data, err := s.Load(path)
	if err != nil {
		return "", err
	}

	s.mutex.Lock()
	s.backups++
	backupPath := fmt.Sprintf("%s.%d.bak", path, s.backups)
	s.mutex.Unlock()

	return backupPath, s.Save(backupPath, data)
}

// Len returns the number of stored files.
func (s *MemoryStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.files)
}
