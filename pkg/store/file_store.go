package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/segmentio/ksuid"
)

const (
	defaultBufferSize = 64 * 1024
	defaultFileMode   = 0644
)

// FileStore loads and saves whole files on the local filesystem. Saves are
// atomic: data goes to a temporary file in the target directory which is
// fsynced and renamed over the target.
type FileStore struct {
	config FileStoreConfig
}

// NewFileStore creates a new file store with the given configuration
func NewFileStore(config FileStoreConfig) *FileStore {
	if config.BufferSize <= 0 {
		config.BufferSize = defaultBufferSize
	}
	return &FileStore{config: config}
}

// Load reads the entire file at path.
func (s *FileStore) Load(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Save atomically replaces the file at path with data. The mode of an existing
// file is preserved.
func (s *FileStore) Save(path string, data []byte) error {
	mode := fs.FileMode(defaultFileMode)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%w: %s", ErrIsDirectory, path)
		}
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := writeAndSync(tmp, data, s.config.BufferSize); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Backup copies the file at path to <path>.<ksuid>.bak, or into BackupDir when
// configured. KSUIDs sort by creation time, so backups list oldest first.
func (s *FileStore) Backup(path string) (string, error) {
	data, err := s.Load(path)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s.%s.bak", filepath.Base(path), ksuid.New().String())
	dir := filepath.Dir(path)
	if s.config.BackupDir != "" {
		dir = s.config.BackupDir
	}
	backupPath := filepath.Join(dir, name)

	if err := s.Save(backupPath, data); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	return backupPath, nil
}

// writeAndSync writes data through a buffer, flushes, fsyncs and closes f.
func writeAndSync(f *os.File, data []byte, bufferSize int) error {
	w := bufio.NewWriterSize(f, bufferSize)
	if _, err := w.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
