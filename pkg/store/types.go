package store

// Store reads and writes whole files
type Store interface {
	// Load returns the full contents of the file at path.
	Load(path string) ([]byte, error)

	// Save replaces the file at path with data, creating it if needed.
	Save(path string, data []byte) error

	// Backup copies the file at path aside and returns the copy's path.
	Backup(path string) (string, error)
}

// FileStoreConfig holds configuration for the file store
type FileStoreConfig struct {
	BufferSize int    // Write buffer size
	BackupDir  string // Directory for backups (empty = next to the original)
}

// Errors
var (
	ErrFileNotFound = &StoreError{"file not found"}
	ErrIsDirectory  = &StoreError{"path is a directory"}
)

// StoreError represents a file store error
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}
