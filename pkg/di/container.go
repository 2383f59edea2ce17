// Package di provides dependency injection container
package di

import (
	"io"
	"log/slog"
	"os"

	"github.com/MercMayhem/PngMe/pkg/commands"
	"github.com/MercMayhem/PngMe/pkg/config"
	"github.com/MercMayhem/PngMe/pkg/store"
)

// Container holds all the dependencies for the application
type Container struct {
	store  store.Store
	stdout io.Writer
	stderr io.Writer
}

// NewContainer creates a new dependency injection container backed by the
// local filesystem and the process's standard streams.
func NewContainer() *Container {
	return &Container{
		store:  store.NewFileStore(store.FileStoreConfig{}),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// GetStore returns the file store
func (c *Container) GetStore() store.Store {
	return c.store
}

// SetStore allows overriding the file store (for testing)
func (c *Container) SetStore(s store.Store) {
	c.store = s
}

// SetOutput allows overriding the output streams (for testing)
func (c *Container) SetOutput(stdout, stderr io.Writer) {
	c.stdout = stdout
	c.stderr = stderr
}

// Stdout returns the stream for user-facing output
func (c *Container) Stdout() io.Writer {
	return c.stdout
}

// Stderr returns the stream for logs and errors
func (c *Container) Stderr() io.Writer {
	return c.stderr
}

// NewLogger builds a text logger on stderr at the configured level
func (c *Container) NewLogger(cfg *config.Config) *slog.Logger {
	level, err := config.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))
}

// NewRunner builds a command runner from the configuration. A FileStore is
// rebuilt when the configuration names a backup directory.
func (c *Container) NewRunner(cfg *config.Config, styled bool) *commands.Runner {
	s := c.store
	if _, ok := s.(*store.FileStore); ok && cfg.BackupDir != "" {
		s = store.NewFileStore(store.FileStoreConfig{BackupDir: cfg.BackupDir})
	}

	return commands.NewRunner(s, c.stdout, c.NewLogger(cfg), commands.Options{
		Placement: cfg.PlacementValue(),
		Backup:    cfg.Backup,
		Format:    cfg.Output.Format,
		Styled:    styled,
	})
}
