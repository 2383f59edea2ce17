package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	var s Store = NewMemoryStore()

	_, err := s.Load("a.png")
	assert.ErrorIs(t, err, ErrFileNotFound)

	data := []byte("data")
	require.NoError(t, s.Save("a.png", data))
	data[0] = 'X'

	loaded, err := s.Load("a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), loaded)

	backupPath, err := s.Backup("a.png")
	require.NoError(t, err)
	assert.Equal(t, "a.png.1.bak", backupPath)

	backup, err := s.Load(backupPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), backup)
	assert.Equal(t, 2, s.(*MemoryStore).Len())
}
