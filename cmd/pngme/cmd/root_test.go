package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MercMayhem/PngMe/pkg/chunk"
	"github.com/MercMayhem/PngMe/pkg/config"
	"github.com/MercMayhem/PngMe/pkg/di"
	"github.com/MercMayhem/PngMe/pkg/png"
	"github.com/MercMayhem/PngMe/pkg/store"
)

type cliEnv struct {
	store  *store.MemoryStore
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newCLIEnv points HOME at an empty directory so no user config is read.
func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	env := &cliEnv{
		store:  store.NewMemoryStore(),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	c := di.NewContainer()
	c.SetStore(env.store)
	c.SetOutput(env.stdout, env.stderr)
	SetContainer(c)
	t.Cleanup(func() { SetContainer(nil) })

	img := png.FromChunks([]*chunk.Chunk{
		chunk.New(chunk.MustParseChunkType("IHDR"), make([]byte, 13)),
		chunk.New(chunk.MustParseChunkType("IEND"), nil),
	})
	require.NoError(t, env.store.Save("image.png", img.Bytes()))
	return env
}

func (e *cliEnv) run(args ...string) error {
	e.stdout.Reset()
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCLI_EncodeDecodeRemove(t *testing.T) {
	env := newCLIEnv(t)

	require.NoError(t, env.run("encode", "image.png", "ruSt", "hidden"))
	assert.Contains(t, env.stdout.String(), "Encoded 6 byte message into ruSt chunk of image.png")

	require.NoError(t, env.run("decode", "image.png", "ruSt"))
	assert.Equal(t, "Message: hidden\n", env.stdout.String())

	require.NoError(t, env.run("print", "image.png", "--types-only"))
	assert.Equal(t, "Chunks:\nIHDR\nruSt\nIEND\n", env.stdout.String())

	require.NoError(t, env.run("remove", "image.png", "ruSt"))
	assert.Contains(t, env.stdout.String(), "Removed 1 ruSt chunk(s)")

	err := env.run("decode", "image.png", "ruSt")
	assert.ErrorIs(t, err, png.ErrChunkNotFound)
}

func TestCLI_EncodeOutputFile(t *testing.T) {
	env := newCLIEnv(t)

	require.NoError(t, env.run("encode", "image.png", "ruSt", "hidden", "out.png"))

	require.NoError(t, env.run("print", "out.png", "-t"))
	assert.Equal(t, "Chunks:\nIHDR\nruSt\nIEND\n", env.stdout.String())

	require.NoError(t, env.run("print", "image.png", "-t"))
	assert.Equal(t, "Chunks:\nIHDR\nIEND\n", env.stdout.String())
}

func TestCLI_FlagsOverrideConfig(t *testing.T) {
	env := newCLIEnv(t)

	require.NoError(t, env.run("encode", "image.png", "ruSt", "hidden", "--placement", "append", "--backup"))
	require.NoError(t, env.run("print", "image.png", "-t"))
	assert.Equal(t, "Chunks:\nIHDR\nIEND\nruSt\n", env.stdout.String())

	_, err := env.store.Load("image.png.1.bak")
	assert.NoError(t, err)

	require.NoError(t, env.run("decode", "image.png", "ruSt", "-o", "json"))
	assert.Contains(t, env.stdout.String(), `"message": "hidden"`)
}

func TestCLI_RemoveAll(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, env.run("encode", "image.png", "ruSt", "one"))
	require.NoError(t, env.run("encode", "image.png", "ruSt", "two"))

	require.NoError(t, env.run("decode", "image.png", "ruSt", "--all"))
	assert.Equal(t, "Message: one\nMessage: two\n", env.stdout.String())

	require.NoError(t, env.run("remove", "image.png", "ruSt", "--all"))
	assert.Contains(t, env.stdout.String(), "Removed 2 ruSt chunk(s)")
}

func TestCLI_Errors(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, env.store.Save("bad.png", []byte("GIF89a")))

	assert.ErrorIs(t, env.run("decode", "bad.png", "ruSt"), png.ErrBadSignature)
	assert.ErrorIs(t, env.run("decode", "missing.png", "ruSt"), store.ErrFileNotFound)
	assert.ErrorIs(t, env.run("encode", "image.png", "Ru1t", "x"), chunk.ErrInvalidTypeCharacter)
	assert.Error(t, env.run("encode", "image.png", "ruSt"))
	assert.Error(t, env.run("print"))

	err := env.run("print", "image.png", "--placement", "middle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown placement")
}

func TestCLI_LogLevel(t *testing.T) {
	env := newCLIEnv(t)

	require.NoError(t, env.run("encode", "image.png", "ruSt", "x", "--log-level", "debug"))
	assert.Contains(t, env.stderr.String(), "inserted chunk")

	env.stderr.Reset()
	require.NoError(t, env.run("encode", "image.png", "RuSt", "x", "--log-level", "error"))
	assert.Empty(t, env.stderr.String())
}

func TestCLI_ConfigFile(t *testing.T) {
	env := newCLIEnv(t)
	configPath := filepath.Join(t.TempDir(), "pngme.yaml")

	require.NoError(t, env.run("init", "--config", configPath))
	assert.Contains(t, env.stdout.String(), "Wrote default config to")
	assert.True(t, config.ConfigExists(configPath))

	require.NoError(t, env.run("init", "--config", configPath))
	assert.Contains(t, env.stdout.String(), "Config already exists")

	cfg := config.DefaultConfig()
	cfg.Placement = "append"
	require.NoError(t, config.SaveConfig(cfg, configPath))

	require.NoError(t, env.run("encode", "image.png", "ruSt", "x", "--config", configPath))
	require.NoError(t, env.run("print", "image.png", "-t", "--config", configPath))
	assert.Equal(t, "Chunks:\nIHDR\nIEND\nruSt\n", env.stdout.String())

	err := env.run("print", "image.png", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCLI_InitForce(t *testing.T) {
	env := newCLIEnv(t)
	configPath := filepath.Join(t.TempDir(), "pngme.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("placement: nowhere\n"), 0600))

	require.NoError(t, env.run("init", "--config", configPath, "--force"))

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, useColor("always", &buf))
	assert.False(t, useColor("never", &buf))
	assert.False(t, useColor("auto", &buf))
}
