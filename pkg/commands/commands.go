package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/MercMayhem/PngMe/pkg/chunk"
	"github.com/MercMayhem/PngMe/pkg/png"
	"github.com/MercMayhem/PngMe/pkg/store"
)

// Runner executes actions against files in a store
type Runner struct {
	store   store.Store
	out     io.Writer
	logger  *slog.Logger
	options Options
}

// NewRunner creates a runner that writes user output to out
func NewRunner(s store.Store, out io.Writer, logger *slog.Logger, options Options) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if options.Format == "" {
		options.Format = formatTable
	}
	return &Runner{store: s, out: out, logger: logger, options: options}
}

// Encode adds a chunk holding the message and writes the file to OutputFile,
// or back to FilePath when no output is given.
func (r *Runner) Encode(args EncodeArgs) error {
	img, err := r.load(args.FilePath)
	if err != nil {
		return err
	}

	chunkType, err := chunk.ParseChunkType(args.ChunkType)
	if err != nil {
		return err
	}
	if chunkType.IsCritical() {
		r.logger.Warn("chunk type is critical; decoders that do not know it will reject the file",
			"chunk_type", args.ChunkType)
	}
	if !chunkType.IsReservedBitValid() {
		r.logger.Warn("chunk type has a lowercase reserved byte; strict decoders will reject the file",
			"chunk_type", args.ChunkType)
	}

	c := chunk.New(chunkType, []byte(args.Message))
	idx := img.InsertChunk(c, r.options.Placement)
	r.logger.Debug("inserted chunk",
		"chunk_type", args.ChunkType, "index", idx, "placement", r.options.Placement.String(), "length", c.Length())

	dest := args.OutputFile
	if dest == "" {
		dest = args.FilePath
	}
	if err := r.save(dest, dest == args.FilePath, img); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Encoded %d byte message into %s chunk of %s\n", c.Length(), args.ChunkType, dest)
	return nil
}

// Decode prints the message of the first chunk of the given type, or of every
// such chunk when All is set.
func (r *Runner) Decode(args DecodeArgs) error {
	img, err := r.load(args.FilePath)
	if err != nil {
		return err
	}

	var matches []*chunk.Chunk
	if args.All {
		matches = img.ChunksByType(args.ChunkType)
		if len(matches) == 0 {
			return fmt.Errorf("%w: %s", png.ErrChunkNotFound, args.ChunkType)
		}
	} else {
		c, err := img.ChunkByType(args.ChunkType)
		if err != nil {
			return err
		}
		matches = []*chunk.Chunk{c}
	}

	messages := make([]Message, 0, len(matches))
	for i, c := range matches {
		text, err := c.DataAsString()
		if err != nil {
			return err
		}
		messages = append(messages, Message{Index: i, ChunkType: args.ChunkType, Message: text})
	}

	return r.writeMessages(messages)
}

// Remove deletes the first chunk of the given type, or every such chunk when
// All is set, and writes the file back.
func (r *Runner) Remove(args RemoveArgs) error {
	img, err := r.load(args.FilePath)
	if err != nil {
		return err
	}

	removed := 0
	for {
		c, err := img.RemoveChunk(args.ChunkType)
		if errors.Is(err, png.ErrChunkNotFound) && removed > 0 {
			break
		}
		if err != nil {
			return err
		}
		removed++
		if c.ChunkType().IsCritical() {
			r.logger.Warn("removed a critical chunk; the image may no longer decode", "chunk_type", args.ChunkType)
		}
		if !args.All {
			break
		}
	}

	if err := r.save(args.FilePath, true, img); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Removed %d %s chunk(s) from %s\n", removed, args.ChunkType, args.FilePath)
	return nil
}

// Print lists every chunk in file order.
func (r *Runner) Print(args PrintArgs) error {
	img, err := r.load(args.FilePath)
	if err != nil {
		return err
	}

	if !img.EndsWithEnd() {
		r.logger.Warn("file does not end with an IEND chunk", "path", args.FilePath)
	}

	chunks := img.Chunks()
	if args.TypesOnly {
		return r.writeTypes(chunks)
	}

	infos := make([]ChunkInfo, 0, len(chunks))
	for i, c := range chunks {
		infos = append(infos, describe(i, c))
	}
	return r.writeChunks(infos)
}

func (r *Runner) load(path string) (*png.Png, error) {
	data, err := r.store.Load(path)
	if err != nil {
		return nil, err
	}

	img, err := png.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.logger.Debug("parsed file", "path", path, "bytes", len(data), "chunks", img.Len())
	return img, nil
}

func (r *Runner) save(path string, inPlace bool, img *png.Png) error {
	if inPlace && r.options.Backup {
		backupPath, err := r.store.Backup(path)
		if err != nil {
			return err
		}
		r.logger.Info("backed up original", "path", path, "backup", backupPath)
	}

	data := img.Bytes()
	if err := r.store.Save(path, data); err != nil {
		return err
	}
	r.logger.Debug("wrote file", "path", path, "bytes", len(data), "chunks", img.Len())
	return nil
}

func describe(index int, c *chunk.Chunk) ChunkInfo {
	ct := c.ChunkType()
	return ChunkInfo{
		Index:      index,
		Type:       ct.String(),
		Length:     c.Length(),
		CRC:        fmt.Sprintf("%08x", c.CRC()),
		Critical:   ct.IsCritical(),
		Public:     ct.IsPublic(),
		SafeToCopy: ct.IsSafeToCopy(),
		Valid:      ct.IsValid(),
	}
}
