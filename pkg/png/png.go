package png

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/MercMayhem/PngMe/pkg/chunk"
)

// Signature is the fixed 8 byte header of every PNG file.
var Signature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// EndChunkType is the type of the terminal marker chunk.
const EndChunkType = "IEND"

var (
	// ErrBadSignature is returned when data does not start with Signature.
	ErrBadSignature = errors.New("invalid PNG signature")

	// ErrChunkNotFound is returned when no chunk has the requested type.
	ErrChunkNotFound = errors.New("chunk not found")
)

// Png is an in-memory PNG file.
type Png struct {
	chunks []*chunk.Chunk
}

// FromChunks creates a Png holding the given chunks in order.
func FromChunks(chunks []*chunk.Chunk) *Png {
	owned := make([]*chunk.Chunk, len(chunks))
	copy(owned, chunks)
	return &Png{chunks: owned}
}

// Parse decodes a whole PNG file. Any malformed chunk fails the whole parse.
func Parse(data []byte) (*Png, error) {
	if len(data) < len(Signature) || !bytes.Equal(data[:len(Signature)], Signature[:]) {
		n := min(len(data), len(Signature))
		return nil, fmt.Errorf("%w: got % x", ErrBadSignature, data[:n])
	}

	var chunks []*chunk.Chunk
	offset := len(Signature)
	for offset < len(data) {
		c, n, err := chunk.Decode(data[offset:])
		if err != nil {
			return nil, fmt.Errorf("chunk %d at offset %d: %w", len(chunks), offset, err)
		}
		chunks = append(chunks, c)
		offset += n
	}

	return &Png{chunks: chunks}, nil
}

// AppendChunk adds c after the last chunk, including after IEND.
func (p *Png) AppendChunk(c *chunk.Chunk) {
	p.chunks = append(p.chunks, c)
}

// InsertChunk adds c according to placement and returns the index it was
// stored at.
func (p *Png) InsertChunk(c *chunk.Chunk, placement Placement) int {
	idx := len(p.chunks)
	if placement == PlacementBeforeEnd {
		if end := p.indexOf(EndChunkType); end >= 0 {
			idx = end
		}
	}

	p.chunks = append(p.chunks, nil)
	copy(p.chunks[idx+1:], p.chunks[idx:])
	p.chunks[idx] = c
	return idx
}

// ChunkByType returns the first chunk whose type text equals chunkType.
func (p *Png) ChunkByType(chunkType string) (*chunk.Chunk, error) {
	idx := p.indexOf(chunkType)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrChunkNotFound, chunkType)
	}
	return p.chunks[idx], nil
}

// ChunksByType returns every chunk whose type text equals chunkType, in order.
func (p *Png) ChunksByType(chunkType string) []*chunk.Chunk {
	var out []*chunk.Chunk
	for _, c := range p.chunks {
		if matches(c, chunkType) {
			out = append(out, c)
		}
	}
	return out
}

// RemoveChunk removes and returns the first chunk whose type text equals
// chunkType. Later chunks of the same type are kept.
func (p *Png) RemoveChunk(chunkType string) (*chunk.Chunk, error) {
	idx := p.indexOf(chunkType)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrChunkNotFound, chunkType)
	}

	removed := p.chunks[idx]
	p.chunks = append(p.chunks[:idx], p.chunks[idx+1:]...)
	return removed, nil
}

// Chunks returns the chunks in file order. The returned slice is a copy.
func (p *Png) Chunks() []*chunk.Chunk {
	out := make([]*chunk.Chunk, len(p.chunks))
	copy(out, p.chunks)
	return out
}

// Len returns the number of chunks.
func (p *Png) Len() int {
	return len(p.chunks)
}

// Size returns the encoded size of the file in bytes.
func (p *Png) Size() int {
	size := len(Signature)
	for _, c := range p.chunks {
		size += c.Size()
	}
	return size
}

// Bytes returns the encoded file: the signature followed by every chunk.
func (p *Png) Bytes() []byte {
	buf := make([]byte, 0, p.Size())
	buf = append(buf, Signature[:]...)
	for _, c := range p.chunks {
		buf = c.AppendTo(buf)
	}
	return buf
}

// EndsWithEnd reports whether the last chunk is IEND.
func (p *Png) EndsWithEnd() bool {
	return len(p.chunks) > 0 && matches(p.chunks[len(p.chunks)-1], EndChunkType)
}

func (p *Png) indexOf(chunkType string) int {
	for i, c := range p.chunks {
		if matches(c, chunkType) {
			return i
		}
	}
	return -1
}

func matches(c *chunk.Chunk, chunkType string) bool {
	text, err := c.ChunkType().Text()
	return err == nil && text == chunkType
}
