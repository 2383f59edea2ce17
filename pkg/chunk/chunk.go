package chunk

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"unicode/utf8"
)

const (
	lengthSize = 4
	crcSize    = 4

	// HeaderSize is the number of bytes before a chunk's data.
	HeaderSize = lengthSize + TypeSize

	// Overhead is the number of framing bytes around a chunk's data.
	Overhead = HeaderSize + crcSize
)

// Chunk is a single PNG chunk
type Chunk struct {
	chunkType ChunkType
	data      []byte
	crc       uint32
}

// New creates a chunk of the given type and computes its CRC. The data slice
// is copied.
func New(chunkType ChunkType, data []byte) *Chunk {
	if uint64(len(data)) > uint64(^uint32(0)) {
		panic("chunk data too large")
	}
	owned := make([]byte, len(data))
	copy(owned, data)

	b := chunkType.Bytes()
	return &Chunk{
		chunkType: chunkType,
		data:      owned,
		crc:       checksum(b[:], owned),
	}
}

// Parse decodes the chunk at the start of data. Bytes after the chunk are ignored.
func Parse(data []byte) (*Chunk, error) {
	c, _, err := Decode(data)
	return c, err
}

// Decode decodes the chunk at the start of data and returns it with the number
// of bytes it occupied.
// Format: [Length(4)][Type(4)][Data(Length)][CRC(4)]
func Decode(data []byte) (*Chunk, int, error) {
	if len(data) < Overhead {
		return nil, 0, fmt.Errorf("%w: %d bytes available, need at least %d", ErrTruncated, len(data), Overhead)
	}

	length := binary.BigEndian.Uint32(data[0:lengthSize])
	total := uint64(Overhead) + uint64(length)
	if uint64(len(data)) < total {
		return nil, 0, fmt.Errorf("%w: declared length %d needs %d bytes, %d available", ErrTruncated, length, total, len(data))
	}
	end := int(total)

	typeBytes := data[lengthSize:HeaderSize]
	payload := data[HeaderSize : end-crcSize]
	stored := binary.BigEndian.Uint32(data[end-crcSize : end])

	// The CRC is checked before the type so that corruption of the type bytes
	// is always reported as a checksum failure.
	if actual := checksum(typeBytes, payload); actual != stored {
		return nil, 0, fmt.Errorf("%w: stored %08x, computed %08x", ErrChecksumMismatch, stored, actual)
	}

	var raw [TypeSize]byte
	copy(raw[:], typeBytes)
	chunkType, err := ChunkTypeFromBytes(raw)
	if err != nil {
		return nil, 0, err
	}

	owned := make([]byte, len(payload))
	copy(owned, payload)

	return &Chunk{chunkType: chunkType, data: owned, crc: stored}, end, nil
}

// Bytes returns the serialized chunk.
func (c *Chunk) Bytes() []byte {
	return c.AppendTo(make([]byte, 0, c.Size()))
}

// AppendTo appends the serialized chunk to buf and returns the extended slice.
func (c *Chunk) AppendTo(buf []byte) []byte {
	b := c.chunkType.Bytes()
	buf = binary.BigEndian.AppendUint32(buf, c.Length())
	buf = append(buf, b[:]...)
	buf = append(buf, c.data...)
	return binary.BigEndian.AppendUint32(buf, c.crc)
}

// ChunkType returns the chunk's type.
func (c *Chunk) ChunkType() ChunkType {
	return c.chunkType
}

// Data returns a copy of the chunk's data.
func (c *Chunk) Data() []byte {
	out := make([]byte, len(c.data))
	copy(out, c.data)
	return out
}

// DataAsString returns the data as text, failing if it is not valid UTF-8.
func (c *Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: %s chunk data", ErrNotText, c.chunkType)
	}
	return string(c.data), nil
}

// Length returns the number of data bytes.
func (c *Chunk) Length() uint32 {
	return uint32(len(c.data))
}

// CRC returns the chunk checksum.
func (c *Chunk) CRC() uint32 {
	return c.crc
}

// Size returns the total size of the chunk when encoded
func (c *Chunk) Size() int {
	return Overhead + len(c.data)
}

// Equal reports whether both chunks have the same type, data and CRC.
func (c *Chunk) Equal(other *Chunk) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.chunkType.Equal(other.chunkType) && c.crc == other.crc && string(c.data) == string(other.data)
}

// String implements fmt.Stringer.
func (c *Chunk) String() string {
	return fmt.Sprintf("Chunk{type: %s, length: %d, crc: %08x}", c.chunkType, c.Length(), c.crc)
}

// checksum computes the CRC-32 (IEEE) over the type bytes followed by the data.
func checksum(typeBytes, data []byte) uint32 {
	crc := crc32.NewIEEE()
	crc.Write(typeBytes) // hash.Hash writes never fail
	crc.Write(data)
	return crc.Sum32()
}
