// Package chunk implements the generic PNG chunk: a length-prefixed,
// type-tagged record protected by a CRC-32.
//
// # Chunk Format
//
// Every chunk is serialized with the following big-endian layout:
//
//	[Length(4)][Type(4)][Data(Length)][CRC(4)]
//
// Fields:
//   - Length: 32-bit unsigned number of bytes in Data
//   - Type: four bytes, see ChunkType
//   - Data: opaque payload
//   - CRC: CRC-32/ISO-HDLC (the zlib/IEEE polynomial) over Type followed by Data
//
// The total chunk size is: 12 bytes + Length.
//
// # Chunk Types
//
// The case of each type byte carries a property bit:
//
//	byte 0  uppercase = critical        lowercase = ancillary
//	byte 1  uppercase = public          lowercase = private
//	byte 2  uppercase = reserved valid  lowercase = invalid
//	byte 3  uppercase = unsafe to copy  lowercase = safe to copy
//
// ChunkTypeFromBytes only rejects ASCII digits, while ParseChunkType requires
// exactly four ASCII letters.
//
// # Usage
//
//	ct, err := chunk.ParseChunkType("ruSt")
//	if err != nil {
//	    return err
//	}
//
//	c := chunk.New(ct, []byte("hidden"))
//	encoded := c.Bytes()
//
//	decoded, err := chunk.Parse(encoded)
//	if err != nil {
//	    return err // ErrTruncated, ErrChecksumMismatch, ErrDigitInType
//	}
//
// Chunk values are immutable after construction and safe to share between
// goroutines.
package chunk
