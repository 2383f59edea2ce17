package chunk

import (
	"fmt"
	"unicode/utf8"
)

// TypeSize is the number of bytes in a chunk type.
const TypeSize = 4

// ChunkType is the four byte identifier of a chunk. The zero value is not a
// usable type; build one with ChunkTypeFromBytes or ParseChunkType.
type ChunkType struct {
	b [TypeSize]byte
}

// ChunkTypeFromBytes builds a chunk type from raw bytes. Only ASCII digits are
// rejected; other non-letter bytes are accepted and make IsValid report false.
func ChunkTypeFromBytes(b [TypeSize]byte) (ChunkType, error) {
	for i, c := range b {
		if isDigit(c) {
			return ChunkType{}, fmt.Errorf("%w: byte %d is %q", ErrDigitInType, i, c)
		}
	}
	return ChunkType{b: b}, nil
}

// ParseChunkType builds a chunk type from its textual form, which must be
// exactly four ASCII letters.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != TypeSize {
		return ChunkType{}, fmt.Errorf("%w: %q has %d bytes, want %d", ErrInvalidTypeLength, s, len(s), TypeSize)
	}

	var b [TypeSize]byte
	for i := 0; i < TypeSize; i++ {
		if !isLetter(s[i]) {
			return ChunkType{}, fmt.Errorf("%w: %q at position %d in %q", ErrInvalidTypeCharacter, s[i], i, s)
		}
		b[i] = s[i]
	}
	return ChunkType{b: b}, nil
}

// MustParseChunkType is like ParseChunkType but panics on error. It is meant
// for package-level values built from constants.
func MustParseChunkType(s string) ChunkType {
	ct, err := ParseChunkType(s)
	if err != nil {
		panic(err)
	}
	return ct
}

// Bytes returns the raw type bytes.
func (t ChunkType) Bytes() [TypeSize]byte {
	return t.b
}

// Text returns the type as a string, failing if the bytes are not valid UTF-8.
func (t ChunkType) Text() (string, error) {
	if !utf8.Valid(t.b[:]) {
		return "", fmt.Errorf("%w: chunk type %x", ErrNotText, t.b)
	}
	return string(t.b[:]), nil
}

// String implements fmt.Stringer. Invalid text is rendered as hex.
func (t ChunkType) String() string {
	s, err := t.Text()
	if err != nil {
		return fmt.Sprintf("%x", t.b)
	}
	return s
}

// Equal reports whether both types hold the same bytes.
func (t ChunkType) Equal(other ChunkType) bool {
	return t.b == other.b
}

// IsValid reports whether all bytes are ASCII letters and the reserved bit is valid.
func (t ChunkType) IsValid() bool {
	for _, c := range t.b {
		if !isLetter(c) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

// IsCritical reports whether the first byte is uppercase.
func (t ChunkType) IsCritical() bool {
	return isUpper(t.b[0])
}

// IsPublic reports whether the second byte is uppercase.
func (t ChunkType) IsPublic() bool {
	return isUpper(t.b[1])
}

// IsReservedBitValid reports whether the third byte is uppercase.
func (t ChunkType) IsReservedBitValid() bool {
	return isUpper(t.b[2])
}

// IsSafeToCopy reports whether the fourth byte is lowercase.
func (t ChunkType) IsSafeToCopy() bool {
	return isLower(t.b[3])
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isUpper(c byte) bool  { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool  { return c >= 'a' && c <= 'z' }
func isLetter(c byte) bool { return isUpper(c) || isLower(c) }
