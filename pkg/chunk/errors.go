package chunk

import "errors"

// Sentinel errors returned while building or decoding chunks.
var (
	// ErrDigitInType is returned when a raw chunk type contains an ASCII digit.
	ErrDigitInType = errors.New("digit found in chunk type")

	// ErrInvalidTypeLength is returned when a textual chunk type is not 4 bytes.
	ErrInvalidTypeLength = errors.New("invalid chunk type length")

	// ErrInvalidTypeCharacter is returned when a textual chunk type holds a non-letter.
	ErrInvalidTypeCharacter = errors.New("invalid chunk type character")

	// ErrNotText is returned when bytes requested as text are not valid UTF-8.
	ErrNotText = errors.New("data is not valid text")

	// ErrTruncated is returned when fewer bytes remain than the chunk declares.
	ErrTruncated = errors.New("chunk truncated")

	// ErrChecksumMismatch is returned when the stored CRC disagrees with the data.
	ErrChecksumMismatch = errors.New("chunk checksum mismatch")
)
