package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTypeFromBytes(t *testing.T) {
	expected := [4]byte{82, 117, 83, 116}
	actual, err := ChunkTypeFromBytes([4]byte{82, 117, 83, 116})
	require.NoError(t, err)

	assert.Equal(t, expected, actual.Bytes())
}

func TestChunkTypeFromBytes_RejectsDigits(t *testing.T) {
	for i := 0; i < TypeSize; i++ {
		b := [4]byte{'R', 'u', 'S', 't'}
		b[i] = '7'
		_, err := ChunkTypeFromBytes(b)
		assert.ErrorIs(t, err, ErrDigitInType, "digit at position %d", i)
	}
}

func TestChunkTypeFromBytes_AcceptsNonLetters(t *testing.T) {
	ct, err := ChunkTypeFromBytes([4]byte{'R', '-', 'S', 0xFF})
	require.NoError(t, err)
	assert.False(t, ct.IsValid())

	_, err = ct.Text()
	assert.ErrorIs(t, err, ErrNotText)
	assert.Equal(t, "522d53ff", ct.String())
}

func TestParseChunkType(t *testing.T) {
	expected, err := ChunkTypeFromBytes([4]byte{82, 117, 83, 116})
	require.NoError(t, err)

	actual, err := ParseChunkType("RuSt")
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.True(t, expected.Equal(actual))
}

func TestParseChunkType_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "", want: ErrInvalidTypeLength},
		{name: "too short", input: "RuS", want: ErrInvalidTypeLength},
		{name: "too long", input: "RuStY", want: ErrInvalidTypeLength},
		{name: "digit", input: "Ru1t", want: ErrInvalidTypeCharacter},
		{name: "space", input: "Ru t", want: ErrInvalidTypeCharacter},
		{name: "punctuation", input: "Ru_t", want: ErrInvalidTypeCharacter},
		{name: "multibyte letter", input: "Rué", want: ErrInvalidTypeCharacter},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseChunkType(tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestChunkType_Properties(t *testing.T) {
	testCases := []struct {
		input     string
		critical  bool
		public    bool
		reserved  bool
		safeCopy  bool
		validType bool
	}{
		{input: "RuSt", critical: true, public: false, reserved: true, safeCopy: true, validType: true},
		{input: "ruSt", critical: false, public: false, reserved: true, safeCopy: true, validType: true},
		{input: "RUSt", critical: true, public: true, reserved: true, safeCopy: true, validType: true},
		{input: "Rust", critical: true, public: false, reserved: false, safeCopy: true, validType: false},
		{input: "RuST", critical: true, public: false, reserved: true, safeCopy: false, validType: true},
		{input: "IEND", critical: true, public: true, reserved: true, safeCopy: false, validType: true},
		{input: "tEXt", critical: false, public: true, reserved: true, safeCopy: true, validType: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			ct, err := ParseChunkType(tc.input)
			require.NoError(t, err)

			assert.Equal(t, tc.critical, ct.IsCritical(), "critical")
			assert.Equal(t, tc.public, ct.IsPublic(), "public")
			assert.Equal(t, tc.reserved, ct.IsReservedBitValid(), "reserved bit")
			assert.Equal(t, tc.safeCopy, ct.IsSafeToCopy(), "safe to copy")
			assert.Equal(t, tc.validType, ct.IsValid(), "valid")
		})
	}
}

func TestChunkType_PropertiesFromBytes(t *testing.T) {
	ct, err := ChunkTypeFromBytes([4]byte{82, 117, 83, 116})
	require.NoError(t, err)

	assert.True(t, ct.IsCritical())
	assert.False(t, ct.IsPublic())
	assert.True(t, ct.IsReservedBitValid())
	assert.True(t, ct.IsSafeToCopy())
}

// Each property depends on the case of a single byte only.
func TestChunkType_PropertiesAreIndependent(t *testing.T) {
	letters := []byte{'a', 'Z'}
	for _, b0 := range letters {
		for _, b1 := range letters {
			for _, b2 := range letters {
				for _, b3 := range letters {
					ct, err := ChunkTypeFromBytes([4]byte{b0, b1, b2, b3})
					require.NoError(t, err)

					assert.Equal(t, b0 == 'Z', ct.IsCritical())
					assert.Equal(t, b1 == 'Z', ct.IsPublic())
					assert.Equal(t, b2 == 'Z', ct.IsReservedBitValid())
					assert.Equal(t, b3 == 'a', ct.IsSafeToCopy())
					assert.Equal(t, b2 == 'Z', ct.IsValid())
				}
			}
		}
	}
}

func TestChunkType_RoundTripAllNonDigitBytes(t *testing.T) {
	for v := 0; v < 256; v++ {
		b := byte(v)
		raw := [4]byte{b, 'u', b, 't'}
		ct, err := ChunkTypeFromBytes(raw)
		if isDigit(b) {
			assert.ErrorIs(t, err, ErrDigitInType)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, raw, ct.Bytes())
	}
}

func TestChunkType_String(t *testing.T) {
	ct, err := ParseChunkType("RuSt")
	require.NoError(t, err)

	text, err := ct.Text()
	require.NoError(t, err)
	assert.Equal(t, "RuSt", text)
	assert.Equal(t, "RuSt", ct.String())
}

func TestMustParseChunkType(t *testing.T) {
	assert.Equal(t, "IEND", MustParseChunkType("IEND").String())
	assert.Panics(t, func() { MustParseChunkType("IE") })
}
