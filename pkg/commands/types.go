package commands

import "github.com/MercMayhem/PngMe/pkg/png"

// EncodeArgs holds the arguments of the encode action
type EncodeArgs struct {
	FilePath   string // File to read
	ChunkType  string // Type of the new chunk
	Message    string // Chunk data
	OutputFile string // Optional destination, FilePath when empty
}

// DecodeArgs holds the arguments of the decode action
type DecodeArgs struct {
	FilePath  string
	ChunkType string
	All       bool // Print every matching chunk instead of the first
}

// RemoveArgs holds the arguments of the remove action
type RemoveArgs struct {
	FilePath  string
	ChunkType string
	All       bool // Remove every matching chunk instead of the first
}

// PrintArgs holds the arguments of the print action
type PrintArgs struct {
	FilePath  string
	TypesOnly bool // One type per line, no table
}

// Options controls how a Runner writes files and output
type Options struct {
	Placement png.Placement // Where Encode puts the new chunk
	Backup    bool          // Back up a file before rewriting it in place
	Format    string        // "table" or "json"
	Styled    bool          // Emit ANSI styling in table output
}

// ChunkInfo describes one chunk in print output
type ChunkInfo struct {
	Index      int    `json:"index"`
	Type       string `json:"type"`
	Length     uint32 `json:"length"`
	CRC        string `json:"crc"`
	Critical   bool   `json:"critical"`
	Public     bool   `json:"public"`
	SafeToCopy bool   `json:"safe_to_copy"`
	Valid      bool   `json:"valid"`
}

// Message is one decoded chunk in decode output
type Message struct {
	Index     int    `json:"index"`
	ChunkType string `json:"chunk_type"`
	Message   string `json:"message"`
}
