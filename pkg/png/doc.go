// Package png models a PNG file as its signature followed by an ordered list
// of chunks.
//
// Only the chunk framing is understood. Pixel data, palettes and compressed
// streams are carried as opaque chunk data, so any file that parses is
// reproduced byte for byte by Bytes unless it has been modified.
//
//	img, err := png.Parse(data)
//	if err != nil {
//	    return err // ErrBadSignature or a chunk error
//	}
//
//	img.InsertChunk(chunk.New(ct, []byte("hidden")), png.PlacementBeforeEnd)
//	out := img.Bytes()
//
// A Png is not safe for concurrent mutation.
package png
