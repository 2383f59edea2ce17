// Package commands implements the pngme actions on top of the png and chunk
// packages: encoding a message into a file, decoding it back, removing it, and
// printing the chunk list.
//
// Each action performs one whole-file read through a store.Store, mutates the
// parsed file in memory, and writes it back at most once. Errors are returned
// to the caller; nothing here exits the process.
package commands
