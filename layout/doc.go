// Package layout compiles a small textual field language into codec calls.
//
// A layout is a list of fields separated by commas, semicolons or newlines.
// Each field has an optional name and an optional '!' that reads it with the
// opposite byte order:
//
//	magic:   [4]u8
//	version: !u16
//	name:    utf8[16]
//	         align[4]
//	entry:   block[8]{ id: u32, live: bool }
//
// Decode returns one Value per field with its offset, size and rendered text.
// Errors carry the path of the failing field, for example "entry.live".
package layout
