// Package codec implements the bounded binary cursors.
//
// Reader and Writer move bytes between a transport and typed values under a
// byte order fixed at construction. Each cursor counts the bytes it transfers
// and may carry a ceiling; a transfer that would cross the ceiling fails with
// errors.KindNotEnoughBytes before the transport is touched.
//
// # Codec functions
//
// Composite helpers take DecodeFunc and EncodeFunc values. Primitive methods
// are usable directly through method expressions:
//
//	pair, err := codec.DecodeTuple2((*codec.Reader).U8, (*codec.Reader).U16)(r)
//	words, err := codec.ReadSlice(r, 4, (*codec.Reader).U32)
//
// Types implementing Decoder or Encoder plug in through Read and Write:
//
//	entries, err := codec.ReadSlice(r, n, codec.Read[Entry])
//
// # Regions
//
// ReadPartial narrows the ceiling for one value and restores it afterwards.
// ReadBlock additionally skips any bytes the value left unread. ReadSwapped
// reads one value in the opposite byte order.
//
// # Contents
//
//   - reader.go, writer.go: cursors, budget checks, skipping and alignment
//   - primitive.go: fixed-width integers, floats, bool and rune
//   - protocol.go: Decoder/Encoder interfaces and function types
//   - composite.go, tuple.go: arrays, sequences, optionals, expectations, tuples
//   - partial.go: scoped sub-regions
//   - swap.go: opposite byte order views
//   - string.go: UTF-8 and UTF-16 strings
//   - leb128.go: LEB128 varints
//
// Cursors are not safe for concurrent use.
package codec
