package rwbin

import "io"

// Source supplies bytes to a decoding cursor. Reads are issued through
// io.ReadFull so short reads are retried until the requested count arrives.
type Source = io.Reader

// Sink receives bytes from an encoding cursor.
type Sink = io.Writer

// Flusher is implemented by sinks that buffer output.
type Flusher interface {
	Flush() error
}

// Memory represents a linear memory addressed by 32-bit offsets.
// wazero's api.Memory satisfies it.
type Memory interface {
	Read(offset, length uint32) ([]byte, bool)
	Write(offset uint32, data []byte) bool
	Size() uint32
}
