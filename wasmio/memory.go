package wasmio

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/uznami/rwbin"
	"github.com/uznami/rwbin/codec"
	"github.com/uznami/rwbin/endian"
	"github.com/uznami/rwbin/errors"
)

// ErrOutOfBounds is the cause of any access outside the guest memory.
var ErrOutOfBounds = stderrors.New("wasmio: memory access out of bounds")

// Reader reads a fixed region of linear memory.
type Reader struct {
	mem rwbin.Memory
	off uint32
	end uint32
}

// NewReader creates a Reader over [offset, offset+length).
func NewReader(mem rwbin.Memory, offset, length uint32) *Reader {
	return &Reader{mem: mem, off: offset, end: offset + length}
}

// Offset returns the next memory offset to be read.
func (r *Reader) Offset() uint32 {
	return r.off
}

// Read copies up to len(p) bytes from the region.
func (r *Reader) Read(p []byte) (int, error) {
	if r.off >= r.end {
		return 0, io.EOF
	}
	n := uint32(min(len(p), int(r.end-r.off)))
	data, ok := r.mem.Read(r.off, n)
	if !ok {
		Logger().Debug("guest read out of bounds",
			zap.Uint32("offset", r.off),
			zap.Uint32("length", n),
			zap.Uint32("memory_size", r.mem.Size()))
		return 0, fmt.Errorf("read offset=%d length=%d: %w", r.off, n, ErrOutOfBounds)
	}
	copy(p, data)
	r.off += n
	return int(n), nil
}

// Writer writes into a fixed region of linear memory.
type Writer struct {
	mem rwbin.Memory
	off uint32
	end uint32
}

// NewWriter creates a Writer over [offset, offset+limit).
func NewWriter(mem rwbin.Memory, offset, limit uint32) *Writer {
	return &Writer{mem: mem, off: offset, end: offset + limit}
}

// Offset returns the next memory offset to be written.
func (w *Writer) Offset() uint32 {
	return w.off
}

// Write copies p into the region. A write that does not fit is rejected whole.
func (w *Writer) Write(p []byte) (int, error) {
	if uint64(len(p)) > uint64(w.end-w.off) {
		return 0, fmt.Errorf("write offset=%d length=%d past region end %d: %w", w.off, len(p), w.end, ErrOutOfBounds)
	}
	if !w.mem.Write(w.off, p) {
		Logger().Debug("guest write out of bounds",
			zap.Uint32("offset", w.off),
			zap.Int("length", len(p)),
			zap.Uint32("memory_size", w.mem.Size()))
		return 0, fmt.Errorf("write offset=%d length=%d: %w", w.off, len(p), ErrOutOfBounds)
	}
	w.off += uint32(len(p))
	return len(p), nil
}

// checkRegion validates that [offset, offset+length) lies within mem.
func checkRegion(phase errors.Phase, mem rwbin.Memory, offset, length uint32) error {
	if mem == nil {
		return errors.InvalidArgument(phase, 0, "nil memory")
	}
	end := uint64(offset) + uint64(length)
	if size := mem.Size(); end > uint64(size) {
		return errors.New(phase, errors.KindInvalidArgument).
			Cause(ErrOutOfBounds).
			Detail("region [%d, %d) exceeds memory size %d", offset, end, size).
			Build()
	}
	return nil
}

// Decode returns a codec.Reader over a region of mem with the region length as its ceiling.
func Decode(mem rwbin.Memory, offset, length uint32, order endian.Order) (*codec.Reader, error) {
	if err := checkRegion(errors.PhaseDecode, mem, offset, length); err != nil {
		return nil, err
	}
	return codec.NewReaderLimit(NewReader(mem, offset, length), order, int(length)), nil
}

// Encode returns a codec.Writer over a region of mem with the region length as its ceiling.
func Encode(mem rwbin.Memory, offset, limit uint32, order endian.Order) (*codec.Writer, error) {
	if err := checkRegion(errors.PhaseEncode, mem, offset, limit); err != nil {
		return nil, err
	}
	return codec.NewWriterLimit(NewWriter(mem, offset, limit), order, int(limit)), nil
}

// Load decodes one value from a region of mem.
func Load[T any](mem rwbin.Memory, offset, length uint32, order endian.Order, dec codec.DecodeFunc[T]) (T, error) {
	var zero T
	r, err := Decode(mem, offset, length, order)
	if err != nil {
		return zero, err
	}
	return dec(r)
}

// Store encodes v into a region of mem and returns the number of bytes written.
func Store[T any](mem rwbin.Memory, offset, limit uint32, order endian.Order, v T, enc codec.EncodeFunc[T]) (uint32, error) {
	w, err := Encode(mem, offset, limit, order)
	if err != nil {
		return 0, err
	}
	if err := enc(w, v); err != nil {
		return uint32(w.Position()), err
	}
	return uint32(w.Position()), nil
}

// ModuleMemory returns the memory of an instantiated module.
func ModuleMemory(mod api.Module) (rwbin.Memory, error) {
	mem := mod.Memory()
	if mem == nil {
		return nil, fmt.Errorf("module %q has no memory", mod.Name())
	}
	return mem, nil
}

var _ rwbin.Memory = (api.Memory)(nil)
