package codec

import (
	"bytes"
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/uznami/rwbin"
	"github.com/uznami/rwbin/codec/internal/abi"
	"github.com/uznami/rwbin/endian"
	"github.com/uznami/rwbin/errors"
)

// Reader decodes values from a byte source.
//
// Every byte passing through the Reader is counted. When a ceiling is set the
// Reader refuses, before reading anything, any transfer that would move the
// position past it.
type Reader struct {
	src      rwbin.Source
	ctx      context.Context
	order    endian.Order
	scratch  *[abi.ScratchSize]byte
	pos      int
	limit    int
	hasLimit bool
}

// NewReader creates a Reader with no ceiling.
func NewReader(src rwbin.Source, order endian.Order) *Reader {
	return &Reader{
		src:     src,
		order:   order,
		scratch: new([abi.ScratchSize]byte),
	}
}

// NewReaderLimit creates a Reader that may consume at most limit bytes.
func NewReaderLimit(src rwbin.Source, order endian.Order, limit int) *Reader {
	r := NewReader(src, order)
	r.limit = limit
	r.hasLimit = true
	return r
}

// FromBytes creates a Reader over data with the ceiling set to len(data).
func FromBytes(data []byte, order endian.Order) *Reader {
	return NewReaderLimit(bytes.NewReader(data), order, len(data))
}

// WithContext binds the Reader to ctx. Cancellation is observed before each
// transfer and surfaces as a KindIO error wrapping ctx.Err().
func (r *Reader) WithContext(ctx context.Context) *Reader {
	r.ctx = ctx
	return r
}

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the bytes left before the ceiling. ok is false when the
// Reader has no ceiling.
func (r *Reader) Remaining() (n int, ok bool) {
	if !r.hasLimit {
		return 0, false
	}
	return r.limit - r.pos, true
}

// Order returns the byte order used for multi-byte values.
func (r *Reader) Order() endian.Order {
	return r.order
}

// check enforces the context and the ceiling for a transfer of n bytes.
func (r *Reader) check(n int) error {
	if n < 0 {
		return errors.InvalidArgument(errors.PhaseDecode, r.pos, "negative transfer size")
	}
	if r.ctx != nil {
		if err := r.ctx.Err(); err != nil {
			return errors.IO(errors.PhaseDecode, r.pos, err)
		}
	}
	if !r.hasLimit {
		return nil
	}
	end, ok := abi.SafeAdd(r.pos, n)
	if !ok || end > r.limit {
		debugEvent("read refused by budget",
			zap.Int("position", r.pos),
			zap.Int("requested", n),
			zap.Int("limit", r.limit))
		return errors.NotEnoughBytes(errors.PhaseDecode, r.pos, n, r.limit-r.pos)
	}
	return nil
}

// fill reads exactly len(buf) bytes into buf after the budget check.
func (r *Reader) fill(buf []byte) error {
	if err := r.check(len(buf)); err != nil {
		return err
	}
	n, err := io.ReadFull(r.src, buf)
	r.pos += n
	if err != nil {
		if err == io.EOF && len(buf) > 0 {
			err = io.ErrUnexpectedEOF
		}
		return errors.IO(errors.PhaseDecode, r.pos, err)
	}
	return nil
}

// next reads n bytes into the scratch buffer. n must not exceed abi.ScratchSize.
func (r *Reader) next(n int) ([]byte, error) {
	buf := r.scratch[:n]
	if err := r.fill(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Transfer reads exactly n bytes and passes them to parse.
// The slice is only valid for the duration of the call.
func (r *Reader) Transfer(n int, parse func([]byte) error) error {
	if n >= 0 && n <= abi.ScratchSize {
		buf, err := r.next(n)
		if err != nil {
			return err
		}
		return parse(buf)
	}
	if err := r.check(n); err != nil {
		return err
	}
	pooled := getTransferBuf(n)
	defer putTransferBuf(pooled)
	if err := r.fill(*pooled); err != nil {
		return err
	}
	return parse(*pooled)
}

// ReadFull reads exactly len(p) bytes into p.
func (r *Reader) ReadFull(p []byte) error {
	return r.fill(p)
}

// Bytes reads n bytes into a new slice.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.check(n); err != nil {
		return nil, err
	}
	p := make([]byte, n)
	if err := r.fill(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Skip consumes n bytes without interpreting them.
func (r *Reader) Skip(n int) error {
	if err := r.check(n); err != nil {
		return err
	}
	for n > 0 {
		chunk := min(n, abi.ScratchSize)
		if _, err := r.next(chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// SkipAligned consumes bytes until the position is a multiple of align.
func (r *Reader) SkipAligned(align int) error {
	if align <= 0 {
		return errors.InvalidArgument(errors.PhaseDecode, r.pos, "alignment must be positive")
	}
	return r.Skip(abi.Pad(r.pos, align))
}

// Reserved consumes n bytes that must all equal fill.
func (r *Reader) Reserved(n int, fill byte) error {
	if err := r.check(n); err != nil {
		return err
	}
	for n > 0 {
		chunk := min(n, abi.ScratchSize)
		start := r.pos
		buf, err := r.next(chunk)
		if err != nil {
			return err
		}
		for i, b := range buf {
			if b != fill {
				return errors.ReservedByte(start+i, fill, b)
			}
		}
		n -= chunk
	}
	return nil
}

// ReadWhile reads width-byte chunks and collects what probe returns until
// probe reports false. The stopping chunk is consumed but not collected.
func ReadWhile[T any](r *Reader, width int, probe func([]byte) (T, bool)) ([]T, error) {
	if width <= 0 {
		return nil, errors.InvalidArgument(errors.PhaseDecode, r.pos, "chunk width must be positive")
	}
	var out []T
	var more bool
	parse := func(b []byte) error {
		var v T
		v, more = probe(b)
		if more {
			out = append(out, v)
		}
		return nil
	}
	for {
		if err := r.Transfer(width, parse); err != nil {
			return out, err
		}
		if !more {
			return out, nil
		}
	}
}

// swapped returns a view with the opposite byte order sharing the source,
// the position and the ceiling.
func (r *Reader) swapped() *Reader {
	return &Reader{
		src:      r.src,
		ctx:      r.ctx,
		order:    r.order.Opposite(),
		scratch:  r.scratch,
		pos:      r.pos,
		limit:    r.limit,
		hasLimit: r.hasLimit,
	}
}
