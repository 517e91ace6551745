package codec

import (
	"context"

	"go.uber.org/zap"

	"github.com/uznami/rwbin"
	"github.com/uznami/rwbin/codec/internal/abi"
	"github.com/uznami/rwbin/endian"
	"github.com/uznami/rwbin/errors"
)

// zeros backs padding and reserved writes.
var zeros [abi.ScratchSize]byte

// Writer encodes values onto a byte sink.
//
// Like Reader it counts every byte and, when a ceiling is set, refuses any
// write that would cross it before the sink sees a byte.
type Writer struct {
	dst      rwbin.Sink
	ctx      context.Context
	order    endian.Order
	pos      int
	limit    int
	hasLimit bool
	tmp      [10]byte
}

// NewWriter creates a Writer with no ceiling.
func NewWriter(dst rwbin.Sink, order endian.Order) *Writer {
	return &Writer{dst: dst, order: order}
}

// NewWriterLimit creates a Writer that may produce at most limit bytes.
func NewWriterLimit(dst rwbin.Sink, order endian.Order, limit int) *Writer {
	return &Writer{dst: dst, order: order, limit: limit, hasLimit: true}
}

// WithContext binds the Writer to ctx.
func (w *Writer) WithContext(ctx context.Context) *Writer {
	w.ctx = ctx
	return w
}

// Position returns the number of bytes written so far.
func (w *Writer) Position() int {
	return w.pos
}

// Remaining returns the bytes left before the ceiling. ok is false when the
// Writer has no ceiling.
func (w *Writer) Remaining() (n int, ok bool) {
	if !w.hasLimit {
		return 0, false
	}
	return w.limit - w.pos, true
}

// Order returns the byte order used for multi-byte values.
func (w *Writer) Order() endian.Order {
	return w.order
}

func (w *Writer) check(n int) error {
	if w.ctx != nil {
		if err := w.ctx.Err(); err != nil {
			return errors.IO(errors.PhaseEncode, w.pos, err)
		}
	}
	if !w.hasLimit {
		return nil
	}
	end, ok := abi.SafeAdd(w.pos, n)
	if !ok || end > w.limit {
		debugEvent("write refused by budget",
			zap.Int("position", w.pos),
			zap.Int("requested", n),
			zap.Int("limit", w.limit))
		return errors.NotEnoughBytes(errors.PhaseEncode, w.pos, n, w.limit-w.pos)
	}
	return nil
}

// WriteBytes writes p verbatim.
func (w *Writer) WriteBytes(p []byte) error {
	if err := w.check(len(p)); err != nil {
		return err
	}
	n, err := w.dst.Write(p)
	w.pos += n
	if err != nil {
		return errors.IO(errors.PhaseEncode, w.pos, err)
	}
	return nil
}

// Reserved writes n copies of fill.
func (w *Writer) Reserved(n int, fill byte) error {
	if n < 0 {
		return errors.InvalidArgument(errors.PhaseEncode, w.pos, "negative reserved size")
	}
	if err := w.check(n); err != nil {
		return err
	}
	var chunk []byte
	if fill == 0 {
		chunk = zeros[:min(n, len(zeros))]
	} else {
		chunk = make([]byte, min(n, abi.ScratchSize))
		for i := range chunk {
			chunk[i] = fill
		}
	}
	for n > 0 {
		part := chunk[:min(n, len(chunk))]
		if err := w.WriteBytes(part); err != nil {
			return err
		}
		n -= len(part)
	}
	return nil
}

// FillAligned writes zero bytes until the position is a multiple of align.
func (w *Writer) FillAligned(align int) error {
	if align <= 0 {
		return errors.InvalidArgument(errors.PhaseEncode, w.pos, "alignment must be positive")
	}
	return w.Reserved(abi.Pad(w.pos, align), 0)
}

// Flush flushes the sink when it buffers output.
func (w *Writer) Flush() error {
	f, ok := w.dst.(rwbin.Flusher)
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return errors.Wrap(errors.PhaseEncode, errors.KindIO, err, "flush")
	}
	return nil
}

func (w *Writer) swapped() *Writer {
	return &Writer{
		dst:      w.dst,
		ctx:      w.ctx,
		order:    w.order.Opposite(),
		pos:      w.pos,
		limit:    w.limit,
		hasLimit: w.hasLimit,
	}
}
