package codec

import (
	"go.uber.org/zap"

	"github.com/uznami/rwbin/endian"
)

// ReadSwapped decodes one value with the opposite byte order. The view shares
// the source and the ceiling, and its final position is copied back to r even
// when dec fails.
func ReadSwapped[T any](r *Reader, dec DecodeFunc[T]) (T, error) {
	child := r.swapped()
	defer func() { r.pos = child.pos }()

	v, err := dec(child)
	if err != nil {
		debugEvent("swapped read failed",
			zap.String("order", endian.Name(child.order)),
			zap.Int("position", child.pos),
			zap.Error(err))
	}
	return v, err
}

// ReadSwappedWith is ReadSwapped for a decoder taking an argument.
func ReadSwappedWith[T, A any](r *Reader, arg A, dec DecodeWithFunc[T, A]) (T, error) {
	return ReadSwapped(r, Bind(dec, arg))
}

// WriteSwapped encodes v with the opposite byte order.
func WriteSwapped[T any](w *Writer, v T, enc EncodeFunc[T]) error {
	child := w.swapped()
	defer func() { w.pos = child.pos }()

	err := enc(child, v)
	if err != nil {
		debugEvent("swapped write failed",
			zap.String("order", endian.Name(child.order)),
			zap.Int("position", child.pos),
			zap.Error(err))
	}
	return err
}

// WriteSwappedWith is WriteSwapped for an encoder taking an argument.
func WriteSwappedWith[T, A any](w *Writer, v T, arg A, enc EncodeWithFunc[T, A]) error {
	return WriteSwapped(w, v, BindEncode(enc, arg))
}
