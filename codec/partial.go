package codec

import (
	"go.uber.org/zap"

	"github.com/uznami/rwbin/errors"
)

type ceiling struct {
	limit    int
	hasLimit bool
}

// narrow installs pos+n as the ceiling and returns the previous one.
// The new ceiling may not extend past the current one.
func (r *Reader) narrow(n int) (ceiling, error) {
	saved := ceiling{limit: r.limit, hasLimit: r.hasLimit}
	if n < 0 {
		return saved, errors.InvalidArgument(errors.PhaseDecode, r.pos, "negative region size")
	}
	if err := r.budget(n); err != nil {
		return saved, err
	}
	r.limit = r.pos + n
	r.hasLimit = true
	return saved, nil
}

func (r *Reader) restore(c ceiling) {
	r.limit = c.limit
	r.hasLimit = c.hasLimit
}

// budget checks the ceiling only.
func (r *Reader) budget(n int) error {
	if r.hasLimit && n > r.limit-r.pos {
		return errors.NotEnoughBytes(errors.PhaseDecode, r.pos, n, r.limit-r.pos)
	}
	return nil
}

// ReadPartial decodes one value with the ceiling narrowed to the next n bytes.
// The previous ceiling is restored on return whether or not dec succeeds.
// Bytes of the region that dec leaves unread are not skipped; use ReadBlock
// for that.
func ReadPartial[T any](r *Reader, n int, dec DecodeFunc[T]) (T, error) {
	var zero T
	saved, err := r.narrow(n)
	if err != nil {
		return zero, err
	}
	defer r.restore(saved)

	start := r.pos
	v, err := dec(r)
	if err != nil {
		debugEvent("partial read failed",
			zap.Int("start", start),
			zap.Int("size", n),
			zap.Int("position", r.pos),
			zap.Error(err))
		return zero, err
	}
	return v, nil
}

// ReadPartialWith is ReadPartial for a decoder taking an argument.
func ReadPartialWith[T, A any](r *Reader, n int, arg A, dec DecodeWithFunc[T, A]) (T, error) {
	return ReadPartial(r, n, Bind(dec, arg))
}

// ReadBlock is ReadPartial followed by skipping whatever dec left unread, so
// the position always ends n bytes after where it started.
func ReadBlock[T any](r *Reader, n int, dec DecodeFunc[T]) (T, error) {
	start := r.pos
	v, err := ReadPartial(r, n, dec)
	if err != nil {
		return v, err
	}
	if rest := start + n - r.pos; rest > 0 {
		if err := r.Skip(rest); err != nil {
			var zero T
			return zero, err
		}
	}
	return v, nil
}

func (w *Writer) narrow(n int) (ceiling, error) {
	saved := ceiling{limit: w.limit, hasLimit: w.hasLimit}
	if n < 0 {
		return saved, errors.InvalidArgument(errors.PhaseEncode, w.pos, "negative region size")
	}
	if w.hasLimit && n > w.limit-w.pos {
		return saved, errors.NotEnoughBytes(errors.PhaseEncode, w.pos, n, w.limit-w.pos)
	}
	w.limit = w.pos + n
	w.hasLimit = true
	return saved, nil
}

func (w *Writer) restore(c ceiling) {
	w.limit = c.limit
	w.hasLimit = c.hasLimit
}

// WritePartial encodes v with the ceiling narrowed to the next n bytes.
func WritePartial[T any](w *Writer, n int, v T, enc EncodeFunc[T]) error {
	saved, err := w.narrow(n)
	if err != nil {
		return err
	}
	defer w.restore(saved)

	start := w.pos
	if err := enc(w, v); err != nil {
		debugEvent("partial write failed",
			zap.Int("start", start),
			zap.Int("size", n),
			zap.Int("position", w.pos),
			zap.Error(err))
		return err
	}
	return nil
}

// WriteBlock is WritePartial followed by zero padding up to n bytes.
func WriteBlock[T any](w *Writer, n int, v T, enc EncodeFunc[T]) error {
	start := w.pos
	if err := WritePartial(w, n, v, enc); err != nil {
		return err
	}
	return w.Reserved(start+n-w.pos, 0)
}
