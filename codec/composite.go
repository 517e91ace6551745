package codec

import (
	"strconv"

	"github.com/uznami/rwbin/errors"
)

// maxPrealloc caps the capacity reserved up front for a decoded sequence.
const maxPrealloc = 1 << 12

func elemPath(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

// ReadArray fills every slot of dst in order. ReadByteArray is the single
// transfer form for bytes.
func ReadArray[T any](r *Reader, dst []T, dec DecodeFunc[T]) error {
	for i := range dst {
		v, err := dec(r)
		if err != nil {
			return errors.WithPath(err, elemPath(i))
		}
		dst[i] = v
	}
	return nil
}

// WriteArray writes every element of src in order.
func WriteArray[T any](w *Writer, src []T, enc EncodeFunc[T]) error {
	for i, v := range src {
		if err := enc(w, v); err != nil {
			return errors.WithPath(err, elemPath(i))
		}
	}
	return nil
}

// ReadByteArray fills dst in one transfer. The bytes and the final position
// are the same as ReadArray with (*Reader).U8.
func ReadByteArray(r *Reader, dst []byte) error {
	return r.ReadFull(dst)
}

// WriteByteArray writes src in one transfer.
func WriteByteArray(w *Writer, src []byte) error {
	return w.WriteBytes(src)
}

// ReadSlice decodes n consecutive elements. The count is supplied by the
// caller and is not read from the stream.
func ReadSlice[T any](r *Reader, n int, dec DecodeFunc[T]) ([]T, error) {
	if n < 0 {
		return nil, errors.InvalidArgument(errors.PhaseDecode, r.pos, "negative element count")
	}
	out := make([]T, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		v, err := dec(r)
		if err != nil {
			return nil, errors.WithPath(err, elemPath(i))
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadSliceWith decodes n elements, passing arg to each.
func ReadSliceWith[T, A any](r *Reader, n int, arg A, dec DecodeWithFunc[T, A]) ([]T, error) {
	return ReadSlice(r, n, Bind(dec, arg))
}

// WriteSlice writes every element of src. No length is written.
func WriteSlice[T any](w *Writer, src []T, enc EncodeFunc[T]) error {
	return WriteArray(w, src, enc)
}

// WriteSliceWith writes every element of src, passing arg to each.
func WriteSliceWith[T, A any](w *Writer, src []T, arg A, enc EncodeWithFunc[T, A]) error {
	return WriteArray(w, src, BindEncode(enc, arg))
}

// DecodeSlice returns a DecodeFunc reading n elements with dec.
func DecodeSlice[T any](n int, dec DecodeFunc[T]) DecodeFunc[[]T] {
	return func(r *Reader) ([]T, error) {
		return ReadSlice(r, n, dec)
	}
}

// EncodeSlice returns an EncodeFunc writing every element with enc.
func EncodeSlice[T any](enc EncodeFunc[T]) EncodeFunc[[]T] {
	return func(w *Writer, src []T) error {
		return WriteSlice(w, src, enc)
	}
}

// ReadOptional decodes a T when present is true and consumes nothing otherwise.
// The presence flag itself is never read from the stream.
func ReadOptional[T any](r *Reader, present bool, dec DecodeFunc[T]) (*T, error) {
	if !present {
		return nil, nil
	}
	v, err := dec(r)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// WriteOptional writes *v when v is non-nil and nothing otherwise.
func WriteOptional[T any](w *Writer, v *T, enc EncodeFunc[T]) error {
	if v == nil {
		return nil
	}
	return enc(w, *v)
}

// Expect decodes a T and fails unless it equals want.
func Expect[T comparable](r *Reader, dec DecodeFunc[T], want T) error {
	start := r.pos
	got, err := dec(r)
	if err != nil {
		return err
	}
	if got != want {
		return errors.UnexpectedValue(start, want, got)
	}
	return nil
}

// ExpectAll decodes len(wants) values and checks each against its expectation.
func ExpectAll[T comparable](r *Reader, dec DecodeFunc[T], wants []T) error {
	for i, want := range wants {
		if err := Expect(r, dec, want); err != nil {
			return errors.WithPath(err, elemPath(i))
		}
	}
	return nil
}

// Bytes returns a DecodeFunc reading n raw bytes.
func Bytes(n int) DecodeFunc[[]byte] {
	return func(r *Reader) ([]byte, error) {
		return r.Bytes(n)
	}
}
