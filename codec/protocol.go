package codec

// Decoder is implemented by types that read themselves from a Reader.
type Decoder interface {
	DecodeBinary(r *Reader) error
}

// Encoder is implemented by types that write themselves to a Writer.
type Encoder interface {
	EncodeBinary(w *Writer) error
}

// DecoderWith is a Decoder that needs a caller-supplied argument, such as
// a length or a version read earlier in the stream.
type DecoderWith[A any] interface {
	DecodeBinaryWith(r *Reader, arg A) error
}

// EncoderWith is the encoding counterpart of DecoderWith.
type EncoderWith[A any] interface {
	EncodeBinaryWith(w *Writer, arg A) error
}

// DecodeFunc reads one T. Method expressions such as (*Reader).U16 and
// instantiations such as Read[Header] are DecodeFuncs.
type DecodeFunc[T any] func(*Reader) (T, error)

// EncodeFunc writes one T. (*Writer).U16 and Write[Header] are EncodeFuncs.
type EncodeFunc[T any] func(*Writer, T) error

// DecodeWithFunc reads one T given an argument.
type DecodeWithFunc[T, A any] func(*Reader, A) (T, error)

// EncodeWithFunc writes one T given an argument.
type EncodeWithFunc[T, A any] func(*Writer, T, A) error

// Read decodes a T whose pointer implements Decoder.
func Read[T any, P interface {
	*T
	Decoder
}](r *Reader) (T, error) {
	var v T
	err := P(&v).DecodeBinary(r)
	return v, err
}

// ReadWith decodes a T whose pointer implements DecoderWith[A].
func ReadWith[T, A any, P interface {
	*T
	DecoderWith[A]
}](r *Reader, arg A) (T, error) {
	var v T
	err := P(&v).DecodeBinaryWith(r, arg)
	return v, err
}

// Write encodes v.
func Write[T Encoder](w *Writer, v T) error {
	return v.EncodeBinary(w)
}

// WriteWith encodes v with arg.
func WriteWith[T EncoderWith[A], A any](w *Writer, v T, arg A) error {
	return v.EncodeBinaryWith(w, arg)
}

// Bind fixes the argument of a DecodeWithFunc.
func Bind[T, A any](dec DecodeWithFunc[T, A], arg A) DecodeFunc[T] {
	return func(r *Reader) (T, error) {
		return dec(r, arg)
	}
}

// BindEncode fixes the argument of an EncodeWithFunc.
func BindEncode[T, A any](enc EncodeWithFunc[T, A], arg A) EncodeFunc[T] {
	return func(w *Writer, v T) error {
		return enc(w, v, arg)
	}
}
