package codec

import (
	"fmt"

	"github.com/uznami/rwbin/codec/internal/abi"
	"github.com/uznami/rwbin/endian"
	"github.com/uznami/rwbin/errors"
)

// U8 reads one byte.
func (r *Reader) U8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// I8 reads one byte as a signed value.
func (r *Reader) I8() (int8, error) {
	v, err := r.U8()
	return int8(v), err
}

// U16 reads a 16-bit value in the cursor's byte order.
func (r *Reader) U16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

// I16 reads a signed 16-bit value.
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

// U32 reads a 32-bit value in the cursor's byte order.
func (r *Reader) U32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

// I32 reads a signed 32-bit value.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// U64 reads a 64-bit value in the cursor's byte order.
func (r *Reader) U64() (uint64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(b), nil
}

// I64 reads a signed 64-bit value.
func (r *Reader) I64() (int64, error) {
	v, err := r.U64()
	return int64(v), err
}

// F32 reads an IEEE 754 single-precision value.
func (r *Reader) F32() (float32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return endian.Float32(r.order, b), nil
}

// F64 reads an IEEE 754 double-precision value.
func (r *Reader) F64() (float64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return endian.Float64(r.order, b), nil
}

// Bool reads one byte that must be 0 or 1.
func (r *Reader) Bool() (bool, error) {
	start := r.pos
	v, err := r.U8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, errors.InvalidData(errors.PhaseDecode, start, fmt.Sprintf("invalid bool byte 0x%02X", v))
}

// Rune reads a 32-bit Unicode scalar value.
func (r *Reader) Rune() (rune, error) {
	start := r.pos
	v, err := r.U32()
	if err != nil {
		return 0, err
	}
	if !abi.ValidScalar(v) {
		return 0, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Position(start).
			Value(v).
			Detail("invalid char 0x%X", v).
			Build()
	}
	return rune(v), nil
}

// U8 writes one byte.
func (w *Writer) U8(v uint8) error {
	w.tmp[0] = v
	return w.WriteBytes(w.tmp[:1])
}

func (w *Writer) I8(v int8) error { return w.U8(uint8(v)) }

// U16 writes v in the cursor's byte order.
func (w *Writer) U16(v uint16) error {
	w.order.PutUint16(w.tmp[:2], v)
	return w.WriteBytes(w.tmp[:2])
}

func (w *Writer) I16(v int16) error { return w.U16(uint16(v)) }

// U32 writes v in the cursor's byte order.
func (w *Writer) U32(v uint32) error {
	w.order.PutUint32(w.tmp[:4], v)
	return w.WriteBytes(w.tmp[:4])
}

func (w *Writer) I32(v int32) error { return w.U32(uint32(v)) }

// U64 writes v in the cursor's byte order.
func (w *Writer) U64(v uint64) error {
	w.order.PutUint64(w.tmp[:8], v)
	return w.WriteBytes(w.tmp[:8])
}

func (w *Writer) I64(v int64) error { return w.U64(uint64(v)) }

// F32 writes v as an IEEE 754 single-precision value.
func (w *Writer) F32(v float32) error {
	endian.PutFloat32(w.order, w.tmp[:4], v)
	return w.WriteBytes(w.tmp[:4])
}

// F64 writes v as an IEEE 754 double-precision value.
func (w *Writer) F64(v float64) error {
	endian.PutFloat64(w.order, w.tmp[:8], v)
	return w.WriteBytes(w.tmp[:8])
}

// Bool writes 1 for true and 0 for false.
func (w *Writer) Bool(v bool) error {
	if v {
		return w.U8(1)
	}
	return w.U8(0)
}

// Rune writes r as a 32-bit scalar value. Surrogates and out-of-range values are rejected.
func (w *Writer) Rune(r rune) error {
	if r < 0 || !abi.ValidScalar(uint32(r)) {
		return errors.New(errors.PhaseEncode, errors.KindInvalidArgument).
			Position(w.pos).
			Value(r).
			Detail("invalid char 0x%X", uint32(r)).
			Build()
	}
	return w.U32(uint32(r))
}
