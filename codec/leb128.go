package codec

import (
	stderrors "errors"

	"github.com/uznami/rwbin/errors"
)

// ErrOverflow is the cause of a LEB128 value exceeding its bit width.
var ErrOverflow = stderrors.New("leb128: overflow")

func (r *Reader) overflow(start, bits int) error {
	return errors.New(errors.PhaseDecode, errors.KindInvalidData).
		Position(start).
		Cause(ErrOverflow).
		Detail("leb128 value exceeds %d bits", bits).
		Build()
}

// uvarint reads at most maxBytes bytes. The final byte must not set any bit
// in unused, which covers the bits past the value's width.
func (r *Reader) uvarint(maxBytes, bits int, unused byte) (uint64, error) {
	start := r.pos
	var result uint64
	var shift uint
	for i := 0; ; i++ {
		b, err := r.U8()
		if err != nil {
			return 0, err
		}
		if i == maxBytes-1 && (b&0x80 != 0 || b&unused != 0) {
			return 0, r.overflow(start, bits)
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
}

// varint reads at most maxBytes bytes. In the final byte the bits under
// signBits hold the sign bit and everything past the width, so they must be
// all clear or all set.
func (r *Reader) varint(maxBytes, bits int, signBits byte) (int64, error) {
	start := r.pos
	var result int64
	var shift uint
	var b byte
	for i := 0; ; i++ {
		var err error
		if b, err = r.U8(); err != nil {
			return 0, err
		}
		if i == maxBytes-1 {
			if s := b & signBits; b&0x80 != 0 || (s != 0 && s != signBits) {
				return 0, r.overflow(start, bits)
			}
		}
		result |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			break
		}
	}
	// Sign extend
	if shift < 64 && b&0x40 != 0 {
		result |= ^int64(0) << shift
	}
	return result, nil
}

// Uvarint32 reads an unsigned LEB128 value of at most 5 bytes.
func (r *Reader) Uvarint32() (uint32, error) {
	v, err := r.uvarint(5, 32, 0x70)
	return uint32(v), err
}

// Uvarint64 reads an unsigned LEB128 value of at most 10 bytes.
func (r *Reader) Uvarint64() (uint64, error) {
	return r.uvarint(10, 64, 0x7e)
}

// Varint32 reads a signed LEB128 value of at most 5 bytes.
func (r *Reader) Varint32() (int32, error) {
	v, err := r.varint(5, 32, 0x78)
	return int32(v), err
}

// Varint64 reads a signed LEB128 value of at most 10 bytes.
func (r *Reader) Varint64() (int64, error) {
	return r.varint(10, 64, 0x7f)
}

// Uvarint32 writes v as unsigned LEB128.
func (w *Writer) Uvarint32(v uint32) error {
	return w.Uvarint64(uint64(v))
}

// Uvarint64 writes v as unsigned LEB128.
func (w *Writer) Uvarint64(v uint64) error {
	buf := w.tmp[:]
	n := 0
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		buf[n] = b
		n++
		if v == 0 {
			break
		}
	}
	return w.WriteBytes(buf[:n])
}

// Varint32 writes v as signed LEB128.
func (w *Writer) Varint32(v int32) error {
	return w.Varint64(int64(v))
}

// Varint64 writes v as signed LEB128.
func (w *Writer) Varint64(v int64) error {
	buf := w.tmp[:]
	n := 0
	more := true
	for more {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			more = false
		} else {
			b |= 0x80
		}
		buf[n] = b
		n++
	}
	return w.WriteBytes(buf[:n])
}
