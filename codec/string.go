package codec

import (
	"bytes"
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"

	"github.com/uznami/rwbin/codec/internal/abi"
	"github.com/uznami/rwbin/endian"
	"github.com/uznami/rwbin/errors"
)

// StringMode selects how a string's extent is determined.
type StringMode struct {
	units      int
	terminated bool
}

// Fixed is a slot of exactly units code units. Shorter strings are zero padded.
func Fixed(units int) StringMode {
	return StringMode{units: units}
}

// NullTerminated strings end at the first zero code unit.
var NullTerminated = StringMode{terminated: true}

// Units returns the slot size of a fixed mode.
func (m StringMode) Units() int { return m.units }

// IsTerminated reports whether m is NullTerminated.
func (m StringMode) IsTerminated() bool { return m.terminated }

func (m StringMode) String() string {
	if m.terminated {
		return "null-terminated"
	}
	return fmt.Sprintf("fixed(%d)", m.units)
}

// lossyUTF8 replaces ill-formed sequences with U+FFFD.
func lossyUTF8(b []byte) (string, error) {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// lossyUTF16 decodes units, replacing unpaired surrogates with U+FFFD.
func lossyUTF16(units []uint16) string {
	return string(utf16.Decode(units))
}

func (r *Reader) slotSize(units, unitSize int) (int, error) {
	n, ok := abi.SafeMul(units, unitSize)
	if !ok {
		return 0, errors.InvalidArgument(errors.PhaseDecode, r.pos, "invalid fixed string size")
	}
	return n, nil
}

// UTF8String reads a UTF-8 string. Decoding is lossy and never fails on
// malformed input.
func (r *Reader) UTF8String(mode StringMode) (string, error) {
	var raw []byte
	if mode.terminated {
		units, err := ReadWhile(r, 1, func(b []byte) (byte, bool) {
			return b[0], b[0] != 0
		})
		if err != nil {
			return "", err
		}
		raw = units
	} else {
		n, err := r.slotSize(mode.units, 1)
		if err != nil {
			return "", err
		}
		if raw, err = r.Bytes(n); err != nil {
			return "", err
		}
		if i := bytes.IndexByte(raw, 0); i >= 0 {
			raw = raw[:i]
		}
	}

	s, err := lossyUTF8(raw)
	if err != nil {
		return "", errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Position(r.pos).
			Cause(err).
			Detail("utf-8 decode").
			Build()
	}
	return s, nil
}

// UTF16String reads a UTF-16 string in the cursor's byte order. Unpaired
// surrogates decode to U+FFFD.
func (r *Reader) UTF16String(mode StringMode) (string, error) {
	if mode.terminated {
		units, err := ReadWhile(r, 2, func(b []byte) (uint16, bool) {
			u := r.order.Uint16(b)
			return u, u != 0
		})
		if err != nil {
			return "", err
		}
		return lossyUTF16(units), nil
	}

	n, err := r.slotSize(mode.units, 2)
	if err != nil {
		return "", err
	}
	var units []uint16
	err = r.Transfer(n, func(b []byte) error {
		units = endian.Uint16s(r.order, b)
		return nil
	})
	if err != nil {
		return "", err
	}
	for i, u := range units {
		if u == 0 {
			units = units[:i]
			break
		}
	}
	return lossyUTF16(units), nil
}

func (w *Writer) tooLong(size, units int) error {
	return errors.New(errors.PhaseEncode, errors.KindInvalidArgument).
		Position(w.pos).
		Value(size).
		Detail("string of %d units is too long for fixed size %d", size, units).
		Build()
}

// UTF8String writes s as UTF-8. In fixed mode a string longer than the slot
// is rejected before anything is written.
func (w *Writer) UTF8String(s string, mode StringMode) error {
	if mode.terminated {
		if err := w.WriteBytes([]byte(s)); err != nil {
			return err
		}
		return w.U8(0)
	}
	if len(s) > mode.units {
		return w.tooLong(len(s), mode.units)
	}
	if err := w.WriteBytes([]byte(s)); err != nil {
		return err
	}
	return w.Reserved(mode.units-len(s), 0)
}

// UTF16String writes s as UTF-16 in the cursor's byte order.
func (w *Writer) UTF16String(s string, mode StringMode) error {
	units := utf16.Encode([]rune(s))
	if !mode.terminated && len(units) > mode.units {
		return w.tooLong(len(units), mode.units)
	}
	if err := w.WriteBytes(endian.PutUint16s(w.order, units)); err != nil {
		return err
	}
	if mode.terminated {
		return w.U16(0)
	}
	return w.Reserved(2*(mode.units-len(units)), 0)
}

// DecodeUTF8 returns a DecodeFunc for UTF8String.
func DecodeUTF8(mode StringMode) DecodeFunc[string] {
	return func(r *Reader) (string, error) { return r.UTF8String(mode) }
}

// DecodeUTF16 returns a DecodeFunc for UTF16String.
func DecodeUTF16(mode StringMode) DecodeFunc[string] {
	return func(r *Reader) (string, error) { return r.UTF16String(mode) }
}

// EncodeUTF8 returns an EncodeFunc for UTF8String.
func EncodeUTF8(mode StringMode) EncodeFunc[string] {
	return func(w *Writer, s string) error { return w.UTF8String(s, mode) }
}

// EncodeUTF16 returns an EncodeFunc for UTF16String.
func EncodeUTF16(mode StringMode) EncodeFunc[string] {
	return func(w *Writer, s string) error { return w.UTF16String(s, mode) }
}
