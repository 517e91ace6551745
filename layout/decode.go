package layout

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/uznami/rwbin/codec"
	"github.com/uznami/rwbin/errors"
)

// Value is one decoded field.
type Value struct {
	Name     string
	Text     string
	Children []Value
	Offset   int
	Size     int
}

// Decode reads every field of the layout from r in order.
// Offsets are relative to the reader's position count.
func (l *Layout) Decode(r *codec.Reader) ([]Value, error) {
	values, err := decodeFields(r, l.Fields)
	if err != nil {
		Logger().Debug("layout decode failed",
			zap.Int("position", r.Position()),
			zap.Int("decoded", len(values)),
			zap.Error(err))
	}
	return values, err
}

func decodeFields(r *codec.Reader, fields []Field) ([]Value, error) {
	values := make([]Value, 0, len(fields))
	for i, f := range fields {
		v, err := decodeField(r, f)
		if err != nil {
			name := f.Name
			if name == "" {
				name = "#" + strconv.Itoa(i)
			}
			return values, errors.WithPath(err, name)
		}
		values = append(values, v)
	}
	return values, nil
}

func decodeField(r *codec.Reader, f Field) (Value, error) {
	dec := func(r *codec.Reader) (Value, error) {
		return decodeType(r, f.Type)
	}
	var v Value
	var err error
	if f.Swapped {
		v, err = codec.ReadSwapped(r, dec)
	} else {
		v, err = dec(r)
	}
	v.Name = f.Name
	return v, err
}

func decodeType(r *codec.Reader, t *Type) (Value, error) {
	v := Value{Offset: r.Position()}
	text, children, err := decodeBody(r, t)
	v.Text = text
	v.Children = children
	v.Size = r.Position() - v.Offset
	return v, err
}

func decodeBody(r *codec.Reader, t *Type) (string, []Value, error) {
	switch t.Kind {
	case KindU8:
		return format(r.U8())
	case KindI8:
		return format(r.I8())
	case KindU16:
		return format(r.U16())
	case KindI16:
		return format(r.I16())
	case KindU32:
		return format(r.U32())
	case KindI32:
		return format(r.I32())
	case KindU64:
		return format(r.U64())
	case KindI64:
		return format(r.I64())
	case KindF32:
		f, err := r.F32()
		return strconv.FormatFloat(float64(f), 'g', -1, 32), nil, err
	case KindF64:
		f, err := r.F64()
		return strconv.FormatFloat(f, 'g', -1, 64), nil, err
	case KindBool:
		return format(r.Bool())
	case KindChar:
		c, err := r.Rune()
		return strconv.QuoteRune(c), nil, err
	case KindULEB:
		return format(r.Uvarint64())
	case KindSLEB:
		return format(r.Varint64())
	case KindUTF8Z:
		return quote(r.UTF8String(codec.NullTerminated))
	case KindUTF16Z:
		return quote(r.UTF16String(codec.NullTerminated))
	case KindUTF8:
		return quote(r.UTF8String(codec.Fixed(t.N)))
	case KindUTF16:
		return quote(r.UTF16String(codec.Fixed(t.N)))
	case KindSkip:
		return "", nil, r.Skip(t.N)
	case KindAlign:
		return "", nil, r.SkipAligned(t.N)
	case KindZero:
		return "", nil, r.Reserved(t.N, 0)
	case KindArray:
		return decodeArray(r, t)
	case KindBlock:
		children, err := codec.ReadBlock(r, t.N, func(r *codec.Reader) ([]Value, error) {
			return decodeFields(r, t.Fields)
		})
		return "", children, err
	}
	return "", nil, errors.InvalidArgument(errors.PhaseDecode, r.Position(), fmt.Sprintf("unknown field kind %d", t.Kind))
}

func decodeArray(r *codec.Reader, t *Type) (string, []Value, error) {
	// Byte arrays are shown as hex in one transfer.
	if t.Elem.Kind == KindU8 {
		buf, err := r.Bytes(t.N)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("% x", buf), nil, nil
	}

	children, err := codec.ReadSlice(r, t.N, func(r *codec.Reader) (Value, error) {
		return decodeType(r, t.Elem)
	})
	for i := range children {
		children[i].Name = "[" + strconv.Itoa(i) + "]"
	}
	return "", children, err
}

func format[T any](v T, err error) (string, []Value, error) {
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprint(v), nil, nil
}

func quote(s string, err error) (string, []Value, error) {
	if err != nil {
		return "", nil, err
	}
	return strconv.Quote(s), nil, nil
}
