// Package endian provides the byte orders used by the rwbin cursors.
//
// An Order is a stateless conversion table between fixed-width numbers and
// their byte representation. Two orders exist, Little and Big; every Order
// knows its Opposite so a cursor can open a view with the other order for a
// single field.
package endian

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// Order converts between fixed-width unsigned integers and bytes.
type Order interface {
	binary.ByteOrder
	// Opposite returns the other byte order.
	Opposite() Order
	// IsBig reports whether the most significant byte comes first.
	IsBig() bool
}

type order struct {
	binary.ByteOrder
	big bool
}

func (o order) Opposite() Order {
	if o.big {
		return Little
	}
	return Big
}

func (o order) IsBig() bool { return o.big }

var (
	// Little is least-significant-byte-first.
	Little Order = order{ByteOrder: binary.LittleEndian}
	// Big is most-significant-byte-first.
	Big Order = order{ByteOrder: binary.BigEndian, big: true}
)

// Native returns the byte order of the host.
func Native() Order {
	if binary.NativeEndian.Uint16([]byte{0x00, 0x01}) == 0x0001 {
		return Big
	}
	return Little
}

// Parse returns the order named by s: "le"/"little" or "be"/"big".
func Parse(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "le", "little", "little-endian":
		return Little, nil
	case "be", "big", "big-endian":
		return Big, nil
	case "native":
		return Native(), nil
	default:
		return nil, fmt.Errorf("unknown byte order %q", s)
	}
}

// Name returns the short name of o, "le" or "be".
func Name(o Order) string {
	if o.IsBig() {
		return "be"
	}
	return "le"
}

func Int16(o Order, b []byte) int16 { return int16(o.Uint16(b)) }
func Int32(o Order, b []byte) int32 { return int32(o.Uint32(b)) }
func Int64(o Order, b []byte) int64 { return int64(o.Uint64(b)) }

func PutInt16(o Order, b []byte, v int16) { o.PutUint16(b, uint16(v)) }
func PutInt32(o Order, b []byte, v int32) { o.PutUint32(b, uint32(v)) }
func PutInt64(o Order, b []byte, v int64) { o.PutUint64(b, uint64(v)) }

// Float32 decodes an IEEE-754 single from the first 4 bytes of b.
func Float32(o Order, b []byte) float32 { return math.Float32frombits(o.Uint32(b)) }

// Float64 decodes an IEEE-754 double from the first 8 bytes of b.
func Float64(o Order, b []byte) float64 { return math.Float64frombits(o.Uint64(b)) }

func PutFloat32(o Order, b []byte, v float32) { o.PutUint32(b, math.Float32bits(v)) }
func PutFloat64(o Order, b []byte, v float64) { o.PutUint64(b, math.Float64bits(v)) }

// Uint16s converts b into 16-bit code units. len(b) must be even.
func Uint16s(o Order, b []byte) []uint16 {
	if len(b)%2 != 0 {
		panic(fmt.Sprintf("endian: odd length %d for 16-bit units", len(b)))
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = o.Uint16(b[2*i:])
	}
	return units
}

// PutUint16s converts 16-bit code units into bytes.
func PutUint16s(o Order, units []uint16) []byte {
	b := make([]byte, 2*len(units))
	for i, u := range units {
		o.PutUint16(b[2*i:], u)
	}
	return b
}
