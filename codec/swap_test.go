package codec

import (
	"bytes"
	"testing"

	"github.com/uznami/rwbin/endian"
	"github.com/uznami/rwbin/errors"
)

func TestReadSwapped(t *testing.T) {
	r := FromBytes([]byte{0x01, 0x02, 0x03, 0x04}, endian.Little)

	a, err := ReadSwapped(r, (*Reader).U16)
	if err != nil || a != 0x0102 {
		t.Fatalf("swapped: got 0x%04x (%v), want 0x0102", a, err)
	}
	b, err := r.U16()
	if err != nil || b != 0x0403 {
		t.Fatalf("parent after swap: got 0x%04x (%v), want 0x0403", b, err)
	}
	if r.Order() != endian.Little {
		t.Error("parent order changed")
	}
	if _, err := r.U8(); !errors.IsKind(err, errors.KindNotEnoughBytes) {
		t.Errorf("expected exhausted reader, got %v", err)
	}
}

func TestReadSwappedWith(t *testing.T) {
	r := FromBytes([]byte{0x01, 0x02, 0x03, 0x04}, endian.Little)
	got, err := ReadSwappedWith(r, true, func(r *Reader, hasExtra bool) (record, error) {
		var rec record
		err := rec.DecodeBinaryWith(r, hasExtra)
		return rec, err
	})
	if err != nil || got.Tag != 0x01 || got.Extra == nil || *got.Extra != 0x02 {
		t.Fatalf("got %+v (%v)", got, err)
	}

	pair, err := ReadSwapped(r, pairU8U16)
	if !errors.IsKind(err, errors.KindNotEnoughBytes) {
		t.Fatalf("got %v (%v), want not enough bytes", pair, err)
	}
	// The child consumed one byte before failing and the parent sees it.
	if r.Position() != 3 {
		t.Errorf("Position after failed swap: got %d, want 3", r.Position())
	}
}

func TestSwappedTupleUsesChildOrder(t *testing.T) {
	r := FromBytes([]byte{0x01, 0x02, 0x03, 0x04}, endian.Little)
	got, err := ReadSwapped(r, pairU8U16)
	if err != nil {
		t.Fatal(err)
	}
	if got.V0 != 0x01 || got.V1 != 0x0203 {
		t.Errorf("got %#v, want {0x01 0x0203}", got)
	}
}

func TestSwappedSharesCeiling(t *testing.T) {
	r := FromBytes([]byte{1, 2, 3, 4, 5, 6}, endian.Big)
	_, err := ReadPartial(r, 2, func(r *Reader) (uint32, error) {
		return ReadSwapped(r, (*Reader).U32)
	})
	if !errors.IsKind(err, errors.KindNotEnoughBytes) {
		t.Fatalf("got %v, want not enough bytes", err)
	}
	if n, _ := r.Remaining(); n != 6 {
		t.Errorf("Remaining: got %d, want 6", n)
	}
}

func TestWriteSwapped(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, endian.Big)

	if err := w.U16(0x0102); err != nil {
		t.Fatal(err)
	}
	if err := WriteSwapped(w, uint16(0x0304), (*Writer).U16); err != nil {
		t.Fatal(err)
	}
	if err := WriteSwappedWith(w, uint16(50), uint16(10), encodeScaled); err != nil {
		t.Fatal(err)
	}
	if err := w.U16(0x0506); err != nil {
		t.Fatal(err)
	}

	want := []byte{0x01, 0x02, 0x04, 0x03, 0x05, 0x05, 0x06}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % x, want % x", buf.Bytes(), want)
	}
	if w.Position() != len(want) {
		t.Errorf("Position: got %d, want %d", w.Position(), len(want))
	}
}

func TestWriteSwappedFailureKeepsCount(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterLimit(&buf, endian.Little, 3)
	err := WriteSwapped(w, Tuple2[uint16, uint16]{1, 2}, EncodeTuple2((*Writer).U16, (*Writer).U16))
	if !errors.IsKind(err, errors.KindNotEnoughBytes) {
		t.Fatalf("got %v", err)
	}
	if w.Position() != 2 || buf.Len() != 2 {
		t.Errorf("Position %d, sink %d; want 2 and 2", w.Position(), buf.Len())
	}
}
