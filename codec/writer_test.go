package codec

import (
	"bufio"
	"bytes"
	"context"
	stderrors "errors"
	"testing"

	"github.com/uznami/rwbin/endian"
	"github.com/uznami/rwbin/errors"
)

func TestWriterPrimitiveBytes(t *testing.T) {
	tests := []struct {
		name  string
		order endian.Order
		want  []byte
	}{
		{"little", endian.Little, []byte{0x01, 0x03, 0x02, 0x07, 0x06, 0x05, 0x04}},
		{"big", endian.Big, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf, tt.order)
			if err := w.U8(0x01); err != nil {
				t.Fatal(err)
			}
			if err := w.U16(0x0203); err != nil {
				t.Fatal(err)
			}
			if err := w.U32(0x04050607); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(buf.Bytes(), tt.want) {
				t.Errorf("got % x, want % x", buf.Bytes(), tt.want)
			}
			if w.Position() != 7 {
				t.Errorf("Position: got %d, want 7", w.Position())
			}
		})
	}
}

func TestWriterLimit(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterLimit(&buf, endian.Little, 3)

	if err := w.U16(0xFFFF); err != nil {
		t.Fatalf("U16: %v", err)
	}
	err := w.U16(0x0102)
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindNotEnoughBytes || e.Phase != errors.PhaseEncode {
		t.Fatalf("U16 past ceiling: got %v", err)
	}
	if e.Expected != 2 || e.Remaining != 1 {
		t.Errorf("Expected=%d Remaining=%d, want 2 and 1", e.Expected, e.Remaining)
	}
	if buf.Len() != 2 {
		t.Errorf("sink received %d bytes, want 2", buf.Len())
	}
	if n, ok := w.Remaining(); !ok || n != 1 {
		t.Errorf("Remaining: got %d %v, want 1 true", n, ok)
	}
}

func TestWriterReservedAndAlign(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, endian.Little)

	if err := w.U8(0xAA); err != nil {
		t.Fatal(err)
	}
	if err := w.FillAligned(4); err != nil {
		t.Fatalf("FillAligned: %v", err)
	}
	if err := w.Reserved(2, 0xFF); err != nil {
		t.Fatalf("Reserved: %v", err)
	}
	if err := w.FillAligned(4); err != nil {
		t.Fatalf("FillAligned: %v", err)
	}
	if err := w.FillAligned(4); err != nil {
		t.Fatalf("FillAligned aligned: %v", err)
	}

	want := []byte{0xAA, 0, 0, 0, 0xFF, 0xFF, 0, 0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % x, want % x", buf.Bytes(), want)
	}

	if err := w.FillAligned(-4); !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("FillAligned(-4): got %v", err)
	}
}

func TestWriterLargeReserved(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, endian.Little)
	if err := w.Reserved(1500, 0x5A); err != nil {
		t.Fatalf("Reserved: %v", err)
	}
	if buf.Len() != 1500 || w.Position() != 1500 {
		t.Fatalf("wrote %d bytes, position %d", buf.Len(), w.Position())
	}
	if bytes.Count(buf.Bytes(), []byte{0x5A}) != 1500 {
		t.Error("fill byte mismatch")
	}
}

func TestWriterRuneRejectsInvalid(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, endian.Little)
	if err := w.Rune(0xD800); !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("Rune(surrogate): got %v", err)
	}
	if err := w.Rune(-1); !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("Rune(-1): got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("rejected rune wrote %d bytes", buf.Len())
	}
}

type failingSink struct {
	accept int
}

func (s *failingSink) Write(p []byte) (int, error) {
	if len(p) <= s.accept {
		s.accept -= len(p)
		return len(p), nil
	}
	n := s.accept
	s.accept = 0
	return n, stderrors.New("disk full")
}

func TestWriterSinkFailure(t *testing.T) {
	w := NewWriter(&failingSink{accept: 3}, endian.Little)
	err := w.U32(1)
	if !errors.IsKind(err, errors.KindIO) {
		t.Fatalf("got %v, want io error", err)
	}
	if w.Position() != 3 {
		t.Errorf("Position: got %d, want 3", w.Position())
	}
}

func TestWriterFlush(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := NewWriter(bw, endian.Big)

	if err := w.U32(0xCAFEBABE); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("bytes reached sink before flush: %d", buf.Len())
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0xCA, 0xFE, 0xBA, 0xBE}) {
		t.Errorf("got % x", buf.Bytes())
	}

	// Sinks without Flush are a no-op.
	if err := NewWriter(&buf, endian.Big).Flush(); err != nil {
		t.Errorf("Flush on plain sink: %v", err)
	}
}

func TestWriterContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	w := NewWriter(&buf, endian.Little).WithContext(ctx)
	err := w.U8(1)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if buf.Len() != 0 {
		t.Errorf("cancelled writer wrote %d bytes", buf.Len())
	}
}
