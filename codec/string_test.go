package codec

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/uznami/rwbin/endian"
	"github.com/uznami/rwbin/errors"
)

func TestUTF8StringFixed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"full slot", []byte("abcd"), "abcd"},
		{"zero padded", []byte{'h', 'i', 0, 0}, "hi"},
		{"stops at first zero", []byte{'a', 0, 'b', 0}, "a"},
		{"multibyte", []byte("é\x00\x00"), "é"},
		{"lossy", []byte{'o', 'k', 0xFF, 0}, "ok�"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromBytes(tt.data, endian.Little)
			got, err := r.UTF8String(Fixed(len(tt.data)))
			if err != nil {
				t.Fatalf("UTF8String: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if r.Position() != len(tt.data) {
				t.Errorf("Position: got %d, want %d", r.Position(), len(tt.data))
			}
		})
	}
}

func TestUTF8StringTerminated(t *testing.T) {
	r := FromBytes([]byte{'a', 'b', 'c', 0, 'd', 0}, endian.Big)

	got, err := r.UTF8String(NullTerminated)
	if err != nil || got != "abc" {
		t.Fatalf("first: got %q (%v)", got, err)
	}
	if r.Position() != 4 {
		t.Errorf("terminator not consumed: Position %d", r.Position())
	}
	got, err = r.UTF8String(NullTerminated)
	if err != nil || got != "d" {
		t.Fatalf("second: got %q (%v)", got, err)
	}

	_, err = FromBytes([]byte("unterminated"), endian.Big).UTF8String(NullTerminated)
	if !errors.IsKind(err, errors.KindNotEnoughBytes) {
		t.Errorf("unterminated: got %v", err)
	}
}

func TestUTF16String(t *testing.T) {
	tests := []struct {
		name  string
		order endian.Order
		data  []byte
		mode  StringMode
		want  string
	}{
		{"fixed le", endian.Little, []byte{'H', 0, 'i', 0, 0, 0}, Fixed(3), "Hi"},
		{"fixed be", endian.Big, []byte{0, 'H', 0, 'i'}, Fixed(2), "Hi"},
		{"terminated le", endian.Little, []byte{'o', 0, 'k', 0, 0, 0}, NullTerminated, "ok"},
		{"surrogate pair", endian.Big, []byte{0xD8, 0x3D, 0xDE, 0x00, 0, 0}, NullTerminated, "\U0001F600"},
		{"lone surrogate", endian.Little, []byte{0x00, 0xD8, 'x', 0}, Fixed(2), "�x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromBytes(tt.data, tt.order)
			got, err := r.UTF16String(tt.mode)
			if err != nil {
				t.Fatalf("UTF16String: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if r.Position() != len(tt.data) {
				t.Errorf("Position: got %d, want %d", r.Position(), len(tt.data))
			}
		})
	}
}

func TestWriteUTF8String(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, endian.Little)

	if err := w.UTF8String("ab", Fixed(4)); err != nil {
		t.Fatal(err)
	}
	if err := w.UTF8String("cd", NullTerminated); err != nil {
		t.Fatal(err)
	}
	want := []byte{'a', 'b', 0, 0, 'c', 'd', 0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % x, want % x", buf.Bytes(), want)
	}
}

func TestWriteFixedStringTooLong(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, endian.Little)

	err := w.UTF8String("hello", Fixed(4))
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("expected *errors.Error, got %v", err)
	}
	if e.Phase != errors.PhaseEncode || e.Kind != errors.KindInvalidArgument {
		t.Errorf("got %s/%s, want encode/invalid_argument", e.Phase, e.Kind)
	}
	if !strings.Contains(e.Detail, "too long") {
		t.Errorf("Detail: got %q", e.Detail)
	}
	if buf.Len() != 0 {
		t.Errorf("rejected string wrote %d bytes", buf.Len())
	}

	// Multibyte characters count in bytes for UTF-8 and in units for UTF-16.
	if err := w.UTF8String("éé", Fixed(3)); !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("UTF8 multibyte: got %v", err)
	}
	if err := w.UTF16String("éé", Fixed(2)); err != nil {
		t.Errorf("UTF16 exact fit: %v", err)
	}
	if err := w.UTF16String("\U0001F600", Fixed(1)); !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("UTF16 surrogate pair in one unit: got %v", err)
	}
}

func TestWriteUTF16String(t *testing.T) {
	tests := []struct {
		name  string
		order endian.Order
		s     string
		mode  StringMode
		want  []byte
	}{
		{"fixed le", endian.Little, "Hi", Fixed(3), []byte{'H', 0, 'i', 0, 0, 0}},
		{"fixed be", endian.Big, "Hi", Fixed(2), []byte{0, 'H', 0, 'i'}},
		{"terminated be", endian.Big, "ok", NullTerminated, []byte{0, 'o', 0, 'k', 0, 0}},
		{"empty terminated", endian.Little, "", NullTerminated, []byte{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewWriter(&buf, tt.order).UTF16String(tt.s, tt.mode); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(buf.Bytes(), tt.want) {
				t.Errorf("got % x, want % x", buf.Bytes(), tt.want)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	texts := []string{"", "plain", "ünïcödé", "日本語", "\U0001F680 launch"}
	modes := []StringMode{NullTerminated, Fixed(32)}

	for _, order := range []endian.Order{endian.Little, endian.Big} {
		for _, mode := range modes {
			var buf bytes.Buffer
			w := NewWriter(&buf, order)
			for _, s := range texts {
				if err := w.UTF8String(s, mode); err != nil {
					t.Fatalf("UTF8String(%q, %s): %v", s, mode, err)
				}
				if err := w.UTF16String(s, mode); err != nil {
					t.Fatalf("UTF16String(%q, %s): %v", s, mode, err)
				}
			}

			r := FromBytes(buf.Bytes(), order)
			for _, s := range texts {
				if got, err := r.UTF8String(mode); err != nil || got != s {
					t.Errorf("%s %s UTF8: got %q (%v), want %q", endian.Name(order), mode, got, err, s)
				}
				if got, err := r.UTF16String(mode); err != nil || got != s {
					t.Errorf("%s %s UTF16: got %q (%v), want %q", endian.Name(order), mode, got, err, s)
				}
			}
		}
	}
}

func TestStringModeString(t *testing.T) {
	if got := Fixed(8).String(); got != "fixed(8)" {
		t.Errorf("Fixed(8): got %q", got)
	}
	if got := NullTerminated.String(); got != "null-terminated" {
		t.Errorf("NullTerminated: got %q", got)
	}
	if Fixed(8).Units() != 8 || Fixed(8).IsTerminated() || !NullTerminated.IsTerminated() {
		t.Error("mode accessors mismatch")
	}
}
