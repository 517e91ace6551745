package abi

import (
	"math"
	"testing"
)

func TestSafeAdd(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int
		want   int
		wantOK bool
	}{
		{"zero + zero", 0, 0, 0, true},
		{"small", 100, 200, 300, true},
		{"max + zero", math.MaxInt, 0, math.MaxInt, true},
		{"max + one", math.MaxInt, 1, 0, false},
		{"near max", math.MaxInt - 4, 4, math.MaxInt, true},
		{"negative", 10, -3, 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SafeAdd(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Errorf("SafeAdd(%d, %d) ok = %v, want %v", tt.a, tt.b, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("SafeAdd(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSafeMul(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int
		want   int
		wantOK bool
	}{
		{"zero", 0, math.MaxInt, 0, true},
		{"units", 12, 2, 24, true},
		{"overflow", math.MaxInt, 2, 0, false},
		{"negative", -1, 2, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SafeMul(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Errorf("SafeMul(%d, %d) ok = %v, want %v", tt.a, tt.b, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("SafeMul(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		pos, align, want int
	}{
		{0, 4, 0},
		{1, 4, 3},
		{3, 4, 1},
		{4, 4, 0},
		{5, 1, 0},
		{7, 8, 1},
		{9, 8, 7},
	}

	for _, tt := range tests {
		if got := Pad(tt.pos, tt.align); got != tt.want {
			t.Errorf("Pad(%d, %d) = %d, want %d", tt.pos, tt.align, got, tt.want)
		}
	}
}

func TestValidScalar(t *testing.T) {
	tests := []struct {
		name string
		v    uint32
		want bool
	}{
		{"null", 0, true},
		{"ascii", 'A', true},
		{"before surrogates", 0xD7FF, true},
		{"low surrogate start", 0xD800, false},
		{"high surrogate end", 0xDFFF, false},
		{"after surrogates", 0xE000, true},
		{"max scalar", 0x10FFFF, true},
		{"out of range", 0x110000, false},
		{"huge", math.MaxUint32, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidScalar(tt.v); got != tt.want {
				t.Errorf("ValidScalar(0x%X) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}
