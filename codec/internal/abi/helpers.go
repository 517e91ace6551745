package abi

import "math"

// ScratchSize is the largest transfer served from a cursor's own buffer.
const ScratchSize = 512

// MaxPooledSize bounds the buffers returned to the transfer pool.
const MaxPooledSize = 1 << 16

func SafeAdd(a, b int) (int, bool) {
	if b > 0 && a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

func SafeMul(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if b != 0 && a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// Pad returns the number of bytes needed to move pos to the next multiple of align.
// align must be positive.
func Pad(pos, align int) int {
	return (align - pos%align) % align
}

// ValidScalar rejects surrogates (0xD800-0xDFFF) and values >= 0x110000.
func ValidScalar(v uint32) bool {
	if v >= 0xD800 && v <= 0xDFFF {
		return false
	}
	return v < 0x110000
}
