// Package buf provides overflow-safe size arithmetic and position
// resolution shared by the byte-string container and the tools built on
// top of it.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// ResolvePos translates a possibly negative position into a non-negative
// offset for a sequence of the given length. Negative positions index
// backwards from just past the end: -1 addresses the end itself
// (pos += length+1). A result that is still negative floors at 0.
//
// The returned offset is not clamped against length; callers apply their
// own upper bound (pre- or post-growth) per operation.
func ResolvePos(pos, length int) int {
	if pos < 0 {
		pos += length + 1
		if pos < 0 {
			pos = 0
		}
	}
	return pos
}

// Clamp bounds v into [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
