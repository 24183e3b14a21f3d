package bstr

import "bytes"

// InlineCapa is the number of content bytes an inline-layout String can hold.
// One extra byte beyond the capacity is always reserved for the terminator,
// so the embedded storage is InlineCapa+1 bytes.
const InlineCapa = 31

// String is a mutable, binary-safe byte string. The zero value is an empty
// inline string and is ready to use.
//
// A nil *String is treated as an immutable empty string by every method.
type String struct {
	frozen bool
	length int

	// capa is the heap-arm content capacity. Meaningful only when heap is
	// non-nil; the inline arm's capacity is the fixed InlineCapa.
	capa int

	// heap is the owned buffer of the heap layout, always capa+1 bytes.
	// nil means the content lives in small (inline layout).
	heap []byte

	small [InlineCapa + 1]byte
}

// State is a read-only snapshot of a String: content capacity, content
// length, and the underlying storage including the terminator byte
// (len(Data) == Capa+1, Data[Len] == 0).
//
// Data aliases the container's storage and is valid until the next mutating
// call on that container.
type State struct {
	Capa int
	Len  int
	Data []byte
}

// Bytes returns the content portion of the snapshot, Data[:Len].
func (st State) Bytes() []byte {
	return st.Data[:st.Len]
}

// New returns an empty inline String. Equivalent to new(String); provided
// for symmetry with Wrap.
func New() *String {
	return &String{}
}

// Wrap constructs a String that takes ownership of an existing buffer
// holding length content bytes. The capacity becomes len(buf)-1; the last
// byte of the buffer is reserved for the terminator. The caller must not
// use buf afterwards.
//
// An empty buffer yields an empty inline String. A length beyond the
// usable capacity is clamped so the terminator invariant always holds.
func Wrap(buf []byte, length int) *String {
	if len(buf) == 0 {
		return &String{}
	}
	if length < 0 {
		length = 0
	}
	if length > len(buf)-1 {
		length = len(buf) - 1
	}
	buf[length] = 0
	return &String{
		length: length,
		capa:   len(buf) - 1,
		heap:   buf,
	}
}

// State returns the current {capacity, length, data} snapshot. It never
// allocates. A nil receiver yields the zero State.
func (s *String) State() State {
	if s == nil {
		return State{}
	}
	if s.heap == nil {
		return State{Capa: InlineCapa, Len: s.length, Data: s.small[:]}
	}
	return State{Capa: s.capa, Len: s.length, Data: s.heap}
}

// Len returns the content length in bytes, excluding the terminator.
func (s *String) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// Capa returns the current content capacity, excluding the terminator.
func (s *String) Capa() int {
	if s == nil {
		return 0
	}
	if s.heap == nil {
		return InlineCapa
	}
	return s.capa
}

// Bytes returns the content bytes. The slice aliases the container's
// storage and is valid until the next mutating call.
func (s *String) Bytes() []byte {
	return s.State().Bytes()
}

// String returns a copy of the content as a Go string.
func (s *String) String() string {
	return string(s.Bytes())
}

// IsInline reports whether the content currently lives in the container's
// embedded storage rather than an owned heap buffer.
func (s *String) IsInline() bool {
	return s == nil || s.heap == nil
}

// Frozen reports whether the String has been frozen against mutation.
func (s *String) Frozen() bool {
	return s != nil && s.frozen
}

// Equal reports whether two Strings hold identical content bytes.
func (s *String) Equal(o *String) bool {
	return bytes.Equal(s.Bytes(), o.Bytes())
}

// Free releases any owned heap buffer and resets the container to the
// empty inline state, clearing frozen as well. It does not free the
// container's own storage; a heap-allocated *String remains the caller's
// to discard.
func (s *String) Free() {
	if s == nil {
		return
	}
	*s = String{}
}
