package bstr

import "github.com/strkit/strkit/internal/buf"

// Write appends src to the end of the String and returns the updated
// state. Equivalent to Insert at position -1.
func (s *String) Write(src []byte) State {
	if s == nil || len(src) == 0 || s.frozen {
		return s.State()
	}
	st := s.Resize(s.length + len(src))
	copy(st.Data[st.Len-len(src):st.Len], src)
	return st
}

// WriteString appends the bytes of a Go string.
func (s *String) WriteString(src string) State {
	if s == nil || len(src) == 0 || s.frozen {
		return s.State()
	}
	st := s.Resize(s.length + len(src))
	copy(st.Data[st.Len-len(src):st.Len], src)
	return st
}

// Concat appends the current content of src to s and returns the updated
// state. The source may be inline or heap-backed and is only read.
//
// The source state is captured before the destination resizes, so
// concatenating a String with itself is well defined: the captured range
// still refers to valid storage even if the destination reallocates.
func (s *String) Concat(src *String) State {
	if s == nil || s.frozen {
		return s.State()
	}
	srcState := src.State()
	if srcState.Len == 0 {
		return s.State()
	}
	st := s.Resize(s.length + srcState.Len)
	copy(st.Data[st.Len-srcState.Len:st.Len], srcState.Data[:srcState.Len])
	return st
}

// Overwrite pastes src at pos, replacing existing bytes in place without
// shifting surrounding content, and returns the updated state.
//
// Negative positions index backwards from just past the end (-1 == end).
// The resolved position is clamped to the current length. When
// pos+len(src) exceeds the current length the String grows to exactly that
// size; this is the only way Overwrite extends the content.
func (s *String) Overwrite(src []byte, pos int) State {
	if s == nil || len(src) == 0 || s.frozen {
		return s.State()
	}
	p := buf.ResolvePos(pos, s.length)
	if p > s.length {
		p = s.length
	}
	end, ok := buf.AddOverflowSafe(p, len(src))
	if !ok {
		FaultHandler(ErrGrowOverflow)
		panic(ErrGrowOverflow)
	}
	st := s.State()
	if end > s.length {
		st = s.Resize(end)
	}
	copy(st.Data[p:], src)
	return st
}

// Insert pastes src at pos, shifting any existing bytes at or after the
// position forward by len(src), and returns the updated state. Existing
// content is displaced, never overwritten.
//
// Negative positions resolve as in Overwrite. The String first grows to
// length+len(src); the position is then clamped against the post-growth
// length so the paste cannot run past the buffer.
func (s *String) Insert(src []byte, pos int) State {
	if s == nil || len(src) == 0 || s.frozen {
		return s.State()
	}
	oldLen := s.length
	p := buf.ResolvePos(pos, oldLen)
	st := s.Resize(oldLen + len(src))
	if p > st.Len-len(src) {
		p = st.Len - len(src)
	}
	if p != oldLen {
		// Forward shift of the displaced region; ranges may overlap.
		copy(st.Data[p+len(src):st.Len], st.Data[p:oldLen])
	}
	copy(st.Data[p:], src)
	return st
}

// Freeze prevents all further content and length mutation. Subsequent
// mutating calls become no-ops returning the current state. Freezing is
// idempotent and nil-safe; only Free resets the flag.
func (s *String) Freeze() {
	if s == nil {
		return
	}
	s.frozen = true
}
