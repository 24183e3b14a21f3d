package bstr

// CapaAssert ensures the String can hold at least needed content bytes
// without further reallocation and returns the resulting state.
//
// Growth rules:
//   - heap layout, needed <= capacity: no-op
//   - heap layout, needed > capacity: reallocate to exactly needed+1 bytes,
//     preserving content and terminator
//   - inline layout, needed <= InlineCapa: no-op (inline capacity is fixed)
//   - inline layout, needed > InlineCapa: allocate needed+1 bytes, copy
//     content+terminator, switch to the heap layout
//
// Negative values of needed are treated as 0. Frozen strings reserve
// nothing; their capacity may only change through Compact. An
// unsatisfiable request is routed through FaultHandler.
func (s *String) CapaAssert(needed int) State {
	if s == nil || s.frozen {
		return s.State()
	}
	if needed < 0 {
		needed = 0
	}
	if s.heap == nil {
		if needed <= InlineCapa {
			return s.State()
		}
		nb := allocContent(needed)
		copy(nb, s.small[:s.length+1])
		s.heap = nb
		s.capa = needed
		return State{Capa: needed, Len: s.length, Data: nb}
	}
	if needed <= s.capa {
		return s.State()
	}
	nb := allocContent(needed)
	copy(nb, s.heap[:s.length+1])
	s.heap = nb
	s.capa = needed
	return State{Capa: needed, Len: s.length, Data: nb}
}

// Resize sets the content length, growing capacity first when required,
// and returns the updated state. Frozen or nil containers are left
// unchanged.
//
// Growing the length does not initialize the newly exposed bytes beyond
// the guaranteed terminator at the new end; callers that grow without
// writing will observe unspecified values there.
func (s *String) Resize(size int) State {
	if s == nil || s.frozen {
		return s.State()
	}
	if size < 0 {
		size = 0
	}
	st := s.CapaAssert(size)
	s.length = size
	st.Data[size] = 0
	st.Len = size
	return st
}

// Clear empties the String, retaining the existing capacity.
func (s *String) Clear() State {
	return s.Resize(0)
}

// Compact performs a best-effort reduction of owned memory. Heap content
// that fits the inline storage moves back into it and the buffer is
// released; otherwise the buffer shrinks to exactly length+1 bytes.
// Content and length are never altered, so compaction is permitted even on
// a frozen String.
func (s *String) Compact() {
	if s == nil || s.heap == nil {
		return
	}
	if s.length <= InlineCapa {
		copy(s.small[:], s.heap[:s.length+1])
		s.heap = nil
		s.capa = 0
		return
	}
	if s.capa == s.length {
		return
	}
	nb := allocContent(s.length)
	copy(nb, s.heap[:s.length+1])
	s.heap = nb
	s.capa = s.length
}
