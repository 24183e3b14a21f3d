package bstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCapaAssertInlineNoop verifies that a request fitting the inline
// storage neither allocates nor changes capacity.
func TestCapaAssertInlineNoop(t *testing.T) {
	var s String
	s.Write([]byte("abc"))

	st := s.CapaAssert(InlineCapa)
	assert.True(t, s.IsInline())
	assert.Equal(t, InlineCapa, st.Capa)
	assert.Equal(t, 3, st.Len)
	requireInvariants(t, &s)
}

// TestCapaAssertInlineToHeap verifies the inline-to-heap transition:
// content and terminator are carried over, capacity becomes exactly the
// requested size.
func TestCapaAssertInlineToHeap(t *testing.T) {
	var s String
	s.Write([]byte("Worl"))

	st := s.CapaAssert(InlineCapa + 9)
	require.False(t, s.IsInline())
	assert.Equal(t, InlineCapa+9, st.Capa)
	assert.Equal(t, 4, st.Len, "length must survive the layout switch")
	assert.Equal(t, "Worl", string(st.Bytes()))
	requireInvariants(t, &s)
}

// TestCapaAssertHeapGrow verifies exact heap growth preserving bytes.
func TestCapaAssertHeapGrow(t *testing.T) {
	var s String
	want := make([]byte, InlineCapa+5)
	for i := range want {
		want[i] = byte(i * 7)
	}
	s.Write(want)
	require.False(t, s.IsInline())

	before := s.Capa()
	st := s.CapaAssert(before * 3)
	assert.Equal(t, before*3, st.Capa)
	assert.Equal(t, want, st.Bytes())
	requireInvariants(t, &s)

	// Growing to a smaller need is a no-op.
	st = s.CapaAssert(1)
	assert.Equal(t, before*3, st.Capa)
}

// TestResize verifies length commits, terminator stamping and the frozen
// no-op.
func TestResize(t *testing.T) {
	var s String
	s.Write([]byte("abcdef"))

	st := s.Resize(3)
	assert.Equal(t, 3, st.Len)
	assert.Equal(t, "abc", string(st.Bytes()))
	requireInvariants(t, &s)

	// Growing exposes unspecified bytes but guarantees the terminator.
	st = s.Resize(10)
	assert.Equal(t, 10, st.Len)
	assert.Equal(t, byte(0), st.Data[10])
	requireInvariants(t, &s)

	// Negative sizes clamp to 0.
	st = s.Resize(-4)
	assert.Equal(t, 0, st.Len)
	requireInvariants(t, &s)
}

func TestResizeFrozenNoop(t *testing.T) {
	var s String
	s.Write([]byte("abc"))
	s.Freeze()

	st := s.Resize(10)
	assert.Equal(t, 3, st.Len)
	assert.Equal(t, "abc", string(st.Bytes()))
}

func TestClear(t *testing.T) {
	var s String
	s.Write(make([]byte, InlineCapa*2))
	capa := s.Capa()

	st := s.Clear()
	assert.Equal(t, 0, st.Len)
	assert.Equal(t, capa, st.Capa, "Clear retains capacity")
	assert.False(t, s.IsInline())
	requireInvariants(t, &s)
}

// TestCompactToInline verifies the heap-to-inline reversal when the
// content fits the embedded storage.
func TestCompactToInline(t *testing.T) {
	var s String
	s.Write(make([]byte, InlineCapa*2))
	s.Resize(5)
	s.Overwrite([]byte("hello"), 0)
	require.False(t, s.IsInline())

	s.Compact()
	assert.True(t, s.IsInline())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, InlineCapa, s.Capa())
	assert.Equal(t, "hello", s.String())
	requireInvariants(t, &s)
}

// TestCompactShrinksHeap verifies the heap-shrink path when the content
// does not fit inline.
func TestCompactShrinksHeap(t *testing.T) {
	var s String
	want := make([]byte, InlineCapa+10)
	for i := range want {
		want[i] = byte(i)
	}
	s.Write(want)
	s.CapaAssert(1024)
	require.Equal(t, 1024, s.Capa())

	s.Compact()
	assert.False(t, s.IsInline())
	assert.Equal(t, len(want), s.Capa(), "capacity shrinks to the length")
	assert.Equal(t, want, s.Bytes())
	requireInvariants(t, &s)
}

func TestCompactInlineNoop(t *testing.T) {
	var s String
	s.Write([]byte("abc"))
	s.Compact()
	assert.True(t, s.IsInline())
	assert.Equal(t, "abc", s.String())
}

// TestLayoutThreshold verifies the exact inline/heap boundary: InlineCapa
// bytes stay inline, one more byte forces the heap layout.
func TestLayoutThreshold(t *testing.T) {
	var s String
	s.Write(make([]byte, InlineCapa))
	assert.True(t, s.IsInline())
	requireInvariants(t, &s)

	s.Write([]byte{1})
	assert.False(t, s.IsInline())
	assert.Equal(t, InlineCapa+1, s.Len())
	requireInvariants(t, &s)

	s.Resize(InlineCapa)
	s.Compact()
	assert.True(t, s.IsInline())
	requireInvariants(t, &s)
}
