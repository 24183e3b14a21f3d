package bstr

import (
	"bytes"
	"testing"

	"github.com/strkit/strkit/internal/buf"
)

// FuzzEditSequence drives random edit sequences against a plain-slice
// reference model and checks content equality plus the representation
// invariants after every operation.
//
// Each instruction is three bytes: opcode, position (signed), payload
// byte. Length-growing Resize is excluded because it exposes unspecified
// bytes by contract; shrinking Resize is covered.
func FuzzEditSequence(f *testing.F) {
	f.Add([]byte{0, 5, 'a', 1, 0xFF, 'b', 2, 3, 'c'})
	f.Add([]byte("Hello Big World!"))
	f.Add([]byte{1, 0xF0, 'x', 4, 0, 0, 2, 0x7F, 'y', 3, 0, 1})
	f.Fuzz(func(t *testing.T, in []byte) {
		var s String
		defer s.Free()
		ref := []byte{}

		for len(in) >= 3 {
			op, pos, ch := in[0]%5, int(int8(in[1])), in[2]
			in = in[3:]
			src := bytes.Repeat([]byte{ch}, int(ch%7)+1)

			switch op {
			case 0: // append
				s.Write(src)
				ref = append(ref, src...)
			case 1: // insert
				s.Insert(src, pos)
				p := buf.Clamp(buf.ResolvePos(pos, len(ref)), 0, len(ref))
				next := make([]byte, 0, len(ref)+len(src))
				next = append(next, ref[:p]...)
				next = append(next, src...)
				next = append(next, ref[p:]...)
				ref = next
			case 2: // overwrite
				s.Overwrite(src, pos)
				p := buf.Clamp(buf.ResolvePos(pos, len(ref)), 0, len(ref))
				for len(ref) < p+len(src) {
					ref = append(ref, 0)
				}
				copy(ref[p:], src)
			case 3: // shrink
				n := 0
				if len(ref) > 0 {
					n = int(ch) % len(ref)
				}
				s.Resize(n)
				ref = ref[:n]
			case 4: // compact
				s.Compact()
			}

			st := s.State()
			if st.Len != len(ref) {
				t.Fatalf("length diverged: container %d, model %d", st.Len, len(ref))
			}
			if !bytes.Equal(st.Bytes(), ref) {
				t.Fatalf("content diverged after op %d:\n container %q\n model %q", op, st.Bytes(), ref)
			}
			if st.Len > st.Capa {
				t.Fatalf("length %d exceeds capacity %d", st.Len, st.Capa)
			}
			if st.Data[st.Len] != 0 {
				t.Fatalf("missing terminator at %d", st.Len)
			}
			if s.IsInline() && st.Capa != InlineCapa {
				t.Fatalf("inline capacity reported as %d", st.Capa)
			}
		}
	})
}
