package bstr

import "io"

// readChunk is the capacity step used when appending from a stream.
const readChunk = 4096

// ReadFrom appends everything read from r to the String, growing through
// the normal capacity protocol. A nil or frozen String consumes nothing
// and reports 0, nil.
func (s *String) ReadFrom(r io.Reader) (int64, error) {
	if s == nil || s.frozen {
		return 0, nil
	}
	var total int64
	for {
		st := s.CapaAssert(s.length + readChunk)
		n, err := r.Read(st.Data[s.length:st.Capa])
		if n > 0 {
			total += int64(n)
			s.Resize(s.length + n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// WriteTo writes the content bytes to w.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	if s.Len() == 0 {
		return 0, nil
	}
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

// Compile-time interface checks
var (
	_ io.ReaderFrom = (*String)(nil)
	_ io.WriterTo   = (*String)(nil)
)
