package bstr

import (
	"bytes"
	"testing"
)

func BenchmarkWriteAppend(b *testing.B) {
	src := bytes.Repeat([]byte{'x'}, 16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var s String
		for j := 0; j < 64; j++ {
			s.Write(src)
		}
		s.Free()
	}
}

func BenchmarkInsertFront(b *testing.B) {
	src := bytes.Repeat([]byte{'x'}, 8)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var s String
		for j := 0; j < 32; j++ {
			s.Insert(src, 0)
		}
		s.Free()
	}
}

func BenchmarkOverwriteInPlace(b *testing.B) {
	var s String
	s.Write(bytes.Repeat([]byte{'.'}, 1024))
	src := []byte("payload!")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Overwrite(src, (i*8)%1000)
	}
}
