// Package bstr implements a mutable, binary-safe byte string with a
// small-string optimization.
//
// # Overview
//
// A String stores an arbitrary byte sequence (NUL is a valid content byte)
// in one of two layouts:
//
//   - Inline: content lives in a fixed-size array embedded in the container
//     itself. No heap buffer is owned. Capacity is InlineCapa bytes.
//   - Heap: content lives in a single exclusively-owned buffer of
//     capacity+1 bytes.
//
// Operations transparently switch between the layouts as content grows and
// shrinks. In both layouts the byte immediately after the content is kept
// zero, so the data can be handed to NUL-terminated text APIs without
// treating NUL as a terminator for the content itself.
//
// # Usage
//
//	var s bstr.String            // zero value is an empty inline string
//	s.Write([]byte("hello"))     // append / insert / overwrite ...
//	st := s.State()              // {Capa, Len, Data} snapshot
//	s.Free()                     // release resources, not the container
//
// Snapshots returned by mutating calls are valid until the next mutating
// call on the same container; growth, shrink or a layout switch may move
// the storage.
//
// # No-op semantics
//
// Misuse is not an error. Operations on a nil container, a frozen
// container, or with a nil/empty source return the current state unchanged.
// Out-of-range positions are clamped, never rejected. The only hard failure
// is an allocation the platform cannot satisfy, which is routed through
// FaultHandler (report, then terminate).
//
// # Thread safety
//
// String instances are not safe for concurrent mutation. Callers must
// serialize access externally.
package bstr
