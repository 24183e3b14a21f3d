package bstr

import "errors"

var (
	// ErrGrowOverflow indicates a grow request whose size arithmetic
	// overflows the platform int. Routed through FaultHandler.
	ErrGrowOverflow = errors.New("bstr: grow size overflows int")
)
