package bstr

import (
	"log/slog"
	"os"

	"github.com/strkit/strkit/internal/buf"
)

// FaultHandler receives allocation requests that cannot be satisfied, such
// as a grow whose size arithmetic overflows. The default handler reports
// the condition and terminates the process: out-of-memory is treated as
// unrecoverable, matching the container's no-partial-failure contract.
//
// Callers that need a different policy may replace the handler before any
// container is used. If a replacement handler returns, the library panics
// with the same error rather than continuing with a corrupt container.
var FaultHandler = func(err error) {
	slog.Error("unrecoverable string allocation failure", "error", err)
	os.Exit(2)
}

// allocContent allocates a content buffer of capa+1 bytes (terminator
// included). The extra-byte arithmetic is the only overflow point; Go's
// runtime aborts the process itself when the allocation is impossible.
func allocContent(capa int) []byte {
	total, ok := buf.AddOverflowSafe(capa, 1)
	if !ok {
		FaultHandler(ErrGrowOverflow)
		panic(ErrGrowOverflow)
	}
	return make([]byte, total)
}
