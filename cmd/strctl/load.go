package main

import (
	"github.com/strkit/strkit/bstr"
	"github.com/strkit/strkit/internal/mmfile"
)

// loadContainer maps (or reads) the file and hands the bytes to a
// container. The container must own its content buffer, so the mapping is
// copied and released before returning; the copy reserves the terminator
// byte that Wrap expects.
func loadContainer(path string) (*bstr.String, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cleanup() }()

	owned := make([]byte, len(data)+1)
	copy(owned, data)
	return bstr.Wrap(owned, len(data)), nil
}
