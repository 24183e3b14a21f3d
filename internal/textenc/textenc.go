// Package textenc converts CLI text arguments between UTF-8 and a small
// set of named encodings. The byte-string container itself is
// encoding-agnostic; this package lives strictly at the tool boundary.
package textenc

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Names recognized by Lookup. "utf8" is the identity encoding.
const (
	UTF8    = "utf8"
	UTF16LE = "utf16le"
	UTF16BE = "utf16be"
	Latin1  = "latin1"
)

// Lookup resolves an encoding name (case-insensitive, dashes ignored) to
// an x/text encoding. It returns nil for UTF-8, which needs no transform.
func Lookup(name string) (encoding.Encoding, error) {
	n := strings.ReplaceAll(strings.ToLower(name), "-", "")
	switch n {
	case "", UTF8:
		return nil, nil
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case Latin1, "iso88591":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("textenc: unknown encoding %q", name)
	}
}

// Encode converts UTF-8 text into the named encoding.
func Encode(name string, text []byte) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return text, nil
	}
	out, _, err := transform.Bytes(enc.NewEncoder(), text)
	if err != nil {
		return nil, fmt.Errorf("textenc: encode %s: %w", name, err)
	}
	return out, nil
}

// Decode converts bytes in the named encoding into UTF-8.
func Decode(name string, data []byte) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return data, nil
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("textenc: decode %s: %w", name, err)
	}
	return out, nil
}
