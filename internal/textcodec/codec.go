// Package textcodec provides the fixed single-byte codec used for every
// corpus artifact. NoSketch Engine corpora produced by this tool are read
// and written as ISO-8859-1, regardless of the host locale.
package textcodec

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Name is the codec identifier, as it appears in diagnostics.
const Name = "ISO-8859-1"

// Decode converts raw file bytes to a string. ISO-8859-1 accepts every
// byte value, but the error path is kept so a stricter codec can be
// substituted without changing callers.
func Decode(raw []byte) (string, error) {
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", Name, err)
	}
	return string(text), nil
}

// Encode converts a string back to codec bytes. Fails for runes outside
// the codec's repertoire; text decoded by this package always round-trips.
func Encode(text string) ([]byte, error) {
	raw, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", Name, err)
	}
	return raw, nil
}

// NewWriter wraps w so that UTF-8 text written to it is stored as codec
// bytes. The returned writer must be closed to flush the transform.
func NewWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, charmap.ISO8859_1.NewEncoder())
}
