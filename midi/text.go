package midi

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultTextEncoding is used for track names that are not valid UTF-8.
// Most older sequencers wrote names in the Windows code page.
const DefaultTextEncoding = "windows-1252"

// LookupEncoding resolves a WHATWG encoding label such as "shift_jis",
// "latin1" or "utf-8".
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultTextEncoding
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown text encoding %q: %w", name, err)
	}
	return enc, nil
}

// decodeText returns s unchanged when it is already UTF-8, otherwise decodes
// it with enc. Undecodable names are kept as the raw bytes.
func decodeText(s string, enc encoding.Encoding) string {
	if enc == nil || utf8.ValidString(s) {
		return s
	}
	out, err := enc.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return out
}
