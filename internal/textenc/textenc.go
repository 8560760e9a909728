// Package textenc handles the character-encoding edges of patching. Documents
// and patch targets are read with any UTF-8 byte order mark stripped, and
// apply-mode writes go through an encoder selected by IANA name.
package textenc

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode returns data as text with a leading UTF-8 BOM, if any, removed.
func Decode(data []byte) string {
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return string(data)
	}

	return string(out)
}

// Encoder looks up a text encoding by its IANA name, e.g. "utf-8" or
// "iso-8859-1".
func Encoder(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}

	return enc, nil
}

// Encode converts text to the given encoding's byte representation. A nil
// encoding writes the text's UTF-8 bytes as-is.
func Encode(enc encoding.Encoding, text string) ([]byte, error) {
	if enc == nil {
		return []byte(text), nil
	}

	out, _, err := transform.Bytes(enc.NewEncoder(), []byte(text))

	return out, err
}
