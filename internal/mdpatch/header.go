package mdpatch

import "strings"

type mode int

const (
	modeNone mode = iota
	modeFrom
	modeTo
)

// directive holds the recognized tokens of a fence header line.
type directive struct {
	file string
	mode mode
}

// parseHeader tokenizes a fence info string by whitespace. A "from" or "to"
// token (case-insensitive) sets the pairing mode, a "file=" token carries the
// target path verbatim after the equals sign. Every other token, language
// tags included, is ignored. Later tokens win over earlier ones.
func parseHeader(header string) directive {
	var d directive

	for _, tok := range strings.Fields(header) {
		switch {
		case strings.EqualFold(tok, "from"):
			d.mode = modeFrom
		case strings.EqualFold(tok, "to"):
			d.mode = modeTo
		case strings.HasPrefix(tok, "file="):
			d.file = tok[len("file="):]
		}
	}

	return d
}
