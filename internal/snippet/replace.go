// Package snippet provides the literal text primitives behind patching:
// first-occurrence snippet replacement and a positional line diff.
package snippet

import (
	"errors"
	"strings"
)

// ErrSnippetNotFound is returned by ReplaceOnce when the old snippet does not
// occur in the haystack, even after line-ending normalization.
var ErrSnippetNotFound = errors.New("'from' snippet not found")

// ReplaceOnce replaces the leftmost occurrence of old in haystack with new.
// When old is absent, it retries with both snippets normalized to CRLF line
// endings, covering files that use CRLF on disk while the document was
// authored with bare LF. On a miss it returns the haystack unchanged together
// with ErrSnippetNotFound. Matching is strictly literal and first-match-only;
// a snippet occurring more than once silently patches the first occurrence.
func ReplaceOnce(haystack, old, new string) (string, error) {
	if idx := strings.Index(haystack, old); idx >= 0 {
		return haystack[:idx] + new + haystack[idx+len(old):], nil
	}

	oldCRLF := toCRLF(old)
	if idx := strings.Index(haystack, oldCRLF); idx >= 0 {
		return haystack[:idx] + toCRLF(new) + haystack[idx+len(oldCRLF):], nil
	}

	return haystack, ErrSnippetNotFound
}

func toCRLF(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\n", "\r\n")
}
