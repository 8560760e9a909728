package snippet

import (
	"strings"

	"github.com/fatih/color"
)

var (
	delColor = color.New(color.FgRed)
	addColor = color.New(color.FgGreen)
)

// Diff renders an index-aligned line comparison of before and after under an
// "@@ label @@" header. Lines are paired by position; a line missing past
// either text's end counts as empty, and every differing pair emits a removed
// and an added line. When no index differs the report says "(no changes)".
// This is a preview aid, not a minimal edit script.
func Diff(before, after, label string) string {
	b := splitLines(before)
	a := splitLines(after)

	out := []string{"@@ " + label + " @@"}

	n := len(b)
	if len(a) > n {
		n = len(a)
	}

	for i := 0; i < n; i++ {
		var bl, al string

		if i < len(b) {
			bl = b[i]
		}

		if i < len(a) {
			al = a[i]
		}

		if bl != al {
			out = append(out, delColor.Sprint("- "+bl), addColor.Sprint("+ "+al))
		}
	}

	if len(out) == 1 {
		out = append(out, "(no changes)")
	}

	return strings.Join(out, "\n")
}

// splitLines splits on line boundaries without producing a phantom empty line
// after a trailing newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")

	return strings.Split(s, "\n")
}
