// Package mdpatch turns fenced code blocks in Markdown documents into patch
// instructions. A block headed `file=<path>` becomes a full-write instruction;
// a `from file=<path>` block and a `to file=<path>` block pair up into a
// single replace instruction for that path.
package mdpatch

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// pair accumulates the two halves of a replace instruction for one target
// path. A nil half has not been seen yet.
type pair struct {
	from *string
	to   *string
	done bool
}

// Extract scans a Markdown document and returns the patch instructions it
// declares. Write instructions come first, in source order; replace
// instructions follow, ordered by the moment their pair completed. Blocks
// without a file= directive and from/to halves that never find their
// counterpart are dropped without diagnostics. Pairing state never crosses
// documents; callers concatenate per-document plans.
func Extract(source []byte, doc string) (Plan, error) {
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source)).OwnerDocument()

	var (
		writes    Plan
		pairs     = map[string]*pair{}
		completed []string
	)

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb := asFencedCodeBlock(node, entering)
		if fcb == nil {
			return ast.WalkContinue, nil
		}

		dir := parseHeader(headerText(fcb, source))
		if dir.file == "" {
			// Illustrative block, nothing to patch.
			return ast.WalkContinue, nil
		}

		body := blockBody(fcb, source)

		if dir.mode == modeNone {
			writes = append(writes, &Instruction{
				Kind:    KindWrite,
				Target:  dir.file,
				Doc:     doc,
				Content: body,
			})

			return ast.WalkContinue, nil
		}

		p := pairs[dir.file]
		if p == nil {
			p = &pair{}
			pairs[dir.file] = p
		}

		// A later half overwrites an earlier one for the same path.
		if dir.mode == modeFrom {
			p.from = &body
		} else {
			p.to = &body
		}

		if p.from != nil && p.to != nil && !p.done {
			p.done = true
			completed = append(completed, dir.file)
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	plan := writes

	for _, file := range completed {
		p := pairs[file]
		plan = append(plan, &Instruction{
			Kind:   KindReplace,
			Target: file,
			Doc:    doc,
			From:   *p.from,
			To:     *p.to,
		})
	}

	return plan, nil
}

func asFencedCodeBlock(node ast.Node, entering bool) *ast.FencedCodeBlock {
	if entering || node.Kind() != ast.KindFencedCodeBlock {
		return nil
	}

	if fcb, ok := node.(*ast.FencedCodeBlock); ok {
		return fcb
	}

	return nil
}

func headerText(fcb *ast.FencedCodeBlock, source []byte) string {
	if fcb.Info == nil {
		return ""
	}

	return string(fcb.Info.Text(source))
}

// blockBody returns the verbatim block content minus the single line
// terminator preceding the closing fence; that terminator belongs to the
// fence line, not to the body.
func blockBody(fcb *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer

	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}

	body := strings.TrimSuffix(buf.String(), "\n")

	return strings.TrimSuffix(body, "\r")
}
