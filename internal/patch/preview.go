package patch

import (
	"fmt"

	"github.com/ezerfernandes/mdpatch/internal/mdpatch"
	"github.com/ezerfernandes/mdpatch/internal/snippet"
	"github.com/ezerfernandes/mdpatch/internal/textenc"
)

// Preview prints the positional diff each instruction would produce without
// touching disk. Each instruction's "before" text is re-read from the
// filesystem independently, so two previewed instructions on the same path
// both diff against the original content rather than against each other's
// prospective output.
func (e *Engine) Preview(plan mdpatch.Plan) {
	for _, inst := range plan {
		if inst.Kind == mdpatch.KindWrite {
			e.previewWrite(inst)
		} else {
			e.previewReplace(inst)
		}
	}
}

func (e *Engine) previewWrite(inst *mdpatch.Instruction) {
	var before string

	if e.exists(inst.Target) {
		if data, err := e.FS.ReadFile(inst.Target); err == nil {
			before = textenc.Decode(data)
		}
	}

	fmt.Fprintln(e.Out, snippet.Diff(before, inst.Content, inst.Target+" (write preview)"))
}

func (e *Engine) previewReplace(inst *mdpatch.Instruction) {
	if !e.exists(inst.Target) {
		fmt.Fprintf(e.Out, "!! %s does not exist (replace preview)\n", inst.Target)

		return
	}

	data, err := e.FS.ReadFile(inst.Target)
	if err != nil {
		fmt.Fprintf(e.Out, "!! %s: %v (replace preview)\n", inst.Target, err)

		return
	}

	before := textenc.Decode(data)

	after, err := snippet.ReplaceOnce(before, inst.From, inst.To)
	if err != nil {
		fmt.Fprintf(e.Out, "!! No match for 'from' in %s\n", inst.Target)

		return
	}

	fmt.Fprintln(e.Out, snippet.Diff(before, after, inst.Target+" (replace preview)"))
}
