// Package patch executes a plan of extracted instructions against a
// filesystem, either applying them or previewing the diffs they would
// produce. Instructions run strictly in plan order; a failing instruction is
// reported and the run continues, so every instruction that can succeed does.
package patch

import (
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/ezerfernandes/mdpatch/internal/mdpatch"
	"github.com/ezerfernandes/mdpatch/internal/snippet"
	"github.com/ezerfernandes/mdpatch/internal/textenc"
	"golang.org/x/text/encoding"
)

// Engine applies or previews a plan. Out receives diffs and per-instruction
// error notices; Status, when non-nil, receives progress lines.
type Engine struct {
	FS      FS
	Encoder encoding.Encoding
	Out     io.Writer
	Status  func(format string, args ...any)
}

var errTargetMissing = errors.New("file not found")

func (e *Engine) status(format string, args ...any) {
	if e.Status != nil {
		e.Status(format, args...)
	}
}

// Apply runs every instruction in the plan, creating missing parent
// directories as needed. All instructions are attempted; the returned error
// is non-nil if any of them failed.
func (e *Engine) Apply(plan mdpatch.Plan) error {
	var failures int

	for _, inst := range plan {
		if err := e.applyOne(inst); err != nil {
			fmt.Fprintf(e.Out, "ERROR %s %s: %v\n", inst.Kind, inst.Target, err)

			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d instruction(s) failed", failures)
	}

	return nil
}

func (e *Engine) applyOne(inst *mdpatch.Instruction) error {
	if dir := path.Dir(inst.Target); dir != "." && dir != "/" {
		if err := e.FS.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	if inst.Kind == mdpatch.KindWrite {
		if err := e.write(inst.Target, inst.Content); err != nil {
			return err
		}

		e.status("Wrote %s\n", inst.Target)

		return nil
	}

	if !e.exists(inst.Target) {
		return errTargetMissing
	}

	data, err := e.FS.ReadFile(inst.Target)
	if err != nil {
		return err
	}

	after, err := snippet.ReplaceOnce(textenc.Decode(data), inst.From, inst.To)
	if err != nil {
		return err
	}

	if err := e.write(inst.Target, after); err != nil {
		return err
	}

	e.status("Patched %s\n", inst.Target)

	return nil
}

func (e *Engine) write(target, text string) error {
	data, err := textenc.Encode(e.Encoder, text)
	if err != nil {
		return err
	}

	return e.FS.WriteFile(target, data, fileMode)
}

func (e *Engine) exists(target string) bool {
	_, err := e.FS.Stat(target)

	return err == nil
}
