// Package cmd wires the mdpatch command line: scan Markdown documents for
// patchable fenced code blocks, then preview or apply the resulting plan.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ezerfernandes/mdpatch/internal/mdpatch"
	"github.com/ezerfernandes/mdpatch/internal/patch"
	"github.com/ezerfernandes/mdpatch/internal/textenc"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

var errNoBlocks = errors.New("no patchable code blocks found")

// Execute runs the CLI and exits the process with 0 on success and 1 on
// failure (apply errors, empty plan, bad flags).
func Execute(args []string, stdout, stderr io.Writer) {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "mdpatch [flags] document.md [document.md...]",
		Short: "Apply code blocks from Markdown documents to files",
		Long: `mdpatch scans Markdown documents for fenced code blocks carrying a
file= directive and uses them to update files on disk.

A block headed like "python file=app.py" overwrites app.py with the block
body. A "from file=app.py" block paired with a "to file=app.py" block
replaces the first occurrence of the from-snippet in app.py with the
to-snippet. Blocks without file= are ignored.

By default mdpatch only previews the changes as diffs; pass --apply to
write them.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVar(&opts.root, "root", ".", "project root for resolving relative target paths")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "write changes to disk (default is preview)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "preview only (already the default, accepted for convenience)")
	cmd.Flags().StringVar(&opts.encoding, "encoding", "utf-8", "text encoding used when writing files")
	targetFlag(cmd, opts)
	verboseFlag(cmd, opts)
	quietFlag(cmd, opts)

	cmd.AddCommand(listCmd())

	return cmd
}

func run(opts *options, docs []string, stdout, stderr io.Writer) error {
	opts.createStatus(stderr)

	enc, err := textenc.Encoder(opts.encoding)
	if err != nil {
		return err
	}

	root, err := filepath.Abs(opts.root)
	if err != nil {
		return err
	}

	opts.status("# Root: %s\n", root)

	plan, err := buildPlan(opts, docs, stderr)
	if err != nil {
		return err
	}

	if len(plan) == 0 {
		return errNoBlocks
	}

	engine := &patch.Engine{
		FS:      patch.NewDirFS(root),
		Encoder: enc,
		Out:     stdout,
		Status:  opts.status,
	}

	if opts.apply {
		return engine.Apply(plan)
	}

	engine.Preview(plan)

	return nil
}

// buildPlan extracts instructions from every readable document, in argument
// order, and concatenates them. Missing documents warn and are skipped.
func buildPlan(opts *options, docs []string, stderr io.Writer) (mdpatch.Plan, error) {
	var matcher glob.Glob

	if opts.target != "" {
		m, err := glob.Compile(opts.target, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid --target pattern: %w", err)
		}

		matcher = m
	}

	var plan mdpatch.Plan

	for _, doc := range docs {
		data, err := os.ReadFile(doc)
		if err != nil {
			if !opts.quiet {
				fmt.Fprintf(stderr, "WARN: missing doc %s\n", doc)
			}

			continue
		}

		items, err := mdpatch.Extract([]byte(textenc.Decode(data)), doc)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", doc, err)
		}

		opts.status("# Parsed %d instruction(s) from %s\n", len(items), doc)

		for _, inst := range items {
			if matcher != nil && !matcher.Match(inst.Target) {
				continue
			}

			plan = append(plan, inst)
		}
	}

	return plan, nil
}
