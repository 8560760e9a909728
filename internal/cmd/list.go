package cmd

import (
	"github.com/ezerfernandes/mdpatch/internal/mdpatch"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:          "list [flags] document.md [document.md...]",
		Aliases:      []string{"l"},
		Short:        "List the patch instructions declared by the given documents",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			plan, err := buildPlan(opts, args, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if len(plan) == 0 {
				return errNoBlocks
			}

			tbl := table.New("KIND", "TARGET", "DOC", "BYTES").WithWriter(cmd.OutOrStdout())

			for _, inst := range plan {
				tbl.AddRow(string(inst.Kind), inst.Target, inst.Doc, instructionSize(inst))
			}

			tbl.Print()

			return nil
		},

		DisableAutoGenTag: true,
	}

	targetFlag(cmd, opts)
	verboseFlag(cmd, opts)
	quietFlag(cmd, opts)

	return cmd
}

func instructionSize(inst *mdpatch.Instruction) int {
	if inst.Kind == mdpatch.KindWrite {
		return len(inst.Content)
	}

	return len(inst.From) + len(inst.To)
}
