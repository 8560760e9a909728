package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type statusFunc func(format string, args ...any)

type options struct {
	root     string
	apply    bool
	dryRun   bool
	encoding string
	verbose  bool
	quiet    bool
	target   string

	status statusFunc
}

// createStatus wires the progress printer. Progress lines only show with
// --verbose, and --quiet wins over --verbose.
func (o *options) createStatus(w io.Writer) {
	if o.quiet || !o.verbose {
		o.status = func(string, ...any) {}

		return
	}

	o.status = func(format string, args ...any) {
		fmt.Fprintf(w, format, args...)
	}
}

func targetFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVar(&opts.target, "target", "", "only keep instructions whose target path matches this glob")
}

func verboseFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print extra progress information")
}

func quietFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress progress output and warnings")
}
