package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/JPM1118/sheetcut/internal/pipeline"
	"github.com/JPM1118/sheetcut/internal/sprites"
	"github.com/JPM1118/sheetcut/internal/tui"
	"github.com/spf13/cobra"
)

// runJobs processes jobs against the file system and prints a report.
// Ctrl-C stops the batch before the next item.
func runJobs(cmd *cobra.Command, jobs []pipeline.Job) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	runner := pipeline.New(sprites.FileStore{}, logger)
	results := runner.Run(ctx, jobs, nil)
	return report(cmd.OutOrStdout(), results)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// report prints one line per result and returns an error if any item failed.
func report(out io.Writer, results []pipeline.Result) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INPUT\tKIND\tOUTPUTS\tSTATUS")
	fmt.Fprintln(w, "─────\t────\t───────\t──────")
	for _, r := range results {
		status := tui.StatusStyle(r.Status).Render(tui.StatusLabel(r.Status))
		if r.Reason != "" {
			status += " " + r.Reason
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.Job.Input, r.Job.Kind, len(r.Outputs), status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	summary := pipeline.Summarize(results)
	fmt.Fprintln(out, summary.String())
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d items failed", summary.Failed, summary.Total())
	}
	return nil
}
