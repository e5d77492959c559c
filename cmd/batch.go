package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/JPM1118/sheetcut/internal/notify"
	"github.com/JPM1118/sheetcut/internal/pipeline"
	"github.com/JPM1118/sheetcut/internal/sprites"
	"github.com/JPM1118/sheetcut/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var batchTUI bool

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run every job listed in the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		jobs := cfg.PipelineJobs()
		if len(jobs) == 0 {
			return fmt.Errorf("no jobs configured; add a jobs list to the config file")
		}
		if batchTUI {
			return runBatchTUI(cmd, jobs)
		}
		return runJobs(cmd, jobs)
	},
}

func init() {
	batchCmd.Flags().BoolVar(&batchTUI, "tui", false, "show an interactive progress view")
	rootCmd.AddCommand(batchCmd)
}

func runBatchTUI(cmd *cobra.Command, jobs []pipeline.Job) error {
	// Log lines would tear the alternate screen.
	runner := pipeline.New(sprites.FileStore{}, log.New(io.Discard))

	model := tui.NewBatch(runner, jobs,
		tui.WithNotifyBar(notify.NewBar(20)),
		tui.WithBell(notify.NewBell(5*time.Second, []string{pipeline.StatusFailed})),
	)

	program := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("batch view: %w", err)
	}

	m, ok := finalModel.(tui.Batch)
	if !ok {
		return fmt.Errorf("batch view: unexpected model %T", finalModel)
	}
	return report(cmd.OutOrStdout(), m.Results())
}
